package flight

import (
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/shopspring/decimal"
)

const (
	MinPassengers = 1
	MaxPassengers = SeatCapacity
	// PassengersField keys passenger problems in an AvailabilityError.
	PassengersField = "passengers"
	// SeatsField keys seat shortages in an AvailabilityError.
	SeatsField = "seats"
)

type PassengerInput struct {
	FirstName     string
	LastName      string
	ContactNumber string
	DateOfBirth   *time.Time
	MainLuggageKg decimal.Decimal
	HandLuggageKg decimal.Decimal
}

type Passenger struct {
	firstName     string
	lastName      string
	contactNumber string
	dateOfBirth   time.Time
	mainLuggageKg decimal.Decimal
	handLuggageKg decimal.Decimal
}

func ReconstructPassenger(firstName, lastName, contactNumber string, dob time.Time, mainKg, handKg decimal.Decimal) Passenger {
	return Passenger{
		firstName:     firstName,
		lastName:      lastName,
		contactNumber: contactNumber,
		dateOfBirth:   dob,
		mainLuggageKg: mainKg,
		handLuggageKg: handKg,
	}
}

func (p Passenger) FirstName() string              { return p.firstName }
func (p Passenger) LastName() string               { return p.lastName }
func (p Passenger) ContactNumber() string          { return p.contactNumber }
func (p Passenger) DateOfBirth() time.Time         { return p.dateOfBirth }
func (p Passenger) MainLuggageKg() decimal.Decimal { return p.mainLuggageKg }
func (p Passenger) HandLuggageKg() decimal.Decimal { return p.handLuggageKg }
func (p Passenger) LuggageFee() booking.Money      { return LuggageFee(p.mainLuggageKg) }

// ClampPassengers bounds a requested passenger count to the bookable range.
func ClampPassengers(n int) int {
	if n < MinPassengers {
		return MinPassengers
	}
	if n > MaxPassengers {
		return MaxPassengers
	}
	return n
}

// BuildPassengers validates passenger details against the number of seats
// being booked. An empty input list is allowed and yields no passengers.
func BuildPassengers(inputs []PassengerInput, seatCount int, today time.Time) ([]Passenger, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if len(inputs) != seatCount {
		return nil, booking.NewAvailabilityError(PassengersField, "Passenger details do not match selected seats")
	}
	today = booking.Date(today)
	out := make([]Passenger, 0, len(inputs))
	for i, in := range inputs {
		n := i + 1
		first := strings.TrimSpace(in.FirstName)
		last := strings.TrimSpace(in.LastName)
		if first == "" || last == "" || in.DateOfBirth == nil {
			return nil, booking.NewAvailabilityError(PassengersField, fmt.Sprintf("Passenger %d details are incomplete.", n))
		}
		dob := booking.Date(*in.DateOfBirth)
		if dob.After(today) {
			return nil, booking.NewAvailabilityError(PassengersField, fmt.Sprintf("Passenger %d date of birth cannot be in the future.", n))
		}
		if in.MainLuggageKg.IsNegative() || in.HandLuggageKg.IsNegative() {
			return nil, booking.NewAvailabilityError(PassengersField, fmt.Sprintf("Passenger %d luggage weight cannot be negative.", n))
		}
		if !HandLuggageAllowed(in.HandLuggageKg) {
			return nil, booking.NewAvailabilityError(PassengersField, fmt.Sprintf("Passenger %d hand luggage exceeds %s kg.", n, HandLuggageMaxKg.String()))
		}
		out = append(out, Passenger{
			firstName:     first,
			lastName:      last,
			contactNumber: strings.TrimSpace(in.ContactNumber),
			dateOfBirth:   dob,
			mainLuggageKg: QuantizeWeight(in.MainLuggageKg),
			handLuggageKg: QuantizeWeight(in.HandLuggageKg),
		})
	}
	return out, nil
}
