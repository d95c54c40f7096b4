package request

import (
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FlightSearchQuery struct {
	Origin        string  `form:"origin" binding:"required,max=100"`
	Destination   string  `form:"destination" binding:"required,max=100"`
	DepartureDate string  `form:"departure_date" binding:"required,date"`
	ReturnDate    *string `form:"return_date" binding:"omitempty,date"`
	Passengers    int     `form:"passengers,default=1"`
	Limit         int     `form:"limit"`
}

func (q *FlightSearchQuery) ToSearch() (queries.FlightSearch, error) {
	departure, err := dateField("departure_date", q.DepartureDate)
	if err != nil {
		return queries.FlightSearch{}, err
	}
	ret, err := optionalDateField("return_date", q.ReturnDate)
	if err != nil {
		return queries.FlightSearch{}, err
	}
	return queries.FlightSearch{
		Origin:        q.Origin,
		Destination:   q.Destination,
		DepartureDate: departure,
		ReturnDate:    ret,
		Passengers:    q.Passengers,
		Limit:         q.Limit,
	}, nil
}

type FlightAvailabilityQuery struct {
	Passengers int  `form:"passengers,default=1"`
	RoundTrip  bool `form:"round_trip"`
}

func (q *FlightAvailabilityQuery) ToCommand(flightID uuid.UUID) commands.FlightAvailabilityRequest {
	return commands.FlightAvailabilityRequest{FlightID: flightID, Passengers: q.Passengers, RoundTrip: q.RoundTrip}
}

type PassengerDetail struct {
	FirstName         string           `json:"first_name" binding:"max=100"`
	LastName          string           `json:"last_name" binding:"max=100"`
	ContactNumber     string           `json:"contact_number" binding:"max=30"`
	DateOfBirth       *string          `json:"date_of_birth" binding:"omitempty,date"`
	MainLuggageWeight *decimal.Decimal `json:"main_luggage_weight"`
	HandLuggageWeight *decimal.Decimal `json:"hand_luggage_weight"`
}

// CreateFlightBookingRequest leaves passenger range and detail checks to the
// booking flow so they come back as availability reasons.
type CreateFlightBookingRequest struct {
	FlightID     uuid.UUID         `json:"flight_id" binding:"required"`
	Passengers   int               `json:"passengers"`
	RoundTrip    bool              `json:"round_trip"`
	Details      []PassengerDetail `json:"passenger_details" binding:"omitempty,dive"`
	ContactEmail string            `json:"contact_email" binding:"required,email"`
	NotifyAdmin  bool              `json:"notify_admin"`
	PaymentToken *string           `json:"payment_token"`
}

func (r *CreateFlightBookingRequest) ToCommand() (commands.FlightBookingRequest, error) {
	details := make([]flight.PassengerInput, 0, len(r.Details))
	for _, d := range r.Details {
		dob, err := optionalDateField("date_of_birth", d.DateOfBirth)
		if err != nil {
			return commands.FlightBookingRequest{}, err
		}
		in := flight.PassengerInput{
			FirstName:     d.FirstName,
			LastName:      d.LastName,
			ContactNumber: d.ContactNumber,
			DateOfBirth:   dob,
		}
		if d.MainLuggageWeight != nil {
			in.MainLuggageKg = *d.MainLuggageWeight
		}
		if d.HandLuggageWeight != nil {
			in.HandLuggageKg = *d.HandLuggageWeight
		}
		details = append(details, in)
	}
	return commands.FlightBookingRequest{
		FlightID:         r.FlightID,
		Passengers:       r.Passengers,
		RoundTrip:        r.RoundTrip,
		PassengerDetails: details,
		ContactEmail:     r.ContactEmail,
		NotifyAdmin:      r.NotifyAdmin,
		PaymentToken:     r.PaymentToken,
	}, nil
}
