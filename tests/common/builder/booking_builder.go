//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/domain/user"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

func NewRecipient(role user.Role) user.Recipient {
	return user.Recipient{
		ID:       uuid.New(),
		Email:    "traveller@example.com",
		Role:     role,
		IsActive: true,
	}
}

type HotelBookingBuilder struct {
	HotelID         uuid.UUID
	RoomTypeID      uuid.UUID
	RoomKind        hotel.RoomKind
	BasePrice       string
	TotalRooms      int
	CheckIn         string
	CheckOut        string
	Rooms           int
	Guests          int
	Surname         string
	ContactEmail    string
	SpecialRequests string
	PaymentToken    *string
}

func NewHotelBookingBuilder() *HotelBookingBuilder {
	return &HotelBookingBuilder{
		HotelID:      uuid.New(),
		RoomTypeID:   uuid.New(),
		RoomKind:     hotel.RoomDouble,
		BasePrice:    "120.00",
		TotalRooms:   5,
		CheckIn:      "2030-06-01",
		CheckOut:     "2030-06-04",
		Rooms:        1,
		Guests:       2,
		Surname:      "Tanaka",
		ContactEmail: "tanaka@example.com",
	}
}

func (b *HotelBookingBuilder) With(mutate func(*HotelBookingBuilder)) *HotelBookingBuilder {
	mutate(b)
	return b
}

func (b *HotelBookingBuilder) BuildRoomType() *hotel.RoomType {
	return hotel.ReconstructRoomType(b.RoomTypeID, b.HotelID, "Seaside Inn", b.RoomKind,
		booking.MustParseMoney(b.BasePrice), b.TotalRooms, "", time.Now())
}

func (b *HotelBookingBuilder) BuildCreateRequestDTO() reqdto.CreateHotelBookingRequest {
	return reqdto.CreateHotelBookingRequest{
		RoomTypeID:      b.RoomTypeID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Rooms:           b.Rooms,
		Guests:          b.Guests,
		Surname:         b.Surname,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
		PaymentToken:    b.PaymentToken,
	}
}

func (b *HotelBookingBuilder) BuildCommand() commands.HotelBookingRequest {
	in, _ := booking.ParseDate(b.CheckIn)
	out, _ := booking.ParseDate(b.CheckOut)
	return commands.HotelBookingRequest{
		RoomTypeID:      b.RoomTypeID,
		CheckIn:         in,
		CheckOut:        out,
		Rooms:           b.Rooms,
		Guests:          b.Guests,
		Surname:         b.Surname,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
		PaymentToken:    b.PaymentToken,
	}
}

type CarBookingBuilder struct {
	CarID         uuid.UUID
	Price         string
	PricingMode   car.PricingMode
	Units         int
	PickupDate    string
	DropoffDate   string
	PickupTime    *string
	FirstName     string
	LastName      string
	ContactNumber string
	ContactEmail  string
	PaymentToken  *string
}

func NewCarBookingBuilder() *CarBookingBuilder {
	return &CarBookingBuilder{
		CarID:         uuid.New(),
		Price:         "45.00",
		PricingMode:   car.PricingPerDay,
		Units:         1,
		PickupDate:    "2030-06-01",
		DropoffDate:   "2030-06-03",
		FirstName:     "Aiko",
		LastName:      "Sato",
		ContactNumber: "+81-90-0000-0000",
		ContactEmail:  "aiko@example.com",
	}
}

func (b *CarBookingBuilder) With(mutate func(*CarBookingBuilder)) *CarBookingBuilder {
	mutate(b)
	return b
}

func (b *CarBookingBuilder) BuildCar() *car.Car {
	return car.ReconstructCar(b.CarID, car.Params{
		Company:         "Test Rentals",
		Model:           "Corolla",
		Location:        "Lisbon",
		PickupLocation:  "Lisbon Airport",
		DropoffLocation: "Lisbon Airport",
		Price:           booking.MustParseMoney(b.Price),
		PricingMode:     b.PricingMode,
		Units:           b.Units,
	}, true)
}

func (b *CarBookingBuilder) BuildCreateRequestDTO() reqdto.CreateCarBookingRequest {
	return reqdto.CreateCarBookingRequest{
		CarID:         b.CarID,
		PickupDate:    b.PickupDate,
		DropoffDate:   b.DropoffDate,
		PickupTime:    b.PickupTime,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		ContactNumber: b.ContactNumber,
		ContactEmail:  b.ContactEmail,
		PaymentToken:  b.PaymentToken,
	}
}

func (b *CarBookingBuilder) BuildCommand() commands.CarBookingRequest {
	pickup, _ := booking.ParseDate(b.PickupDate)
	dropoff, _ := booking.ParseDate(b.DropoffDate)
	return commands.CarBookingRequest{
		CarID:         b.CarID,
		PickupDate:    pickup,
		DropoffDate:   dropoff,
		PickupTime:    b.PickupTime,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		ContactNumber: b.ContactNumber,
		ContactEmail:  b.ContactEmail,
		PaymentToken:  b.PaymentToken,
	}
}

type FlightBookingBuilder struct {
	FlightID     uuid.UUID
	BasePrice    string
	ReturnPrice  string
	Departure    time.Time
	RoundTrip    bool
	Passengers   int
	ContactEmail string
	NotifyAdmin  bool
	PaymentToken *string
}

func NewFlightBookingBuilder() *FlightBookingBuilder {
	return &FlightBookingBuilder{
		FlightID:     uuid.New(),
		BasePrice:    "200.00",
		ReturnPrice:  "180.00",
		Departure:    time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
		Passengers:   1,
		ContactEmail: "flyer@example.com",
	}
}

func (b *FlightBookingBuilder) With(mutate func(*FlightBookingBuilder)) *FlightBookingBuilder {
	mutate(b)
	return b
}

func (b *FlightBookingBuilder) BuildFlight() *flight.Flight {
	p := flight.Params{
		Outbound: flight.Schedule{
			Code:          "WW101",
			Origin:        "Lisbon",
			Destination:   "Tokyo",
			DepartureTime: b.Departure,
			ArrivalTime:   b.Departure.Add(14 * time.Hour),
		},
		BasePrice:       booking.MustParseMoney(b.BasePrice),
		ReturnBasePrice: booking.MustParseMoney(b.ReturnPrice),
	}
	if b.RoundTrip {
		back := b.Departure.Add(7 * 24 * time.Hour)
		p.Return = &flight.Schedule{
			Code:          "WW102",
			Origin:        "Tokyo",
			Destination:   "Lisbon",
			DepartureTime: back,
			ArrivalTime:   back.Add(15 * time.Hour),
		}
	}
	return flight.ReconstructFlight(b.FlightID, p, flight.SeatCapacity, true)
}

func (b *FlightBookingBuilder) BuildCreateRequestDTO() reqdto.CreateFlightBookingRequest {
	return reqdto.CreateFlightBookingRequest{
		FlightID:     b.FlightID,
		Passengers:   b.Passengers,
		RoundTrip:    b.RoundTrip,
		ContactEmail: b.ContactEmail,
		NotifyAdmin:  b.NotifyAdmin,
		PaymentToken: b.PaymentToken,
	}
}

func (b *FlightBookingBuilder) BuildCommand() commands.FlightBookingRequest {
	return commands.FlightBookingRequest{
		FlightID:         b.FlightID,
		Passengers:       b.Passengers,
		RoundTrip:        b.RoundTrip,
		PassengerDetails: []flight.PassengerInput{},
		ContactEmail:     b.ContactEmail,
		NotifyAdmin:      b.NotifyAdmin,
		PaymentToken:     b.PaymentToken,
	}
}

// BuildResult is what the booking flow hands back for a settled charge.
func BuildResult(kind booking.Kind, total string) *commands.BookingResult {
	return &commands.BookingResult{
		Kind:             kind,
		ID:               uuid.New(),
		Reference:        kind.ReferencePrefix() + "-ABC123",
		TotalPrice:       booking.MustParseMoney(total),
		Status:           booking.StatusBooked,
		PaymentStatus:    booking.PaymentAuthorized,
		PaymentReference: "pi_test_123",
	}
}
