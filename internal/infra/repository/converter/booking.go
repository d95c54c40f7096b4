package converter

import (
	"encoding/json"

	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func HotelBookingToInfra(b *hotel.Booking) (pgsql.InsertHotelBookingParams, error) {
	rooms, err := pgconv.Int32(b.Rooms())
	if err != nil {
		return pgsql.InsertHotelBookingParams{}, err
	}
	guests, err := pgconv.Int32(b.Guests())
	if err != nil {
		return pgsql.InsertHotelBookingParams{}, err
	}
	return pgsql.InsertHotelBookingParams{
		ID:               b.ID(),
		ReferenceNumber:  b.Reference(),
		UserID:           b.UserID(),
		RoomTypeID:       b.RoomTypeID(),
		CheckIn:          b.Stay().Start(),
		CheckOut:         b.Stay().End(),
		Rooms:            rooms,
		Guests:           guests,
		Surname:          b.Surname(),
		ContactEmail:     b.ContactEmail(),
		SpecialRequests:  b.SpecialRequests(),
		TotalPrice:       b.TotalPrice().Decimal(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		PaymentReference: b.PaymentReference(),
		CreatedAt:        b.CreatedAt(),
	}, nil
}

func CarBookingToInfra(b *car.Booking) (pgsql.InsertCarBookingParams, error) {
	pickupTime, err := pgconv.TimeOfDayToPgtype(b.PickupTime())
	if err != nil {
		return pgsql.InsertCarBookingParams{}, err
	}
	return pgsql.InsertCarBookingParams{
		ID:               b.ID(),
		ReferenceNumber:  b.Reference(),
		UserID:           b.UserID(),
		CarID:            b.CarID(),
		PickupDate:       b.Rental().Start(),
		DropoffDate:      b.Rental().End(),
		PickupLocation:   b.PickupLocation(),
		DropoffLocation:  b.DropoffLocation(),
		PickupAddress:    b.PickupAddress(),
		PickupTime:       pickupTime,
		FirstName:        b.FirstName(),
		LastName:         b.LastName(),
		ContactNumber:    b.ContactNumber(),
		ContactEmail:     b.ContactEmail(),
		TotalPrice:       b.TotalPrice().Decimal(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		PaymentReference: b.PaymentReference(),
		CreatedAt:        b.CreatedAt(),
	}, nil
}

func FlightBookingToInfra(b *flight.Booking) (pgsql.InsertFlightBookingParams, error) {
	passengers, err := pgconv.Int32(b.Passengers())
	if err != nil {
		return pgsql.InsertFlightBookingParams{}, err
	}
	return pgsql.InsertFlightBookingParams{
		ID:               b.ID(),
		ReferenceNumber:  b.Reference(),
		UserID:           b.UserID(),
		FlightID:         b.FlightID(),
		Passengers:       passengers,
		RoundTrip:        b.RoundTrip(),
		ContactEmail:     b.ContactEmail(),
		NotifyAdmin:      b.NotifyAdmin(),
		TotalPrice:       b.TotalPrice().Decimal(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		PaymentReference: b.PaymentReference(),
		CreatedAt:        b.CreatedAt(),
	}, nil
}

// FlightBookingSeatsToInfra emits one row per booked seat; seats without
// passenger details keep empty name fields.
func FlightBookingSeatsToInfra(b *flight.Booking) []pgsql.FlightBookingSeat {
	rows := make([]pgsql.FlightBookingSeat, 0, len(b.Seats()))
	for _, s := range b.Seats() {
		row := pgsql.FlightBookingSeat{
			ID:         uuid.New(),
			BookingID:  b.ID(),
			SeatID:     s.SeatID,
			LuggageFee: s.LuggageFee.Decimal(),
		}
		if p := s.Passenger; p != nil {
			dob := p.DateOfBirth()
			row.FirstName = p.FirstName()
			row.LastName = p.LastName()
			row.ContactNumber = p.ContactNumber()
			row.DateOfBirth = pgconv.DatePtrToPgtype(&dob)
			row.MainLuggageWeight = p.MainLuggageKg()
			row.HandLuggageWeight = p.HandLuggageKg()
		}
		rows = append(rows, row)
	}
	return rows
}

func PaymentToInfra(r *payment.Record) (pgsql.CreatePaymentParams, error) {
	meta := r.Metadata()
	if meta == nil {
		meta = map[string]string{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return pgsql.CreatePaymentParams{}, err
	}
	return pgsql.CreatePaymentParams{
		ID:                r.ID(),
		UserID:            r.UserID(),
		BookingKind:       r.Booking().Kind.String(),
		BookingID:         r.Booking().ID,
		Amount:            r.Amount().Decimal(),
		Currency:          r.Currency(),
		Status:            string(r.Status()),
		Provider:          string(r.Provider()),
		ProviderReference: r.ProviderReference(),
		ClientSecret:      r.ClientSecret(),
		Metadata:          raw,
		CreatedAt:         r.CreatedAt(),
	}, nil
}
