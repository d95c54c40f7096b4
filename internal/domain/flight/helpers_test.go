//go:build unit

package flight_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/flight"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var departure = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func outboundSchedule() flight.Schedule {
	return flight.Schedule{
		Code:          "WW101",
		Origin:        "Lisbon",
		Destination:   "Tokyo",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(14 * time.Hour),
	}
}

func returnSchedule() *flight.Schedule {
	back := departure.AddDate(0, 0, 7)
	return &flight.Schedule{
		Code:          "WW102",
		Origin:        "Tokyo",
		Destination:   "Lisbon",
		DepartureTime: back,
		ArrivalTime:   back.Add(15 * time.Hour),
	}
}

func newFlight(t *testing.T, roundTrip bool) *flight.Flight {
	t.Helper()
	p := flight.Params{
		Outbound:        outboundSchedule(),
		BasePrice:       booking.MustParseMoney("200.00"),
		ReturnBasePrice: booking.MustParseMoney("180.00"),
	}
	if roundTrip {
		p.Return = returnSchedule()
	}
	f, err := flight.NewFlight(p)
	require.NoError(t, err)
	return f
}

func seat(leg flight.Leg, number string, modifier string, reserved bool) *flight.Seat {
	return flight.ReconstructSeat(uuid.New(), uuid.New(), leg, number, flight.ClassEconomy, decimal.RequireFromString(modifier), reserved)
}

func kg(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dob(s string) *time.Time {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func passengerInput() flight.PassengerInput {
	return flight.PassengerInput{
		FirstName:     "Ken",
		LastName:      "Mori",
		DateOfBirth:   dob("1990-04-12"),
		MainLuggageKg: kg("23"),
		HandLuggageKg: kg("5"),
	}
}
