//go:build unit

package flight_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlight(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *flight.Params)
		errIs  error
	}{
		{name: "one way"},
		{name: "round trip", mutate: func(p *flight.Params) { p.Return = returnSchedule() }},
		{name: "no code", mutate: func(p *flight.Params) { p.Outbound.Code = " " }, errIs: flight.ErrInvalidCode},
		{name: "no destination", mutate: func(p *flight.Params) { p.Outbound.Destination = "" }, errIs: flight.ErrInvalidRoute},
		{name: "arrives before departure", mutate: func(p *flight.Params) { p.Outbound.ArrivalTime = departure.Add(-time.Hour) }, errIs: flight.ErrInvalidSchedule},
		{name: "incomplete return", mutate: func(p *flight.Params) {
			r := returnSchedule()
			r.Code = ""
			p.Return = r
		}, errIs: flight.ErrIncompleteReturn},
		{name: "return before outbound lands", mutate: func(p *flight.Params) {
			r := returnSchedule()
			r.DepartureTime = departure.Add(time.Hour)
			r.ArrivalTime = departure.Add(5 * time.Hour)
			p.Return = r
		}, errIs: flight.ErrReturnBeforeOut},
		{name: "negative return price", mutate: func(p *flight.Params) { p.ReturnBasePrice = booking.MustParseMoney("-1") }, errIs: flight.ErrInvalidBasePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := flight.Params{Outbound: outboundSchedule(), BasePrice: booking.MoneyFromInt(100)}
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			f, err := flight.NewFlight(p)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, flight.SeatCapacity, f.SeatCapacity())
		})
	}
}

func TestDefaultSeats(t *testing.T) {
	oneWay := newFlight(t, false).DefaultSeats()
	require.Len(t, oneWay, flight.SeatCapacity)
	assert.Equal(t, "S01", oneWay[0].Number())
	assert.Equal(t, "S07", oneWay[6].Number())

	roundTrip := newFlight(t, true).DefaultSeats()
	require.Len(t, roundTrip, 2*flight.SeatCapacity)
	assert.Equal(t, map[flight.Leg]int{flight.LegOutbound: 7, flight.LegReturn: 7}, flight.CountUnreserved(roundTrip))
}

func TestNewBooking(t *testing.T) {
	services := &flight.Services{Clock: clock.NewFixed(departure), PriceCalculator: flight.NewDefaultPriceCalculator()}
	f := newFlight(t, true)
	outbound := []*flight.Seat{seat(flight.LegOutbound, "S01", "1", false), seat(flight.LegOutbound, "S02", "1", false)}
	inbound := []*flight.Seat{seat(flight.LegReturn, "S01", "1", false), seat(flight.LegReturn, "S02", "1", false)}
	pax, err := flight.BuildPassengers([]flight.PassengerInput{passengerInput(), passengerInput()}, 2, departure)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		b, err := flight.NewBooking(services, f, outbound, inbound, pax, flight.BookingParams{RoundTrip: true, ContactEmail: "flyer@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 2, b.Passengers())
		assert.Equal(t, "760.00", b.TotalPrice().String())
		assert.Equal(t, []string{"S01", "S02"}, b.SeatNumbers(flight.LegReturn))
		assert.Len(t, b.SeatIDs(), 4)
		assert.Equal(t, "WW101", b.FlightCode())
	})

	t.Run("mismatched return seats", func(t *testing.T) {
		_, err := flight.NewBooking(services, f, outbound, inbound[:1], pax, flight.BookingParams{RoundTrip: true, ContactEmail: "flyer@example.com"})
		var aerr *booking.AvailabilityError
		require.ErrorAs(t, err, &aerr)
	})

	t.Run("no seats", func(t *testing.T) {
		_, err := flight.NewBooking(services, f, nil, nil, nil, flight.BookingParams{ContactEmail: "flyer@example.com"})
		var aerr *booking.AvailabilityError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, []string{"No seats available for this flight"}, aerr.Fields[flight.SeatsField])
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := flight.NewBooking(services, f, outbound, nil, pax, flight.BookingParams{ContactEmail: "nope"})
		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "contact_email", verr.Field)
	})
}
