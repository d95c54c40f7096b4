//go:build unit

package flight_test

import (
	"testing"

	"travel-booking/internal/domain/flight"

	"github.com/stretchr/testify/assert"
)

func TestCheckAvailability(t *testing.T) {
	roundTrip := newFlight(t, true)
	oneWay := newFlight(t, false)

	tests := []struct {
		name        string
		f           *flight.Flight
		passengers  int
		roundTrip   bool
		unreserved  map[flight.Leg]int
		wantReasons []string
	}{
		{name: "enough seats", f: oneWay, passengers: 2, unreserved: map[flight.Leg]int{flight.LegOutbound: 7}, wantReasons: []string{}},
		{name: "zero passengers", f: oneWay, passengers: 0, unreserved: map[flight.Leg]int{flight.LegOutbound: 7}, wantReasons: []string{"Passengers must be between 1 and 7"}},
		{name: "too many passengers", f: oneWay, passengers: 8, unreserved: map[flight.Leg]int{flight.LegOutbound: 7}, wantReasons: []string{"Passengers must be between 1 and 7"}},
		{name: "round trip without return leg", f: oneWay, passengers: 1, roundTrip: true, unreserved: map[flight.Leg]int{flight.LegOutbound: 7}, wantReasons: []string{"Flight has no return leg"}},
		{name: "outbound short", f: oneWay, passengers: 3, unreserved: map[flight.Leg]int{flight.LegOutbound: 2}, wantReasons: []string{"Only 2 seat(s) remaining"}},
		{
			name:        "both legs short",
			f:           roundTrip,
			passengers:  3,
			roundTrip:   true,
			unreserved:  map[flight.Leg]int{flight.LegOutbound: 1},
			wantReasons: []string{"Only 1 seat(s) remaining", "Only 0 return seat(s) remaining"},
		},
		{name: "return ignored for one way", f: roundTrip, passengers: 2, unreserved: map[flight.Leg]int{flight.LegOutbound: 2}, wantReasons: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flight.CheckAvailability(tt.f, tt.passengers, tt.roundTrip, tt.unreserved)
			assert.Equal(t, len(tt.wantReasons) == 0, got.Available)
			assert.Equal(t, tt.wantReasons, got.Reasons)
		})
	}
}

func TestPickSeats(t *testing.T) {
	seats := []*flight.Seat{
		seat(flight.LegOutbound, "S03", "1", false),
		seat(flight.LegReturn, "S01", "1", false),
		seat(flight.LegOutbound, "S01", "1", true),
		seat(flight.LegOutbound, "S02", "1", false),
		seat(flight.LegOutbound, "S04", "1", false),
	}

	var got []string
	for _, s := range flight.PickSeats(seats, flight.LegOutbound, 2) {
		got = append(got, s.Number())
	}
	assert.Equal(t, []string{"S02", "S03"}, got)
	assert.Len(t, flight.PickSeats(seats, flight.LegReturn, 5), 1)

	assert.Equal(t, map[flight.Leg]int{flight.LegOutbound: 3, flight.LegReturn: 1}, flight.CountUnreserved(seats))
}
