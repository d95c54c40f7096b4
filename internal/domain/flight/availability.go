package flight

import (
	"fmt"
	"sort"

	"travel-booking/internal/domain/booking"
)

// CheckAvailability compares the unreserved seat count of each required leg
// against the passenger count.
func CheckAvailability(f *Flight, passengers int, roundTrip bool, unreserved map[Leg]int) booking.Availability {
	if passengers < MinPassengers || passengers > MaxPassengers {
		return booking.UnavailableResult(fmt.Sprintf("Passengers must be between %d and %d", MinPassengers, MaxPassengers))
	}
	if roundTrip && !f.HasReturn() {
		return booking.UnavailableResult("Flight has no return leg")
	}
	reasons := []string{}
	if left := unreserved[LegOutbound]; left < passengers {
		reasons = append(reasons, fmt.Sprintf("Only %d seat(s) remaining", left))
	}
	if roundTrip {
		if left := unreserved[LegReturn]; left < passengers {
			reasons = append(reasons, fmt.Sprintf("Only %d return seat(s) remaining", left))
		}
	}
	return booking.FromReasons(reasons)
}

// PickSeats returns the first n unreserved seats of leg ordered by seat number.
func PickSeats(seats []*Seat, leg Leg, n int) []*Seat {
	free := make([]*Seat, 0, len(seats))
	for _, s := range seats {
		if s.Leg() == leg && !s.IsReserved() {
			free = append(free, s)
		}
	}
	sort.SliceStable(free, func(i, j int) bool { return free[i].Number() < free[j].Number() })
	if len(free) > n {
		free = free[:n]
	}
	return free
}

func CountUnreserved(seats []*Seat) map[Leg]int {
	counts := map[Leg]int{}
	for _, s := range seats {
		if !s.IsReserved() {
			counts[s.Leg()]++
		}
	}
	return counts
}
