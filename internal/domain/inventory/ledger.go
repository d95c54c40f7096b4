package inventory

import (
	"errors"
	"time"

	"travel-booking/internal/domain/booking"
)

var ErrInvalidCapacity = errors.New("capacity must be at least 1")

// ReasonFunc formats the reason reported for a day with too little left.
type ReasonFunc func(day time.Time, available int) string

// Ledger holds per-day remaining units for one resource. Days without a
// record are at full capacity.
type Ledger struct {
	capacity int
	days     map[string]int
}

func NewLedger(capacity int) (*Ledger, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Ledger{capacity: capacity, days: map[string]int{}}, nil
}

func (l *Ledger) Capacity() int { return l.capacity }

// Set records the remaining units for a day, clamped to [0, capacity].
func (l *Ledger) Set(day time.Time, available int) {
	l.days[key(day)] = clamp(available, 0, l.capacity)
}

func (l *Ledger) Available(day time.Time) int {
	if v, ok := l.days[key(day)]; ok {
		return v
	}
	return l.capacity
}

// Shortfalls returns one reason per day of span with fewer than quantity units left.
func (l *Ledger) Shortfalls(span booking.DateRange, quantity int, reason ReasonFunc) []string {
	reasons := []string{}
	for _, day := range span.Days() {
		if avail := l.Available(day); avail < quantity {
			reasons = append(reasons, reason(day, avail))
		}
	}
	return reasons
}

// Check evaluates raw start/end bounds and fails closed on an empty or inverted range.
func (l *Ledger) Check(start, end time.Time, quantity int, reason ReasonFunc) booking.Availability {
	span, err := booking.NewDateRange(start, end)
	if err != nil {
		return booking.UnavailableResult(booking.ReasonInvalidDateRange)
	}
	return booking.FromReasons(l.Shortfalls(span, quantity, reason))
}

func key(day time.Time) string {
	return booking.FormatDate(booking.Date(day))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
