package car

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
)

const AvailabilityField = "car"

func UnavailableReason(day time.Time, _ int) string {
	return "Car unavailable on " + booking.FormatDate(day)
}

// CheckAvailability asks for one unit on every rental day.
func CheckAvailability(ledger *inventory.Ledger, pickup, dropoff time.Time) booking.Availability {
	return ledger.Check(pickup, dropoff, 1, UnavailableReason)
}
