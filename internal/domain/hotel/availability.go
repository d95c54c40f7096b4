package hotel

import (
	"fmt"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
)

// AvailabilityField keys hotel availability reasons in an AvailabilityError.
const AvailabilityField = "rooms"

func ShortfallReason(day time.Time, available int) string {
	return fmt.Sprintf("Only %d rooms left on %s", available, booking.FormatDate(day))
}

func InsufficientReason(day time.Time) string {
	return "Insufficient rooms available for " + booking.FormatDate(day)
}

func CheckAvailability(ledger *inventory.Ledger, checkIn, checkOut time.Time, rooms int) booking.Availability {
	return ledger.Check(checkIn, checkOut, rooms, ShortfallReason)
}
