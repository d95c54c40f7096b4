package shared

import (
	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Kind          booking.Kind
	Reference     string
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
}
