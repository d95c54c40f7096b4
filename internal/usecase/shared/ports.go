package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/draft"
	"travel-booking/internal/domain/payment"
)

type PaymentGateway interface {
	Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error)
}

type Message struct {
	From       string   `json:"from"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
}

// Notifier hands a message to the mail relay. An empty recipient list is a no-op.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// DraftStore keeps booking wizard state; Get returns nil, nil when nothing is stored.
type DraftStore interface {
	Get(ctx context.Context, key draft.Key) (*draft.Draft, error)
	Save(ctx context.Context, d *draft.Draft, ttl time.Duration) error
	Delete(ctx context.Context, key draft.Key) error
}

type BookingMetrics interface {
	BookingCreated(kind booking.Kind, amount booking.Money)
	BookingFailed(kind booking.Kind, phase booking.Phase)
	ObserveCharge(provider payment.Provider, success bool, elapsed time.Duration)
}
