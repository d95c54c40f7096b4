package components

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/draftstore"
	"travel-booking/internal/infra/metrics"
	"travel-booking/internal/infra/payment"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ServicesModule provides the external collaborators of the booking flow.
var ServicesModule = fx.Module("services",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		NewDraftStore,
		NewMetrics,
		NewBookingMetrics,
		fx.Annotate(
			booking.NewRandomReferenceGenerator,
			fx.As(new(booking.ReferenceGenerator)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.Gateway {
	return payment.NewGateway(cfg.Payment)
}

func NewDraftStore(client *redis.Client) shared.DraftStore {
	return draftstore.NewRedisStore(client)
}

func NewMetrics(cfg config.Config) *metrics.Metrics {
	return metrics.New(cfg.Metrics.Namespace)
}

func NewBookingMetrics(m *metrics.Metrics) shared.BookingMetrics {
	return m
}
