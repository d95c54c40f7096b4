package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/notify"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier publishes to RabbitMQ when AMQP_URL is set and logs messages otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.Notifier, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL未設定のため通知はログに出力します")
		return notify.NewLogSender(logger), nil
	}

	conn, ch, err := notify.Dial(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = ch.Close()
			return conn.Close()
		},
	})

	return notify.NewAMQPSender(ch, cfg.AMQP.Queue, clk), nil
}
