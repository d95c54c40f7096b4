package notify

import (
	"context"
	"log/slog"

	"travel-booking/internal/usecase/shared"
)

// LogSender writes messages to the log; used when no broker is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg shared.Message) error {
	if len(msg.Recipients) == 0 {
		return nil
	}
	s.logger.InfoContext(ctx, "notification",
		"subject", msg.Subject,
		"from", msg.From,
		"recipients", msg.Recipients,
		"body", msg.Body,
	)
	return nil
}
