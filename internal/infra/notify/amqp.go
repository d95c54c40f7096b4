package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSender publishes messages to a durable queue read by the mail relay.
type AMQPSender struct {
	mu    sync.Mutex
	ch    publisher
	queue string
	clock clock.Clock
}

func NewAMQPSender(ch publisher, queue string, clk clock.Clock) *AMQPSender {
	return &AMQPSender{ch: ch, queue: queue, clock: clk}
}

// Dial opens a connection and channel and declares the notification queue.
func Dial(cfg config.AMQPConfig) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial amqp broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open amqp channel")
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare notification queue")
	}
	return conn, ch, nil
}

func (s *AMQPSender) Send(ctx context.Context, msg shared.Message) error {
	if len(msg.Recipients) == 0 {
		return nil
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.ch.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    s.clock.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}
