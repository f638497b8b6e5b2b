package nats

import (
	"context"
	"errors"
	"fmt"

	"ustory-be/internal/pkg/logger"
	"ustory-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Handler processes one message body. Returning an error wrapping
// events.ErrInvalidPayload acks the message; any other error naks it.
type Handler = func(ctx context.Context, subject string, data []byte) error

type Subscriber struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	log      logger.ILogger
	contexts []jetstream.ConsumeContext
}

func NewSubscriber(ctx context.Context, url string, log logger.ILogger) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	if err := ensureStream(ctx, js); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", events.StreamName, err)
	}
	return &Subscriber{nc: nc, js: js, log: log}, nil
}

// Subscribe attaches a durable consumer so messages survive restarts.
func (s *Subscriber) Subscribe(ctx context.Context, subject, durableName string, handler Handler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, events.StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		s.dispatch(handler, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	s.contexts = append(s.contexts, cc)

	s.log.Info("NATS", "Subscribed", map[string]interface{}{"subject": subject, "durable": durableName})
	return nil
}

func (s *Subscriber) dispatch(handler Handler, msg jetstream.Msg) {
	err := handler(context.Background(), msg.Subject(), msg.Data())
	switch {
	case err == nil:
		_ = msg.Ack()
	case errors.Is(err, events.ErrInvalidPayload):
		s.log.Warn("NATS", "Dropping invalid event", map[string]interface{}{"subject": msg.Subject(), "error": err.Error()})
		_ = msg.Ack()
	default:
		s.log.Error("NATS", "Handler failed, requesting redelivery", map[string]interface{}{"subject": msg.Subject(), "error": err})
		_ = msg.Nak()
	}
}

func (s *Subscriber) Close() {
	for _, cc := range s.contexts {
		cc.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
