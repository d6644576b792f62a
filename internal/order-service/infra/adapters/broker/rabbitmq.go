package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
	"github.com/jcmexdev/order-service/internal/order-service/core/ports"
)

var _ ports.MessageBroker = (*RabbitMQBroker)(nil)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// RabbitMQBroker publishes integration events to RabbitMQ through the
// default exchange. The channel is shared by all concurrent publishes and
// amqp channels are not safe for concurrent use, so a mutex serializes them.
type RabbitMQBroker struct {
	url      string
	attempts int
	backoff  time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitMQBroker(url string) *RabbitMQBroker {
	return &RabbitMQBroker{
		url:      url,
		attempts: connectAttempts,
		backoff:  connectBackoff,
	}
}

// Connect dials the broker, opens a channel, and declares the durable
// stock_updates queue. A short retry loop covers container startup where
// RabbitMQ is not yet accepting connections.
func (b *RabbitMQBroker) Connect(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var conn *amqp.Connection
	var err error
	for i := 0; i < b.attempts; i++ {
		conn, err = amqp.Dial(b.url)
		if err == nil {
			break
		}
		slog.WarnContext(ctx, "failed to connect to RabbitMQ",
			"attempt", i+1,
			"error", err,
		)
		// No wait after the final attempt; the failure is about to be
		// reported anyway.
		if i == b.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("could not connect to RabbitMQ: %w", ctx.Err())
		case <-time.After(b.backoff):
		}
	}
	if err != nil {
		return fmt.Errorf("could not connect to RabbitMQ at %s: %w", b.url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("could not open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		"stock_updates", // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("could not declare queue: %w", err)
	}

	b.conn = conn
	b.ch = ch
	slog.InfoContext(ctx, "connected to RabbitMQ", "url", b.url)
	return nil
}

// Close releases the channel and connection. Safe to call when Connect
// never succeeded.
func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ch != nil {
		_ = b.ch.Close()
		b.ch = nil
	}
	if b.conn != nil {
		err := b.conn.Close()
		b.conn = nil
		return err
	}
	return nil
}

// Publish sends the JSON-encoded message to the named queue with persistent
// delivery. Every failure is reported as entity.ErrPublishFailed so the
// caller can recognize the notification-failure class.
func (b *RabbitMQBroker) Publish(ctx context.Context, queue string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%w: marshal message for queue %s: %w", entity.ErrPublishFailed, queue, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ch == nil {
		return fmt.Errorf("%w: channel is not initialized", entity.ErrPublishFailed)
	}

	err = b.ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: publish to queue %s: %w", entity.ErrPublishFailed, queue, err)
	}
	return nil
}
