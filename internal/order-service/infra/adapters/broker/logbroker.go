package broker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jcmexdev/order-service/internal/order-service/core/ports"
)

var _ ports.MessageBroker = (*LogBroker)(nil)

// LogBroker is an inert adapter for local development without a running
// RabbitMQ. It logs every message instead of delivering it and never fails.
type LogBroker struct{}

func NewLogBroker() *LogBroker {
	return &LogBroker{}
}

func (b *LogBroker) Connect(ctx context.Context) error {
	slog.InfoContext(ctx, "log broker connected, messages will not be delivered")
	return nil
}

func (b *LogBroker) Close() error {
	slog.Info("log broker closed")
	return nil
}

func (b *LogBroker) Publish(ctx context.Context, queue string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "log broker could not render message", "queue", queue, "error", err)
		return nil
	}
	slog.InfoContext(ctx, "log broker message", "queue", queue, "body", string(body))
	return nil
}
