package ports

import "context"

// MessageBroker is the output port for integration events.
//
// Connect is invoked once at process startup; Close must be safe to call
// even when Connect never succeeded, because startup tolerates a broker
// that is down. Publish must wrap any transport problem in
// entity.ErrPublishFailed rather than dropping the message silently.
type MessageBroker interface {
	Connect(ctx context.Context) error
	Close() error
	Publish(ctx context.Context, queue string, message any) error
}
