package repository

import "context"

// IEventPublisher publishes a payload to a named topic or queue and returns the broker message id.
type IEventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) (string, error)
}
