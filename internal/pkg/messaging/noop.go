package messaging

import (
	"context"
	"time"
)

// Noop is a Publisher that drops every message.
//
// It is the default when no broker is configured, so environments without a
// messaging system can still run the service.
type Noop struct{}

// Publish accepts and discards the message.
func (Noop) Publish(_ context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}

// Close is a no-op.
func (Noop) Close() error {
	return nil
}
