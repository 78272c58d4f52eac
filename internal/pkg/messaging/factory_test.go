package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/roster/internal/pkg/messaging"
)

func TestNewFromDriverDefaultsToNoop(t *testing.T) {
	for _, driver := range []string{"", "noop", " noop "} {
		pub, err := messaging.NewFromDriver(driver, messaging.FactoryOptions{})
		if err != nil {
			t.Fatalf("driver %q: %v", driver, err)
		}
		if _, ok := pub.(messaging.Noop); !ok {
			t.Fatalf("driver %q: expected noop publisher, got %T", driver, pub)
		}
	}
}

func TestNewFromDriverUnknown(t *testing.T) {
	_, err := messaging.NewFromDriver("rabbitmq", messaging.FactoryOptions{})
	if !errors.Is(err, messaging.ErrUnknownDriver) {
		t.Fatalf("expected unknown driver error, got %v", err)
	}
}

func TestNoopPublish(t *testing.T) {
	// Arrange
	pub := messaging.Noop{}

	// Act
	res, err := pub.Publish(context.Background(), "member_registered", messaging.OutgoingMessage{Body: []byte("{}")})

	// Assert
	if err != nil {
		t.Fatalf("noop publish failed: %v", err)
	}
	if res.Topic != "member_registered" {
		t.Fatalf("expected destination echoed, got %q", res.Topic)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("noop close failed: %v", err)
	}
}
