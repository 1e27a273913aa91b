package messaging

import (
	"context"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Publisher sends messages to a single, preconfigured channel.
type Publisher interface {
	Publish(ctx context.Context, message interface{}) error
}

type noopBroker struct{}

// NewNoopBroker returns a broker that drops every message. Subscriptions
// receive nothing and end with ctx.
func NewNoopBroker() Broker {
	return noopBroker{}
}

func (noopBroker) Publish(context.Context, string, interface{}) error {
	return nil
}

func (noopBroker) Subscribe(ctx context.Context, _ string) (<-chan []byte, error) {
	ch := make(chan []byte)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (noopBroker) Close() error {
	return nil
}
