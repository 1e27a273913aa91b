package messaging

import (
	"context"
)

type channelPublisher struct {
	broker  Broker
	channel string
}

func NewPublisher(broker Broker, channel string) Publisher {
	return &channelPublisher{broker: broker, channel: channel}
}

func (p *channelPublisher) Publish(ctx context.Context, message interface{}) error {
	return p.broker.Publish(ctx, p.channel, message)
}

// Consume feeds every message on channel to handler until ctx ends or the
// subscription closes. Handler errors are passed to onError and do not stop
// consumption.
func Consume(ctx context.Context, broker Broker, channel string, handler func([]byte) error, onError func(error)) error {
	msgChan, err := broker.Subscribe(ctx, channel)
	if err != nil {
		return err
	}

	for msg := range msgChan {
		if err := handler(msg); err != nil && onError != nil {
			onError(err)
		}
	}
	return ctx.Err()
}
