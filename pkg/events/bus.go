package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic carries every domain event. Subscribers filter on the envelope type.
const Topic = "promptly.events"

// Envelope is the wire form of an Event on the bus.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Bus is an in-process publish/subscribe channel for domain events. It
// replaces a platform notification center with explicit typed payloads.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus(logger watermill.LoggerAdapter) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, logger),
	}
}

// Publish sends an event to all current subscribers.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(Envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return b.pubSub.Publish(Topic, msg)
}

// Subscribe returns the raw message stream. Callers must Ack every message.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, Topic)
}

// Close shuts the underlying channel down and terminates subscriber streams.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode unmarshals a bus message into an envelope.
func Decode(msg *message.Message) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		return nil, fmt.Errorf("failed to decode event envelope: %w", err)
	}
	return &env, nil
}
