package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"collabBoard/internal/errs"
)

// RedisBroker fans events out over redis pub/sub. One redis channel per
// application channel.
type RedisBroker struct {
	rdb *redis.Client
}

func NewRedisBroker(rdb *redis.Client) *RedisBroker {
	return &RedisBroker{rdb: rdb}
}

func (rb *RedisBroker) Publish(ctx context.Context, channel, event string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPublishFailed, err)
	}

	envelope, err := json.Marshal(Event{
		Channel: channel,
		Event:   event,
		Payload: body,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPublishFailed, err)
	}

	if len(envelope) > HardLimit {
		return fmt.Errorf("%w: payload of %d bytes exceeds transport limit", errs.ErrPublishFailed, len(envelope))
	}

	if err := rb.rdb.Publish(ctx, channel, envelope).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPublishFailed, err)
	}
	return nil
}

func (rb *RedisBroker) Subscribe(ctx context.Context, patterns ...string) (<-chan Event, func()) {
	pubsub := rb.rdb.PSubscribe(ctx, patterns...)
	out := make(chan Event)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Error unmarshalling published event: %v", err)
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() {
		if err := pubsub.Close(); err != nil {
			log.Printf("Error closing subscription: %v", err)
		}
	}
}
