package broker

import (
	"context"
	"encoding/json"
)

// Delivery is at-most-once: a published event can be lost, and receivers
// must be able to recover by re-reading persisted state.
const (
	// DefaultSoftLimit is the serialized payload size above which
	// publishers should fall back to a refresh signal.
	DefaultSoftLimit = 9000
	// HardLimit is the transport's payload ceiling. Publish rejects
	// anything above it.
	HardLimit = 10240
)

// Event is the wire envelope published on a channel.
type Event struct {
	Channel string          `json:"channel"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}

// Subscriber delivers events for the given channel patterns until the
// returned stop function is called. Stopping is immediate: no events are
// delivered after it returns.
type Subscriber interface {
	Subscribe(ctx context.Context, patterns ...string) (<-chan Event, func())
}

// One message channel and one whiteboard channel per room, namespaced so
// chat and drawing events never cross-deliver.
func MessageChannel(roomID string) string {
	return "room-" + roomID
}

func WhiteboardChannel(roomID string) string {
	return "whiteboard-" + roomID
}
