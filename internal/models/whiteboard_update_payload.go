package models

import "encoding/json"

// WhiteboardUpdatePayload is the body of a whiteboard "update" event.
// Either Elements is carried inline, or Action is "refresh" and clients
// must re-fetch the snapshot.
type WhiteboardUpdatePayload struct {
	Elements json.RawMessage `json:"elements,omitempty"`
	Action   string          `json:"action,omitempty"`
}
