// Package whiteboard implements the client side of whiteboard
// synchronization: debounced saves, echo suppression and the refresh
// fallback protocol. The canvas itself is an opaque producer/consumer of a
// serialized element list.
package whiteboard

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"
)

const ActionRefresh = "refresh"

const DefaultDebounce = 3 * time.Second

// UpdatePayload is the body of an incoming whiteboard "update" event:
// either the elements inline, or a refresh signal when the payload was too
// large for the transport.
type UpdatePayload struct {
	Elements json.RawMessage `json:"elements,omitempty"`
	Action   string          `json:"action,omitempty"`
}

// Store persists and fetches the authoritative snapshot. The broadcast
// channel is an optimization; a client can always recover full consistency
// through the Store alone.
type Store interface {
	Load(ctx context.Context, roomID string) (json.RawMessage, error)
	Save(ctx context.Context, roomID string, elements json.RawMessage) error
}

type Status int

const (
	StatusSaved Status = iota
	StatusSaving
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSaving:
		return "saving"
	case StatusError:
		return "error"
	default:
		return "saved"
	}
}

// Engine owns one whiteboard session's synchronization state: the last
// saved snapshot, the pending debounce timer and the remote-echo flag. All
// mutations go through HandleLocalChange and HandleRemoteUpdate.
type Engine struct {
	mu           sync.Mutex
	ctx          context.Context
	roomID       string
	store        Store
	apply        func(elements json.RawMessage)
	debounce     time.Duration
	timer        *time.Timer
	lastSnapshot []byte
	remoteUpdate bool
	status       Status
	closed       bool
}

type Option func(*Engine)

func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		e.debounce = d
	}
}

// NewEngine creates an engine for one room. The apply callback pushes a
// remote snapshot into the canvas; it is invoked from HandleRemoteUpdate's
// goroutine.
func NewEngine(ctx context.Context, roomID string, store Store, apply func(elements json.RawMessage), opts ...Option) *Engine {
	e := &Engine{
		ctx:      ctx,
		roomID:   roomID,
		store:    store,
		apply:    apply,
		debounce: DefaultDebounce,
		status:   StatusSaved,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleLocalChange is the canvas change callback. A change caused by a
// just-applied remote update consumes the echo flag and is dropped;
// anything else resets the debounce timer with the latest snapshot.
func (e *Engine) HandleLocalChange(elements json.RawMessage) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if e.remoteUpdate {
		e.remoteUpdate = false
		return
	}

	snapshot := append([]byte(nil), elements...)
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.flush(snapshot)
	})
}

// flush saves the snapshot taken when the debounce timer was armed,
// skipping the write entirely if nothing changed since the last save or
// remote update.
func (e *Engine) flush(snapshot []byte) {
	e.mu.Lock()
	if e.closed || bytes.Equal(snapshot, e.lastSnapshot) {
		e.mu.Unlock()
		return
	}
	e.status = StatusSaving
	e.mu.Unlock()

	err := e.store.Save(e.ctx, e.roomID, snapshot)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.status = StatusError
		return
	}
	e.status = StatusSaved
	e.lastSnapshot = snapshot
}

// HandleRemoteUpdate merges a broadcast update into local state. A refresh
// signal re-fetches the authoritative snapshot and applies it through the
// same path as an inline payload.
func (e *Engine) HandleRemoteUpdate(payload UpdatePayload) error {
	elements := payload.Elements
	if payload.Action == ActionRefresh {
		fetched, err := e.store.Load(e.ctx, e.roomID)
		if err != nil {
			return err
		}
		elements = fetched
	}
	if elements == nil {
		return nil
	}
	e.applyRemote(elements)
	return nil
}

func (e *Engine) applyRemote(elements json.RawMessage) {
	e.mu.Lock()
	if e.closed || bytes.Equal(elements, e.lastSnapshot) {
		e.mu.Unlock()
		return
	}
	// The flag must be up before the canvas sees the update so the change
	// event it fires is not mistaken for a new local edit.
	e.remoteUpdate = true
	e.lastSnapshot = append([]byte(nil), elements...)
	apply := e.apply
	e.mu.Unlock()

	if apply != nil {
		apply(elements)
	}
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Close tears the session down, cancelling any pending debounce timer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
