package handlers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"collabBoard/internal/broker"
)

type fakeSubscriber struct {
	mu      sync.Mutex
	events  chan broker.Event
	stopped bool
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, patterns ...string) (<-chan broker.Event, func()) {
	return f.events, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.stopped {
			f.stopped = true
			close(f.events)
		}
	}
}

func (f *fakeSubscriber) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func TestShutdownRightAfterStartupStopsSubscription(t *testing.T) {
	sub := &fakeSubscriber{events: make(chan broker.Event)}
	sh := NewSocketHandler(sub, context.Background(), nil)

	sh.Shutdown()

	assert.True(t, sub.isStopped(), "the subscription must be closed even when no event was ever delivered")
}
