package sink

import (
	"context"
	"sync"

	"chat-registry/contract"
	"chat-registry/domain/event"
)

var _ contract.EventSink = (*Timeline)(nil)

// Timeline keeps the most recent events in memory, oldest first.
type Timeline struct {
	mu       sync.RWMutex
	capacity int
	events   []event.DomainEvent
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.capacity <= 0 {
		return nil
	}
	if len(t.events) == t.capacity {
		t.events = t.events[1:]
	}
	t.events = append(t.events, e)
	return nil
}

// Recent returns a copy of the retained events.
func (t *Timeline) Recent() []event.DomainEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]event.DomainEvent(nil), t.events...)
}

// ForRoom returns the retained events scoped to room.
func (t *Timeline) ForRoom(room string) []event.DomainEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var res []event.DomainEvent
	for _, e := range t.events {
		if e.RoomName() == room {
			res = append(res, e)
		}
	}
	return res
}
