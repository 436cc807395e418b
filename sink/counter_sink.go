package sink

import (
	"context"
	"maps"
	"sync"

	"chat-registry/contract"
	"chat-registry/domain/event"
)

var _ contract.EventSink = (*Counter)(nil)

// Counter counts delivered events per type, for health reporting.
type Counter struct {
	mu     sync.Mutex
	counts map[event.Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[event.Type]uint64)}
}

func (c *Counter) Consume(_ context.Context, e event.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[e.Type()]++
	return nil
}

func (c *Counter) Counts() map[event.Type]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}
