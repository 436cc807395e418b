package sink

import (
	"context"
	"sync"

	"chat-registry/contract"
	"chat-registry/domain/event"
	"chat-registry/errors"
)

var _ contract.EventSink = (*SessionSink)(nil)

// SessionSink buffers events for one connected client. The connection
// drains Events until Done is closed.
type SessionSink struct {
	Events    chan event.DomainEvent
	done      chan struct{}
	closeOnce sync.Once
}

func NewSessionSink(bufferSize int) *SessionSink {
	return &SessionSink{
		Events: make(chan event.DomainEvent, bufferSize),
		done:   make(chan struct{}),
	}
}

// Consume waits for room in the buffer until ctx ends.
func (s *SessionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case s.Events <- e:
		return nil
	case <-s.done:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return errors.ErrSinkTimeout
	}
}

func (s *SessionSink) Done() <-chan struct{} { return s.done }

func (s *SessionSink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
