package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-registry/contract"
	"chat-registry/domain/event"
)

var _ contract.Worker = (*EventFanout)(nil)

// Delivery is an event together with the sinks it is addressed to, resolved
// when the event was produced.
type Delivery struct {
	Event event.DomainEvent
	Sinks []contract.EventSink
}

// Route resolves the recipients of evt. Permanent sinks see every event.
// Room scoped events also go to the sessions listening to the room, except
// SignalingMessage which only reaches the receiver's sessions. RoomDeleted
// drops the room's subscriptions and goes to the sessions that were listening.
//
// It must run in the same critical section as the mutation producing evt, so
// routing follows the subscriptions as they were at that point.
func Route(permanentSinks []contract.EventSink, sessions contract.ISessions, evt event.DomainEvent) []contract.EventSink {
	sinks := append([]contract.EventSink{}, permanentSinks...)
	switch e := evt.(type) {
	case event.UserRegistered:
		return sinks
	case event.SignalingMessage:
		return append(sinks, sessions.GetSinksForUser(e.Room, e.Receiver)...)
	case event.RoomDeleted:
		return append(sinks, sessions.DropRoom(e.Room)...)
	default:
		return append(sinks, sessions.GetSinksForRoom(evt.RoomName())...)
	}
}

// EventFanout delivers routed events. Delivery is best-effort: a failing or
// slow sink is logged and skipped, it never blocks the others longer than
// sinkTimeout.
type EventFanout struct {
	log         *slog.Logger
	deliveries  chan Delivery
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, deliveries chan Delivery, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		deliveries:  deliveries,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case delivery, ok := <-w.deliveries:
			if !ok {
				w.log.Debug("Delivery channel closed")
				return nil
			}
			w.Fanout(ctx, delivery)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout hands one event to each of its sinks in turn.
func (w *EventFanout) Fanout(ctx context.Context, delivery Delivery) {
	for _, sink := range delivery.Sinks {
		w.deliver(ctx, sink, delivery.Event)
	}
}

func (w *EventFanout) deliver(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(sinkCtx, evt); err != nil {
		w.log.Warn("Event delivery failed",
			"type", evt.Type(), "room", evt.RoomName(), "error", err)
	}
}
