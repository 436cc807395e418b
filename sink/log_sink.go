package sink

import (
	"context"
	"log/slog"

	"chat-registry/contract"
	"chat-registry/domain/event"
)

var _ contract.EventSink = LogSink{}

type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

// Consume logs one line per event. Message and signaling contents are left
// out, only their size is logged.
func (l LogSink) Consume(ctx context.Context, e event.DomainEvent) error {
	attrs := []any{"type", e.Type()}
	switch evt := e.(type) {
	case event.RoomCreated:
		attrs = append(attrs, "room", evt.Room, "room_type", evt.RoomType.String(), "creator", evt.Creator)
	case event.UserJoinedRoom:
		attrs = append(attrs, "room", evt.Room, "user", evt.User)
	case event.MessageSent:
		attrs = append(attrs, "room", evt.Room, "sender", evt.Sender, "size", len(evt.Content))
	case event.RoomDeleted:
		attrs = append(attrs, "room", evt.Room, "deleted_by", evt.DeletedBy)
	case event.UserRegistered:
		attrs = append(attrs, "username", evt.Username, "wallet_address", evt.WalletAddress)
	case event.SignalingMessage:
		attrs = append(attrs, "room", evt.Room, "sender", evt.Sender, "receiver", evt.Receiver, "size", len(evt.Content))
	}
	l.log.InfoContext(ctx, "Registry event", attrs...)
	return nil
}
