package registry

import (
	"fmt"
	"slices"

	"chat-registry/domain"
	"chat-registry/domain/event"
	"chat-registry/errors"

	"github.com/google/uuid"
)

func (r *Registry) SendMessage(name, sender, content string) (bool, event.DomainEvent) {
	evt, err := r.sendMessage(name, sender, content)
	if err != nil {
		r.log.Warn("Message refused", "room", name, "sender", sender, "error", err)
		return false, nil
	}
	return true, evt
}

// sendMessage appends with a zero timestamp, stamping time belongs to the caller.
func (r *Registry) sendMessage(name, sender, content string) (event.DomainEvent, error) {
	room, ok := r.rooms[name]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	if !room.HasMember(sender) {
		return nil, errors.ErrNotAMember
	}
	message := domain.Message{Sender: sender, Content: content, Timestamp: 0}
	room.PostMessage(message)
	return event.MessageSent{
		ID:        uuid.New(),
		Room:      name,
		Sender:    message.Sender,
		Content:   message.Content,
		Timestamp: message.Timestamp,
	}, nil
}

// GetRoomMessages returns the whole history to members only. Anyone else gets
// an empty slice, whether the room exists or not.
func (r *Registry) GetRoomMessages(name, user string) []domain.Message {
	room, ok := r.rooms[name]
	if !ok {
		r.log.Debug("History refused, room doesn't exist", "room", name, "user", user)
		return []domain.Message{}
	}
	if !room.HasMember(user) {
		r.log.Debug("History refused, user is not a member", "room", name, "user", user)
		return []domain.Message{}
	}
	return slices.Clone(room.Messages)
}

// SendSignaling checks that both ends are members and hands the payload back
// as an event. Nothing is stored.
func (r *Registry) SendSignaling(name, sender, receiver, content string) (bool, event.DomainEvent) {
	evt, err := r.sendSignaling(name, sender, receiver, content)
	if err != nil {
		r.log.Warn("Signaling refused",
			"room", name, "sender", sender, "receiver", receiver, "error", err)
		return false, nil
	}
	return true, evt
}

func (r *Registry) sendSignaling(name, sender, receiver, content string) (event.DomainEvent, error) {
	room, ok := r.rooms[name]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	if !room.HasMember(sender) {
		return nil, fmt.Errorf("sender %s: %w", sender, errors.ErrNotAMember)
	}
	if !room.HasMember(receiver) {
		return nil, fmt.Errorf("receiver %s: %w", receiver, errors.ErrNotAMember)
	}
	return event.SignalingMessage{
		ID:       uuid.New(),
		Room:     name,
		Sender:   sender,
		Receiver: receiver,
		Content:  content,
	}, nil
}
