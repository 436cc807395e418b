package registry

import (
	"slices"

	"chat-registry/domain/event"
	"chat-registry/errors"

	"github.com/google/uuid"
)

// JoinRoom adds user to the room when password matches exactly. Joining a room
// twice succeeds without adding the user again and without an event.
func (r *Registry) JoinRoom(name, user, password string) (bool, event.DomainEvent) {
	evt, err := r.joinRoom(name, user, password)
	if err != nil {
		r.log.Warn("Join refused", "room", name, "user", user, "error", err)
		return false, nil
	}
	return true, evt
}

func (r *Registry) joinRoom(name, user, password string) (event.DomainEvent, error) {
	room, ok := r.rooms[name]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	if room.PasswordHash != password {
		return nil, errors.ErrInvalidPassword
	}
	if !room.AddMember(user) {
		r.log.Debug("User already in room", "room", name, "user", user)
		return nil, nil
	}
	return event.UserJoinedRoom{
		ID:   uuid.New(),
		Room: name,
		User: user,
	}, nil
}

// LeaveRoom removes user from the room. Unlike JoinRoom it produces no event.
func (r *Registry) LeaveRoom(name, user string) bool {
	if err := r.leaveRoom(name, user); err != nil {
		r.log.Warn("Leave refused", "room", name, "user", user, "error", err)
		return false
	}
	return true
}

func (r *Registry) leaveRoom(name, user string) error {
	room, ok := r.rooms[name]
	if !ok {
		return errors.ErrRoomNotFound
	}
	if !room.RemoveMember(user) {
		return errors.ErrNotAMember
	}
	return nil
}

// GetRoomUsers returns a copy of the members, empty when the room doesn't exist.
func (r *Registry) GetRoomUsers(name string) []string {
	room, ok := r.rooms[name]
	if !ok {
		return []string{}
	}
	return slices.Clone(room.Users)
}

func (r *Registry) IsMember(name, user string) bool {
	room, ok := r.rooms[name]
	return ok && room.HasMember(user)
}
