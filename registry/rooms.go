package registry

import (
	"chat-registry/domain"
	"chat-registry/domain/event"
	"chat-registry/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CreateRoom stores password verbatim as the room password hash. The creator
// is not added to the members, joining is a separate step.
func (r *Registry) CreateRoom(name, password, creator string, roomType domain.RoomType) (bool, event.DomainEvent) {
	evt, err := r.createRoom(name, password, creator, roomType)
	if err != nil {
		r.log.Warn("Room creation refused", "room", name, "creator", creator, "error", err)
		return false, nil
	}
	return true, evt
}

func (r *Registry) createRoom(name, password, creator string, roomType domain.RoomType) (event.DomainEvent, error) {
	if _, ok := r.rooms[name]; ok {
		return nil, errors.ErrRoomAlreadyExists
	}
	r.rooms[name] = domain.NewRoom(name, password, creator, roomType)
	return event.RoomCreated{
		ID:       uuid.New(),
		Room:     name,
		RoomType: roomType,
		Creator:  creator,
	}, nil
}

// DeleteRoom removes the room with its members and history. Only the exact
// creator identifier may do it.
func (r *Registry) DeleteRoom(name, walletAddress string) (bool, event.DomainEvent) {
	evt, err := r.deleteRoom(name, walletAddress)
	switch err {
	case nil:
		return true, evt
	case errors.ErrRoomNotFound:
		r.log.Warn("Room deletion refused, room doesn't exist", "room", name, "caller", walletAddress)
	default:
		r.log.Warn("Room deletion refused, caller is not the creator", "room", name, "caller", walletAddress)
	}
	return false, nil
}

func (r *Registry) deleteRoom(name, walletAddress string) (event.DomainEvent, error) {
	room, ok := r.rooms[name]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	if room.Creator != walletAddress {
		return nil, errors.ErrNotAuthorized
	}
	delete(r.rooms, name)
	return event.RoomDeleted{
		ID:        uuid.New(),
		Room:      name,
		DeletedBy: walletAddress,
	}, nil
}

// ListRooms returns the room names in no particular order.
func (r *Registry) ListRooms() []string {
	return lo.Keys(r.rooms)
}

func (r *Registry) GetRoomInfo(name string) (domain.RoomInfo, bool) {
	room, ok := r.rooms[name]
	if !ok {
		return domain.RoomInfo{}, false
	}
	return room.Info(), true
}
