package event

import (
	"chat-registry/domain"

	"github.com/google/uuid"
)

type Type string

const (
	RoomCreatedType      Type = "ROOM_CREATED"
	UserJoinedRoomType   Type = "USER_JOINED_ROOM"
	MessageSentType      Type = "MESSAGE_SENT"
	RoomDeletedType      Type = "ROOM_DELETED"
	UserRegisteredType   Type = "USER_REGISTERED"
	SignalingMessageType Type = "SIGNALING_MESSAGE"
)

// DomainEvent is produced by a successful registry mutation.
// RoomName is empty for events that are not scoped to a room.
type DomainEvent interface {
	Type() Type
	RoomName() string
}

type RoomCreated struct {
	ID       uuid.UUID
	Room     string
	RoomType domain.RoomType
	Creator  string
}

func (RoomCreated) Type() Type         { return RoomCreatedType }
func (e RoomCreated) RoomName() string { return e.Room }

type UserJoinedRoom struct {
	ID   uuid.UUID
	Room string
	User string
}

func (UserJoinedRoom) Type() Type         { return UserJoinedRoomType }
func (e UserJoinedRoom) RoomName() string { return e.Room }

type MessageSent struct {
	ID        uuid.UUID
	Room      string
	Sender    string
	Content   string
	Timestamp int64
}

func (MessageSent) Type() Type         { return MessageSentType }
func (e MessageSent) RoomName() string { return e.Room }

type RoomDeleted struct {
	ID        uuid.UUID
	Room      string
	DeletedBy string
}

func (RoomDeleted) Type() Type         { return RoomDeletedType }
func (e RoomDeleted) RoomName() string { return e.Room }

type UserRegistered struct {
	ID            uuid.UUID
	Username      string
	WalletAddress string
}

func (UserRegistered) Type() Type       { return UserRegisteredType }
func (UserRegistered) RoomName() string { return "" }

// SignalingMessage carries an opaque payload between two members of a room.
// It is relayed only, never stored.
type SignalingMessage struct {
	ID       uuid.UUID
	Room     string
	Sender   string
	Receiver string
	Content  string
}

func (SignalingMessage) Type() Type         { return SignalingMessageType }
func (e SignalingMessage) RoomName() string { return e.Room }
