package domain

import (
	"slices"
	"strings"

	"chat-registry/errors"

	"github.com/samber/lo"
)

type RoomType int

const (
	Chat RoomType = iota
	Voice
)

func (t RoomType) String() string {
	switch t {
	case Chat:
		return "chat"
	case Voice:
		return "voice"
	default:
		return "unknown"
	}
}

// ParseRoomType accepts the text form produced by RoomType.String, case-insensitive.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(s) {
	case "chat":
		return Chat, nil
	case "voice":
		return Voice, nil
	default:
		return 0, errors.ErrInvalidRoomType
	}
}

// Room is a named channel with its member list and message history.
// Users keeps insertion order and never holds the same identifier twice.
type Room struct {
	Name         string
	Type         RoomType
	PasswordHash string
	Messages     []Message
	Users        []string
	Creator      string
}

// RoomInfo is the public projection of a Room.
type RoomInfo struct {
	Name    string
	Type    RoomType
	Creator string
}

func NewRoom(name, passwordHash, creator string, roomType RoomType) *Room {
	return &Room{
		Name:         name,
		Type:         roomType,
		PasswordHash: passwordHash,
		Messages:     []Message{},
		Users:        []string{},
		Creator:      creator,
	}
}

func (r *Room) Info() RoomInfo {
	return RoomInfo{Name: r.Name, Type: r.Type, Creator: r.Creator}
}

func (r *Room) HasMember(user string) bool {
	return lo.Contains(r.Users, user)
}

// AddMember appends user unless already present and reports whether it was added.
func (r *Room) AddMember(user string) bool {
	if r.HasMember(user) {
		return false
	}
	r.Users = append(r.Users, user)
	return true
}

// RemoveMember drops the first occurrence of user, keeping the order of the others.
func (r *Room) RemoveMember(user string) bool {
	idx := lo.IndexOf(r.Users, user)
	if idx < 0 {
		return false
	}
	r.Users = slices.Delete(r.Users, idx, idx+1)
	return true
}

func (r *Room) PostMessage(message Message) {
	r.Messages = append(r.Messages, message)
}

// Clone returns a deep copy that shares no slice with r.
func (r *Room) Clone() *Room {
	c := *r
	c.Messages = slices.Clone(r.Messages)
	c.Users = slices.Clone(r.Users)
	if c.Messages == nil {
		c.Messages = []Message{}
	}
	if c.Users == nil {
		c.Users = []string{}
	}
	return &c
}
