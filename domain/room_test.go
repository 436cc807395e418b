package domain

import (
	"testing"

	"chat-registry/errors"

	"github.com/stretchr/testify/require"
)

func TestRoom_PostMessage_AppendsInOrder(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "pw", "alice", Chat)

	first := Message{Sender: "alice", Content: "Hello Bob"}
	second := Message{Sender: "bob", Content: "Hi Alice", Timestamp: 42}

	room.PostMessage(first)
	room.PostMessage(second)

	req.Equal([]Message{first, second}, room.Messages)
}

func TestRoom_NewRoom_DoesNotAddCreator(t *testing.T) {
	req := require.New(t)

	room := NewRoom("r1", "pw", "alice", Voice)

	req.Empty(room.Users)
	req.Empty(room.Messages)
	req.False(room.HasMember("alice"))
	req.Equal(RoomInfo{Name: "r1", Type: Voice, Creator: "alice"}, room.Info())
}

func TestRoom_AddMember_NoDuplicates(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "pw", "alice", Chat)

	req.True(room.AddMember("alice"))
	req.False(room.AddMember("alice"))
	req.True(room.AddMember("bob"))

	req.Equal([]string{"alice", "bob"}, room.Users)
}

func TestRoom_RemoveMember_KeepsOrder(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "pw", "alice", Chat)
	room.Users = []string{"alice", "bob", "clara"}

	req.True(room.RemoveMember("bob"))
	req.False(room.RemoveMember("bob"))

	req.Equal([]string{"alice", "clara"}, room.Users)
}

func TestRoom_Clone_DoesNotShareSlices(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "pw", "alice", Chat)
	room.AddMember("alice")
	room.PostMessage(Message{Sender: "alice", Content: "hi"})

	clone := room.Clone()
	clone.AddMember("bob")
	clone.PostMessage(Message{Sender: "bob", Content: "yo"})

	req.Equal([]string{"alice"}, room.Users)
	req.Len(room.Messages, 1)
	req.Len(clone.Messages, 2)
}

func TestParseRoomType(t *testing.T) {
	req := require.New(t)

	chat, err := ParseRoomType("Chat")
	req.NoError(err)
	req.Equal(Chat, chat)

	voice, err := ParseRoomType("voice")
	req.NoError(err)
	req.Equal(Voice, voice)
	req.Equal("voice", voice.String())

	_, err = ParseRoomType("video")
	req.ErrorIs(err, errors.ErrInvalidRoomType)
}
