package registry

import (
	"log/slog"
	"testing"

	"chat-registry/domain"
	"chat-registry/domain/event"
	"chat-registry/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestRegistry_EndToEnd_Scenario(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	ok, _ := r.CreateRoom("r1", "pw", "alice", domain.Chat)
	req.True(ok)
	ok, _ = r.JoinRoom("r1", "alice", "pw")
	req.True(ok)
	ok, _ = r.JoinRoom("r1", "bob", "wrong")
	req.False(ok)
	ok, _ = r.JoinRoom("r1", "bob", "pw")
	req.True(ok)
	ok, _ = r.SendMessage("r1", "alice", "hi")
	req.True(ok)

	req.Equal([]domain.Message{{Sender: "alice", Content: "hi", Timestamp: 0}}, r.GetRoomMessages("r1", "bob"))

	req.True(r.LeaveRoom("r1", "alice"))
	req.Equal([]string{"bob"}, r.GetRoomUsers("r1"))
}

func TestRegistry_RegisterUser(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	// Given alice is registered
	ok, evt := r.RegisterUser("alice", "0x1")
	req.True(ok)
	registered, isRegistered := evt.(event.UserRegistered)
	req.True(isRegistered)
	req.Equal("alice", registered.Username)
	req.Equal("0x1", registered.WalletAddress)
	req.Empty(registered.RoomName())

	// When the username or the wallet address is reused
	ok, evt = r.RegisterUser("alice", "0x2")
	req.False(ok)
	req.Nil(evt)
	ok, evt = r.RegisterUser("bob", "0x1")
	req.False(ok)
	req.Nil(evt)

	// Then nothing changed
	req.Equal(1, r.UserCount())
	username, found := r.GetUsername("0x1")
	req.True(found)
	req.Equal("alice", username)
	_, found = r.GetUsername("0x2")
	req.False(found)
	_, found = r.GetWalletAddress("bob")
	req.False(found)
	wallet, found := r.GetWalletAddress("alice")
	req.True(found)
	req.Equal("0x1", wallet)
}

func TestRegistry_RegisterUser_ReturnsAlreadyRegistered(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	_, err := r.registerUser("alice", "0x1")
	req.NoError(err)

	_, err = r.registerUser("alice", "0x2")
	req.ErrorIs(err, errors.ErrAlreadyRegistered)
	_, err = r.registerUser("bob", "0x1")
	req.ErrorIs(err, errors.ErrAlreadyRegistered)
}

func TestRegistry_Lookups_OnEmptyRegistry(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	username, ok := r.GetUsername("0x1")
	req.False(ok)
	req.Empty(username)
	wallet, ok := r.GetWalletAddress("alice")
	req.False(ok)
	req.Empty(wallet)
	req.Empty(r.ListRooms())
	_, ok = r.GetRoomInfo("r1")
	req.False(ok)
	req.NotNil(r.GetRoomUsers("r1"))
	req.Empty(r.GetRoomUsers("r1"))
	req.Empty(r.GetRoomMessages("r1", "alice"))
}

func TestRegistry_CreateRoom(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	ok, evt := r.CreateRoom("r1", "pw", "alice", domain.Voice)
	req.True(ok)
	req.Equal(event.RoomCreatedType, evt.Type())
	created := evt.(event.RoomCreated)
	req.Equal("r1", created.Room)
	req.Equal(domain.Voice, created.RoomType)
	req.Equal("alice", created.Creator)

	info, found := r.GetRoomInfo("r1")
	req.True(found)
	req.Equal(domain.RoomInfo{Name: "r1", Type: domain.Voice, Creator: "alice"}, info)

	// The password is stored as given
	req.Equal("pw", r.rooms["r1"].PasswordHash)

	// Duplicate names are refused and the original room is kept
	ok, evt = r.CreateRoom("r1", "other", "bob", domain.Chat)
	req.False(ok)
	req.Nil(evt)
	info, _ = r.GetRoomInfo("r1")
	req.Equal("alice", info.Creator)

	_, err := r.createRoom("r1", "pw", "alice", domain.Chat)
	req.ErrorIs(err, errors.ErrRoomAlreadyExists)
}

func TestRegistry_CreateRoom_DoesNotJoinCreator(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	ok, _ := r.CreateRoom("r1", "pw", "alice", domain.Chat)
	req.True(ok)

	// The creator is not a member until an explicit join
	req.Empty(r.GetRoomUsers("r1"))
	ok, _ = r.SendMessage("r1", "alice", "hi")
	req.False(ok)
	req.Empty(r.GetRoomMessages("r1", "alice"))
}

func TestRegistry_ListRooms(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.CreateRoom("r2", "pw", "alice", domain.Voice)
	r.CreateRoom("r3", "pw", "bob", domain.Chat)

	req.ElementsMatch([]string{"r1", "r2", "r3"}, r.ListRooms())
}

func TestRegistry_DeleteRoom(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	// Given a room with members and history
	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "alice", "pw")
	r.JoinRoom("r1", "bob", "pw")
	r.SendMessage("r1", "alice", "hi")

	// When someone else than the creator deletes it
	ok, evt := r.DeleteRoom("r1", "bob")

	// Then the room is untouched
	req.False(ok)
	req.Nil(evt)
	_, found := r.GetRoomInfo("r1")
	req.True(found)
	req.Len(r.GetRoomMessages("r1", "bob"), 1)

	// When the creator deletes it
	ok, evt = r.DeleteRoom("r1", "alice")

	// Then everything is gone
	req.True(ok)
	req.Equal(event.RoomDeleted{ID: evt.(event.RoomDeleted).ID, Room: "r1", DeletedBy: "alice"}, evt)
	_, found = r.GetRoomInfo("r1")
	req.False(found)
	req.Empty(r.GetRoomUsers("r1"))
	req.Empty(r.ListRooms())

	// And deleting it again fails
	ok, _ = r.DeleteRoom("r1", "alice")
	req.False(ok)
}

func TestRegistry_DeleteRoom_Errors(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	_, err := r.deleteRoom("r1", "alice")
	req.ErrorIs(err, errors.ErrRoomNotFound)

	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	_, err = r.deleteRoom("r1", "ALICE")
	req.ErrorIs(err, errors.ErrNotAuthorized)
}

func TestRegistry_DeleteRoom_ThenRecreate(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "alice", "pw")
	r.SendMessage("r1", "alice", "hi")
	r.DeleteRoom("r1", "alice")

	ok, _ := r.CreateRoom("r1", "new", "bob", domain.Voice)
	req.True(ok)

	// A recreated room starts empty
	req.Empty(r.GetRoomUsers("r1"))
	info, _ := r.GetRoomInfo("r1")
	req.Equal("bob", info.Creator)
	r.JoinRoom("r1", "alice", "new")
	req.Empty(r.GetRoomMessages("r1", "alice"))
}

func TestRegistry_JoinRoom_Idempotent(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("r1", "pw", "alice", domain.Chat)

	ok, evt := r.JoinRoom("r1", "bob", "pw")
	req.True(ok)
	req.Equal(event.UserJoinedRoomType, evt.Type())
	req.Equal("bob", evt.(event.UserJoinedRoom).User)

	// Joining again succeeds without a second entry nor event
	ok, evt = r.JoinRoom("r1", "bob", "pw")
	req.True(ok)
	req.Nil(evt)
	req.Equal([]string{"bob"}, r.GetRoomUsers("r1"))
}

func TestRegistry_JoinRoom_Errors(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	ok, evt := r.JoinRoom("missing", "bob", "pw")
	req.False(ok)
	req.Nil(evt)
	_, err := r.joinRoom("missing", "bob", "pw")
	req.ErrorIs(err, errors.ErrRoomNotFound)

	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	_, err = r.joinRoom("r1", "bob", "PW")
	req.ErrorIs(err, errors.ErrInvalidPassword)
	_, err = r.joinRoom("r1", "bob", "")
	req.ErrorIs(err, errors.ErrInvalidPassword)
	req.Empty(r.GetRoomUsers("r1"))
}

func TestRegistry_JoinRoom_EmptyPassword(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("open", "", "alice", domain.Chat)

	ok, _ := r.JoinRoom("open", "bob", "")
	req.True(ok)
	ok, _ = r.JoinRoom("open", "clara", "pw")
	req.False(ok)
}

func TestRegistry_LeaveRoom(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "alice", "pw")
	r.JoinRoom("r1", "bob", "pw")
	r.JoinRoom("r1", "clara", "pw")

	req.True(r.LeaveRoom("r1", "bob"))
	req.Equal([]string{"alice", "clara"}, r.GetRoomUsers("r1"))

	// Leaving twice or leaving an unknown room fails
	req.False(r.LeaveRoom("r1", "bob"))
	req.False(r.LeaveRoom("missing", "alice"))
	req.ErrorIs(r.leaveRoom("r1", "bob"), errors.ErrNotAMember)
	req.ErrorIs(r.leaveRoom("missing", "alice"), errors.ErrRoomNotFound)

	// Rejoining appends at the end
	r.JoinRoom("r1", "bob", "pw")
	req.Equal([]string{"alice", "clara", "bob"}, r.GetRoomUsers("r1"))
}

func TestRegistry_GetRoomUsers_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "alice", "pw")

	users := r.GetRoomUsers("r1")
	users[0] = "mallory"

	req.Equal([]string{"alice"}, r.GetRoomUsers("r1"))
}

func TestRegistry_SendMessage(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "alice", "pw")

	ok, evt := r.SendMessage("r1", "alice", "first")
	req.True(ok)
	sent := evt.(event.MessageSent)
	req.Equal("r1", sent.RoomName())
	req.Equal("alice", sent.Sender)
	req.Equal("first", sent.Content)
	req.Zero(sent.Timestamp)

	r.SendMessage("r1", "alice", "second")

	req.Equal([]domain.Message{
		{Sender: "alice", Content: "first"},
		{Sender: "alice", Content: "second"},
	}, r.GetRoomMessages("r1", "alice"))

	// Non members and unknown rooms are refused
	ok, evt = r.SendMessage("r1", "bob", "nope")
	req.False(ok)
	req.Nil(evt)
	ok, _ = r.SendMessage("missing", "alice", "nope")
	req.False(ok)
	_, err := r.sendMessage("r1", "bob", "nope")
	req.ErrorIs(err, errors.ErrNotAMember)
	_, err = r.sendMessage("missing", "alice", "nope")
	req.ErrorIs(err, errors.ErrRoomNotFound)
	req.Len(r.GetRoomMessages("r1", "alice"), 2)
}

func TestRegistry_GetRoomMessages_MembersOnly(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()

	// Given a room with history
	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "alice", "pw")
	r.SendMessage("r1", "alice", "secret")

	// Then a non member reads nothing, even the creator after leaving
	req.Empty(r.GetRoomMessages("r1", "bob"))
	r.LeaveRoom("r1", "alice")
	req.Empty(r.GetRoomMessages("r1", "alice"))

	// And the history is still there for the next member
	r.JoinRoom("r1", "bob", "pw")
	req.Len(r.GetRoomMessages("r1", "bob"), 1)
}

func TestRegistry_SendSignaling(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("call", "pw", "alice", domain.Voice)
	r.JoinRoom("call", "alice", "pw")
	r.JoinRoom("call", "bob", "pw")

	ok, evt := r.SendSignaling("call", "alice", "bob", `{"type":"offer"}`)
	req.True(ok)
	signal := evt.(event.SignalingMessage)
	req.Equal("call", signal.Room)
	req.Equal("alice", signal.Sender)
	req.Equal("bob", signal.Receiver)
	req.Equal(`{"type":"offer"}`, signal.Content)

	// Signaling is not stored
	req.Empty(r.GetRoomMessages("call", "alice"))
}

func TestRegistry_SendSignaling_RequiresBothMembers(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("call", "pw", "alice", domain.Voice)
	r.JoinRoom("call", "alice", "pw")

	ok, evt := r.SendSignaling("call", "alice", "bob", "sdp")
	req.False(ok)
	req.Nil(evt)
	ok, _ = r.SendSignaling("call", "bob", "alice", "sdp")
	req.False(ok)
	ok, _ = r.SendSignaling("missing", "alice", "alice", "sdp")
	req.False(ok)

	_, err := r.sendSignaling("call", "alice", "bob", "sdp")
	req.ErrorIs(err, errors.ErrNotAMember)
	req.ErrorContains(err, "receiver")
	_, err = r.sendSignaling("call", "bob", "alice", "sdp")
	req.ErrorIs(err, errors.ErrNotAMember)
	req.ErrorContains(err, "sender")
	_, err = r.sendSignaling("missing", "alice", "alice", "sdp")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestRegistry_IsMember(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry()
	r.CreateRoom("r1", "pw", "alice", domain.Chat)
	r.JoinRoom("r1", "bob", "pw")

	req.True(r.IsMember("r1", "bob"))
	req.False(r.IsMember("r1", "alice"))
	req.False(r.IsMember("missing", "bob"))
}
