package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"chat-registry/domain"
	"chat-registry/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleSnapshot() domain.Snapshot {
	snapshot := domain.NewSnapshot()
	snapshot.Users["0x1"] = domain.UserProfile{Username: "alice", WalletAddress: "0x1"}
	snapshot.Users["0x2"] = domain.UserProfile{Username: "bob", WalletAddress: "0x2"}
	snapshot.Usernames["alice"] = "0x1"
	snapshot.Usernames["bob"] = "0x2"

	chat := domain.NewRoom("general", "pw", "0x1", domain.Chat)
	chat.Users = []string{"0x2", "0x1"}
	chat.Messages = []domain.Message{
		{Sender: "0x1", Content: "hi", Timestamp: 0},
		{Sender: "0x2", Content: "hello: with colon", Timestamp: 1700000000123456789},
	}
	snapshot.Rooms["general"] = chat
	snapshot.Rooms["call:1"] = domain.NewRoom("call:1", "", "0x2", domain.Voice)
	return snapshot
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	repository := NewSnapshotRepository(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))
	snapshot := sampleSnapshot()

	req.NoError(repository.Save(snapshot))
	loaded, err := repository.Load()

	req.NoError(err)
	req.Equal(snapshot, loaded)
}

func TestSnapshotRepository_Load_EmptyDatabase(t *testing.T) {
	req := require.New(t)
	repository := NewSnapshotRepository(openTestDB(t), slog.Default())

	loaded, err := repository.Load()

	req.NoError(err)
	req.Empty(loaded.Users)
	req.Empty(loaded.Usernames)
	req.Empty(loaded.Rooms)
}

func TestSnapshotRepository_Save_ReplacesPreviousSnapshot(t *testing.T) {
	req := require.New(t)
	repository := NewSnapshotRepository(openTestDB(t), slog.Default())

	// Given a first snapshot is stored
	req.NoError(repository.Save(sampleSnapshot()))

	// When a smaller snapshot is saved
	next := domain.NewSnapshot()
	next.Users["0x2"] = domain.UserProfile{Username: "bob", WalletAddress: "0x2"}
	next.Usernames["bob"] = "0x2"
	next.Rooms["general"] = domain.NewRoom("general", "pw", "0x1", domain.Chat)
	req.NoError(repository.Save(next))

	// Then nothing from the first one survives
	loaded, err := repository.Load()
	req.NoError(err)
	req.Equal(next, loaded)
}

func TestSnapshotRepository_Load_CorruptRoom(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewSnapshotRepository(db, slog.Default())
	req.NoError(repository.Save(domain.NewSnapshot()))

	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set(prefixed(generationPrefix(1), roomKey("broken")), []byte{0xff, 0xff, 0xff})
	}))

	_, err := repository.Load()
	req.Error(err)
}

func TestDecodeRoom_UnknownRoomType(t *testing.T) {
	req := require.New(t)
	room := domain.NewRoom("r1", "pw", "alice", domain.RoomType(7))

	data, err := encodeRoom(room)
	req.NoError(err)

	_, err = decodeRoom(data)
	req.Error(err)
}

func TestSnapshotRepository_RoundTrip_ArbitraryBytes(t *testing.T) {
	req := require.New(t)
	repository := NewSnapshotRepository(openTestDB(t), slog.Default())

	// Given every string of the snapshot is invalid UTF-8
	name, wallet, username := "room\xff\xfe", "0x\xff\xfe", "alice\xfe"
	snapshot := domain.NewSnapshot()
	snapshot.Users[wallet] = domain.UserProfile{Username: username, WalletAddress: wallet}
	snapshot.Usernames[username] = wallet
	room := domain.NewRoom(name, "pw\xff\xfe", wallet, domain.Voice)
	room.AddMember(wallet)
	room.PostMessage(domain.Message{Sender: wallet, Content: "\xff\xfe binary\x00"})
	snapshot.Rooms[name] = room

	// When it is saved and loaded back
	req.NoError(repository.Save(snapshot))
	loaded, err := repository.Load()

	// Then nothing is altered
	req.NoError(err)
	req.Equal(snapshot, loaded)
}

func TestSnapshotRepository_Save_LargerThanOneTransaction(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithMemTableSize(4 << 20).
		WithValueThreshold(256 << 10).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	repository := NewSnapshotRepository(db, slog.Default())

	// Given a history bigger than a single transaction accepts
	snapshot := domain.NewSnapshot()
	content := strings.Repeat("x", 1024)
	for i := 0; i < 20; i++ {
		room := domain.NewRoom(fmt.Sprintf("room-%d", i), "", "0x1", domain.Chat)
		room.AddMember("0x1")
		for j := 0; j < 50; j++ {
			room.PostMessage(domain.Message{Sender: "0x1", Content: content})
		}
		snapshot.Rooms[room.Name] = room
	}
	err = db.Update(func(txn *badger.Txn) error {
		for name, room := range snapshot.Rooms {
			data, err := encodeRoom(room)
			if err != nil {
				return err
			}
			if err = txn.Set([]byte("single:"+name), data); err != nil {
				return err
			}
		}
		return nil
	})
	req.ErrorIs(err, badger.ErrTxnTooBig)

	// When it is saved twice
	req.NoError(repository.Save(snapshot))
	req.NoError(repository.Save(snapshot))

	// Then it loads back whole
	loaded, err := repository.Load()
	req.NoError(err)
	req.Equal(snapshot, loaded)
}

func TestSnapshotRepository_Save_RemovesPreviousGeneration(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewSnapshotRepository(db, slog.Default())

	req.NoError(repository.Save(sampleSnapshot()))
	req.NoError(repository.Save(sampleSnapshot()))

	generation, err := repository.currentGeneration()
	req.NoError(err)
	req.Equal(uint64(2), generation)
	req.NoError(db.View(func(txn *badger.Txn) error {
		found := false
		err := scanPrefix(txn, generationPrefix(1), func(string, []byte) error {
			found = true
			return nil
		})
		req.False(found)
		return err
	}))
}

func TestSnapshotRepository_Load_IgnoresUnfinishedGeneration(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewSnapshotRepository(db, slog.Default())
	snapshot := sampleSnapshot()
	req.NoError(repository.Save(snapshot))

	// Given a save interrupted before the generation switch
	data, err := encodeRoom(domain.NewRoom("ghost", "", "0x9", domain.Chat))
	req.NoError(err)
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set(prefixed(generationPrefix(2), roomKey("ghost")), data)
	}))

	// Then readers still see the last complete snapshot
	loaded, err := repository.Load()
	req.NoError(err)
	req.Equal(snapshot, loaded)

	// And the next save overwrites the leftovers
	req.NoError(repository.Save(snapshot))
	loaded, err = repository.Load()
	req.NoError(err)
	req.Equal(snapshot, loaded)
}

func TestSnapshotRepository_Load_CorruptGeneration(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewSnapshotRepository(db, slog.Default())

	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set(generationKey, []byte("not a number"))
	}))

	_, err := repository.Load()
	req.ErrorIs(err, errors.ErrCorruptSnapshot)
}
