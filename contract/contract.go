//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-registry/domain"
	"chat-registry/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// ISessions routes events to connected clients.
type ISessions interface {
	Subscribe(sessionID, user, room string, sink EventSink)
	Unsubscribe(sessionID, room string)
	Remove(sessionID string)
	// DropRoom removes every subscription to room and returns the sinks
	// that were listening to it.
	DropRoom(room string) []EventSink
	GetSinksForRoom(room string) []EventSink
	GetSinksForUser(room, user string) []EventSink
}

// ISnapshotStore is the durable substrate of the registry. Save replaces the
// whole stored state.
type ISnapshotStore interface {
	Save(snapshot domain.Snapshot) error
	Load() (domain.Snapshot, error)
}

// Checkpointer persists the current registry state.
type Checkpointer interface {
	Checkpoint() error
}

// IHost is the serialized access to the registry used by transports.
type IHost interface {
	RegisterUser(ctx context.Context, username, walletAddress string) bool
	GetUsername(walletAddress string) (string, bool)
	GetWalletAddress(username string) (string, bool)
	CreateRoom(ctx context.Context, name, password, creator string, roomType domain.RoomType) bool
	DeleteRoom(ctx context.Context, name, walletAddress string) bool
	ListRooms() []string
	GetRoomInfo(name string) (domain.RoomInfo, bool)
	JoinRoom(ctx context.Context, name, user, password string) bool
	LeaveRoom(name, user string) bool
	GetRoomUsers(name string) []string
	SendMessage(ctx context.Context, name, sender, content string) bool
	GetRoomMessages(name, user string) []domain.Message
	SendSignaling(ctx context.Context, name, sender, receiver, content string) bool
	Sessions() ISessions
	Stats() (users, rooms int)
}
