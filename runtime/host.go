// Package runtime hosts the registry: it serializes calls, forwards events and
// persists snapshots. It holds no business rule of its own.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-registry/contract"
	"chat-registry/domain"
	"chat-registry/domain/event"
	"chat-registry/registry"
	"chat-registry/runtime/workers"
)

var (
	_ contract.Checkpointer = (*Host)(nil)
	_ contract.IHost        = (*Host)(nil)
)

type Host struct {
	mu                 sync.Mutex
	log                *slog.Logger
	registry           *registry.Registry
	store              contract.ISnapshotStore
	supervisor         contract.ISupervisor
	sessions           contract.ISessions
	permanentSinks     []contract.EventSink
	deliveries         chan workers.Delivery
	sinkTimeout        time.Duration
	checkpointInterval time.Duration
}

func NewHost(log *slog.Logger, reg *registry.Registry, store contract.ISnapshotStore,
	supervisor contract.ISupervisor, sessions contract.ISessions,
	bufferSize int, sinkTimeout, checkpointInterval time.Duration) *Host {
	return &Host{
		log:                log,
		registry:           reg,
		store:              store,
		supervisor:         supervisor,
		sessions:           sessions,
		deliveries:         make(chan workers.Delivery, bufferSize),
		sinkTimeout:        sinkTimeout,
		checkpointInterval: checkpointInterval,
	}
}

// Load restores the registry last saved in store.
func Load(log *slog.Logger, store contract.ISnapshotStore) (*registry.Registry, error) {
	snapshot, err := store.Load()
	if err != nil {
		return nil, err
	}
	return registry.Restore(log, snapshot)
}

// Add registers sinks receiving every event produced after the call.
func (h *Host) Add(sinks ...contract.EventSink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.permanentSinks = append(h.permanentSinks, sinks...)
}

func (h *Host) Sessions() contract.ISessions { return h.sessions }

// Start wires the fanout and checkpoint workers into the supervisor and
// blocks until ctx is canceled or Stop is called.
func (h *Host) Start(ctx context.Context) {
	h.mu.Lock()
	fanout := workers.NewEventFanout(h.log, h.deliveries, h.sinkTimeout)
	h.supervisor.Add(fanout)
	if h.checkpointInterval > 0 {
		h.supervisor.Add(workers.NewCheckpointWorker(h.log, h, h.checkpointInterval))
	}
	h.mu.Unlock()

	h.log.Info("Starting host and all supervised workers")
	h.supervisor.Run(ctx)
}

func (h *Host) Stop() {
	h.log.Info("Requesting host shutdown")
	h.supervisor.Stop()
}

// Checkpoint copies the registry under the lock and saves it outside of it.
func (h *Host) Checkpoint() error {
	h.mu.Lock()
	snapshot := h.registry.Snapshot()
	h.mu.Unlock()

	if err := h.store.Save(snapshot); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// mutate runs fn under the lock, routes its event and enqueues it before
// releasing the lock, so events leave in the order the mutations were applied
// and reach the sessions subscribed at that point. The mutation is kept even
// if ctx ends before the event could be enqueued.
func (h *Host) mutate(ctx context.Context, fn func(r *registry.Registry) (bool, event.DomainEvent)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	ok, evt := fn(h.registry)
	if evt == nil {
		return ok
	}
	delivery := workers.Delivery{Event: evt, Sinks: workers.Route(h.permanentSinks, h.sessions, evt)}
	select {
	case h.deliveries <- delivery:
	case <-ctx.Done():
		h.log.Warn("Event dropped, context done before enqueue",
			"type", evt.Type(), "room", evt.RoomName(), "error", ctx.Err())
	}
	return ok
}

func (h *Host) RegisterUser(ctx context.Context, username, walletAddress string) bool {
	return h.mutate(ctx, func(r *registry.Registry) (bool, event.DomainEvent) {
		return r.RegisterUser(username, walletAddress)
	})
}

func (h *Host) GetUsername(walletAddress string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.GetUsername(walletAddress)
}

func (h *Host) GetWalletAddress(username string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.GetWalletAddress(username)
}

func (h *Host) CreateRoom(ctx context.Context, name, password, creator string, roomType domain.RoomType) bool {
	return h.mutate(ctx, func(r *registry.Registry) (bool, event.DomainEvent) {
		return r.CreateRoom(name, password, creator, roomType)
	})
}

func (h *Host) DeleteRoom(ctx context.Context, name, walletAddress string) bool {
	return h.mutate(ctx, func(r *registry.Registry) (bool, event.DomainEvent) {
		return r.DeleteRoom(name, walletAddress)
	})
}

func (h *Host) ListRooms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.ListRooms()
}

func (h *Host) GetRoomInfo(name string) (domain.RoomInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.GetRoomInfo(name)
}

func (h *Host) JoinRoom(ctx context.Context, name, user, password string) bool {
	return h.mutate(ctx, func(r *registry.Registry) (bool, event.DomainEvent) {
		return r.JoinRoom(name, user, password)
	})
}

func (h *Host) LeaveRoom(name, user string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.LeaveRoom(name, user)
}

func (h *Host) GetRoomUsers(name string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.GetRoomUsers(name)
}

func (h *Host) SendMessage(ctx context.Context, name, sender, content string) bool {
	return h.mutate(ctx, func(r *registry.Registry) (bool, event.DomainEvent) {
		return r.SendMessage(name, sender, content)
	})
}

func (h *Host) GetRoomMessages(name, user string) []domain.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.GetRoomMessages(name, user)
}

func (h *Host) SendSignaling(ctx context.Context, name, sender, receiver, content string) bool {
	return h.mutate(ctx, func(r *registry.Registry) (bool, event.DomainEvent) {
		return r.SendSignaling(name, sender, receiver, content)
	})
}

// Stats reports registry sizes for health checks.
func (h *Host) Stats() (users, rooms int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.UserCount(), h.registry.RoomCount()
}
