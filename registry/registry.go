// Package registry holds the authoritative room and user state machine.
//
// A Registry is not safe for concurrent use. Callers serialize access,
// runtime.Host does it with a single mutex. Every mutating operation returns
// whether it succeeded and the event it produced, the registry never delivers
// events itself.
package registry

import (
	"log/slog"

	"chat-registry/domain"
)

type Registry struct {
	log       *slog.Logger
	users     map[string]domain.UserProfile // wallet address -> profile
	usernames map[string]string             // username -> wallet address
	rooms     map[string]*domain.Room       // room name -> room
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:       log,
		users:     make(map[string]domain.UserProfile),
		usernames: make(map[string]string),
		rooms:     make(map[string]*domain.Room),
	}
}

func (r *Registry) UserCount() int { return len(r.users) }

func (r *Registry) RoomCount() int { return len(r.rooms) }
