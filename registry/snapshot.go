package registry

import (
	"fmt"
	"log/slog"

	"chat-registry/domain"
	"chat-registry/errors"
)

// Snapshot deep-copies the three mappings so the result can be persisted
// while the registry keeps changing.
func (r *Registry) Snapshot() domain.Snapshot {
	snapshot := domain.NewSnapshot()
	for wallet, profile := range r.users {
		snapshot.Users[wallet] = profile
	}
	for username, wallet := range r.usernames {
		snapshot.Usernames[username] = wallet
	}
	for name, room := range r.rooms {
		snapshot.Rooms[name] = room.Clone()
	}
	return snapshot
}

// Restore builds a Registry from a snapshot. The snapshot is copied, and
// rejected with ErrCorruptSnapshot when its mappings disagree.
func Restore(log *slog.Logger, snapshot domain.Snapshot) (*Registry, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}
	r := NewRegistry(log)
	for wallet, profile := range snapshot.Users {
		r.users[wallet] = profile
	}
	for username, wallet := range snapshot.Usernames {
		r.usernames[username] = wallet
	}
	for name, room := range snapshot.Rooms {
		r.rooms[name] = room.Clone()
	}
	log.Info("Registry restored", "users", len(r.users), "rooms", len(r.rooms))
	return r, nil
}

func validateSnapshot(snapshot domain.Snapshot) error {
	for wallet, profile := range snapshot.Users {
		if profile.WalletAddress != wallet {
			return fmt.Errorf("%w: user key %q holds wallet %q", errors.ErrCorruptSnapshot, wallet, profile.WalletAddress)
		}
		if indexed, ok := snapshot.Usernames[profile.Username]; !ok || indexed != wallet {
			return fmt.Errorf("%w: username %q is not indexed to %q", errors.ErrCorruptSnapshot, profile.Username, wallet)
		}
	}
	if len(snapshot.Usernames) != len(snapshot.Users) {
		return fmt.Errorf("%w: %d usernames for %d users", errors.ErrCorruptSnapshot, len(snapshot.Usernames), len(snapshot.Users))
	}
	for name, room := range snapshot.Rooms {
		if room == nil || room.Name != name {
			return fmt.Errorf("%w: room key %q doesn't match its room", errors.ErrCorruptSnapshot, name)
		}
		seen := make(map[string]struct{}, len(room.Users))
		for _, user := range room.Users {
			if _, dup := seen[user]; dup {
				return fmt.Errorf("%w: room %q lists %q twice", errors.ErrCorruptSnapshot, name, user)
			}
			seen[user] = struct{}{}
		}
	}
	return nil
}
