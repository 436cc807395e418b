package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"chat-registry/contract"
	"chat-registry/domain"
	"chat-registry/errors"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.ISnapshotStore = (*SnapshotRepository)(nil)

// generationKey points to the generation holding the current snapshot.
// Records live under "gen:{n}:" followed by their own key.
var generationKey = []byte("meta:generation")

func generationPrefix(generation uint64) string {
	return fmt.Sprintf("gen:%d:", generation)
}

type SnapshotRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSnapshotRepository(db *badger.DB, log *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, log: log}
}

// Save writes snapshot as a new generation through a write batch, so its size
// is not bound by a single transaction, then switches generationKey to it in
// one small transaction. Readers see either the previous snapshot or this one.
// The previous generation is removed afterwards. Save is not safe for
// concurrent use.
func (s *SnapshotRepository) Save(snapshot domain.Snapshot) error {
	current, err := s.currentGeneration()
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	next := current + 1
	prefix := generationPrefix(next)

	// Leftovers of an interrupted save
	if err = s.deletePrefix(prefix); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	if err = s.write(prefix, snapshot); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(generationKey, []byte(strconv.FormatUint(next, 10)))
	})
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}

	if current > 0 {
		if err = s.deletePrefix(generationPrefix(current)); err != nil {
			s.log.Warn("Unable to remove previous snapshot generation",
				"generation", current, "error", err)
		}
	}
	s.log.Debug("Snapshot saved", "generation", next,
		"users", len(snapshot.Users), "rooms", len(snapshot.Rooms))
	return nil
}

func (s *SnapshotRepository) write(prefix string, snapshot domain.Snapshot) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for wallet, profile := range snapshot.Users {
		data, err := encodeUser(profile)
		if err != nil {
			return err
		}
		if err = wb.Set(prefixed(prefix, userKey(wallet)), data); err != nil {
			return err
		}
	}
	for username, wallet := range snapshot.Usernames {
		if err := wb.Set(prefixed(prefix, usernameKey(username)), []byte(wallet)); err != nil {
			return err
		}
	}
	for name, room := range snapshot.Rooms {
		data, err := encodeRoom(room)
		if err != nil {
			return err
		}
		if err = wb.Set(prefixed(prefix, roomKey(name)), data); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// Load reads back the last saved snapshot. An empty database yields an empty snapshot.
func (s *SnapshotRepository) Load() (domain.Snapshot, error) {
	snapshot := domain.NewSnapshot()
	err := s.db.View(func(txn *badger.Txn) error {
		generation, err := readGeneration(txn)
		if err != nil || generation == 0 {
			return err
		}
		prefix := generationPrefix(generation)

		if err := scanPrefix(txn, prefix+userPrefix, func(key string, value []byte) error {
			profile, err := decodeUser(value)
			if err != nil {
				return err
			}
			snapshot.Users[key] = profile
			return nil
		}); err != nil {
			return err
		}
		if err := scanPrefix(txn, prefix+usernamePrefix, func(key string, value []byte) error {
			snapshot.Usernames[key] = string(value)
			return nil
		}); err != nil {
			return err
		}
		return scanPrefix(txn, prefix+roomPrefix, func(key string, value []byte) error {
			room, err := decodeRoom(value)
			if err != nil {
				return err
			}
			snapshot.Rooms[key] = room
			return nil
		})
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot load: %w", err)
	}
	return snapshot, nil
}

func (s *SnapshotRepository) currentGeneration() (uint64, error) {
	var generation uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		generation, err = readGeneration(txn)
		return err
	})
	return generation, err
}

// readGeneration returns 0 when nothing was ever saved.
func readGeneration(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get(generationKey)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var generation uint64
	err = item.Value(func(value []byte) error {
		var parseErr error
		generation, parseErr = strconv.ParseUint(string(value), 10, 64)
		return parseErr
	})
	if err != nil {
		return 0, fmt.Errorf("%w: generation: %v", errors.ErrCorruptSnapshot, err)
	}
	return generation, nil
}

func prefixed(prefix string, key []byte) []byte {
	return append([]byte(prefix), key...)
}

// scanPrefix calls fn with the key stripped of prefix and a value only valid
// during the call.
func scanPrefix(txn *badger.Txn, prefix string, fn func(key string, value []byte) error) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		key := strings.TrimPrefix(string(item.Key()), prefix)
		err := item.Value(func(value []byte) error {
			return fn(key, value)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// deletePrefix removes every key under prefix through a write batch.
func (s *SnapshotRepository) deletePrefix(prefix string) error {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(prefix)
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil || len(keys) == 0 {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err = wb.Delete(key); err != nil {
			return err
		}
	}
	return wb.Flush()
}
