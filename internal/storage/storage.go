// Package storage persists board snapshots in BadgerDB.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const appName = "chesscore"

// Storage keys
const (
	snapshotPrefix = "snapshot/"
)

// ErrSnapshotNotFound is returned when no snapshot has the requested id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is a stored board position.
type Snapshot struct {
	ID        string    `json:"id"`
	FEN       string    `json:"fen"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

// OpenDefault opens the database in DefaultDir.
func OpenDefault() (*Storage, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// DefaultDir returns <data home>/chesscore/db, creating it if needed.
// XDG_DATA_HOME overrides the data home on every platform. Without it,
// macOS and Windows use os.UserConfigDir and everything else ~/.local/share.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		var err error
		switch runtime.GOOS {
		case "darwin", "windows":
			base, err = os.UserConfigDir()
		default:
			base, err = os.UserHomeDir()
			base = filepath.Join(base, ".local", "share")
		}
		if err != nil {
			return "", fmt.Errorf("resolve data home: %w", err)
		}
	}

	dir := filepath.Join(base, appName, "db")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create database dir: %w", err)
	}
	return dir, nil
}

// OpenAt picks in-memory, dir, or the platform default, in that order.
func OpenAt(dir string, inMemory bool) (*Storage, error) {
	switch {
	case inMemory:
		return OpenInMemory()
	case dir != "":
		return Open(dir)
	default:
		return OpenDefault()
	}
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func snapshotKey(id string) []byte {
	return []byte(snapshotPrefix + id)
}

// CreateSnapshot stores fen under a fresh id.
func (s *Storage) CreateSnapshot(fen, label string) (*Snapshot, error) {
	snap := &Snapshot{
		ID:        uuid.NewString(),
		FEN:       fen,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.SaveSnapshot(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveSnapshot stores snap, replacing any snapshot with the same id.
func (s *Storage) SaveSnapshot(snap *Snapshot) error {
	if _, err := uuid.Parse(snap.ID); err != nil {
		return fmt.Errorf("snapshot id %q: %w", snap.ID, err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(snap.ID), data)
	})
}

// LoadSnapshot loads the snapshot with the given id.
func (s *Storage) LoadSnapshot(id string) (*Snapshot, error) {
	snap := &Snapshot{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, snap)
		})
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// ListSnapshots returns all snapshots, oldest first.
func (s *Storage) ListSnapshots() ([]*Snapshot, error) {
	var snaps []*Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			snap := &Snapshot{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, snap)
			})
			if err != nil {
				return err
			}
			snaps = append(snaps, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].CreatedAt.Before(snaps[j].CreatedAt)
	})
	return snaps, nil
}

// DeleteSnapshot removes the snapshot with the given id.
func (s *Storage) DeleteSnapshot(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(snapshotKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		if err != nil {
			return err
		}
		return txn.Delete(snapshotKey(id))
	})
}
