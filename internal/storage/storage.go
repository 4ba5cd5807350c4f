package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	prefixPerft    = "perft/"
	keyFirstLaunch = "first_launch"
)

// PerftRecord is one recorded perft result.
type PerftRecord struct {
	SFEN     string        `json:"sfen"`
	Depth    int           `json:"depth"`
	Nodes    uint64        `json:"nodes"`
	Elapsed  time.Duration `json:"elapsed"`
	Backend  string        `json:"backend"`
	Recorded time.Time     `json:"recorded"`
}

// Store wraps BadgerDB for persistent storage
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", dir, err)
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true until MarkFirstLaunchComplete has run on this store.
func (s *Store) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Store) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// positionKey drops the ply field: node counts do not depend on it.
func positionKey(sfen string) string {
	fields := strings.Fields(sfen)
	if len(fields) > 3 {
		fields = fields[:3]
	}
	return strings.Join(fields, " ")
}

func perftKey(sfen string, depth int) []byte {
	return fmt.Appendf(nil, "%s%02d/%s", prefixPerft, depth, positionKey(sfen))
}

// SavePerft records a perft result, replacing any earlier one for the
// same position and depth.
func (s *Store) SavePerft(rec PerftRecord) error {
	if rec.Recorded.IsZero() {
		rec.Recorded = time.Now()
	}
	rec.SFEN = positionKey(rec.SFEN)

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(rec.SFEN, rec.Depth), data)
	})
}

// LoadPerft returns the recorded result for a position and depth.
// found is false when nothing was recorded.
func (s *Store) LoadPerft(sfen string, depth int) (rec PerftRecord, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(sfen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, found, err
}

// ListPerft returns every recorded result, ordered by depth then position.
func (s *Store) ListPerft() ([]PerftRecord, error) {
	var records []PerftRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixPerft)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec PerftRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})

	return records, err
}

// CheckPerft compares a fresh result with the recorded one. It records the
// result when none exists and returns the previous node count when the two
// disagree.
func (s *Store) CheckPerft(rec PerftRecord) (mismatch bool, previous uint64, err error) {
	old, found, err := s.LoadPerft(rec.SFEN, rec.Depth)
	if err != nil {
		return false, 0, err
	}
	if found {
		return old.Nodes != rec.Nodes, old.Nodes, nil
	}
	return false, 0, s.SavePerft(rec)
}
