package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesscoord/internal/board"
	"github.com/hailam/chesscoord/internal/codec"
)

// Key prefixes
const (
	prefixSquare = "square/"
	prefixSet    = "set/"
)

// ErrNotFound is returned when no record exists under a name.
var ErrNotFound = errors.New("not found")

// ErrEmptyName is returned for an empty record name.
var ErrEmptyName = errors.New("empty record name")

// Storage wraps BadgerDB for persisting named squares and square sets.
// Every value is stored as a one-byte format tag followed by the codec
// payload, so records stay readable after the configured format changes.
type Storage struct {
	db    *badger.DB
	codec codec.Codec
}

// NewStorage opens the database in the platform data directory.
func NewStorage(format codec.Format) (*Storage, error) {
	dbDir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir, format)
}

// Open opens (or creates) a database in dir that writes values in format.
func Open(dir string, format codec.Format) (*Storage, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %v", codec.ErrUnknownFormat, format)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db, codec: codec.New(format)}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSquare stores a square under name.
func (s *Storage) SaveSquare(name string, sq board.Square) error {
	data, err := s.codec.EncodeSquare(sq)
	if err != nil {
		return err
	}
	return s.put(prefixSquare, name, data)
}

// LoadSquare loads the square stored under name.
func (s *Storage) LoadSquare(name string) (board.Square, error) {
	var sq board.Square
	err := s.get(prefixSquare, name, func(c codec.Codec, data []byte) error {
		var err error
		sq, err = c.DecodeSquare(data)
		return err
	})
	return sq, err
}

// SaveSet stores a square set under name.
func (s *Storage) SaveSet(name string, set board.SquareSet) error {
	data, err := s.codec.EncodeSet(set)
	if err != nil {
		return err
	}
	return s.put(prefixSet, name, data)
}

// LoadSet loads the square set stored under name.
func (s *Storage) LoadSet(name string) (board.SquareSet, error) {
	var set board.SquareSet
	err := s.get(prefixSet, name, func(c codec.Codec, data []byte) error {
		var err error
		set, err = c.DecodeSet(data)
		return err
	})
	return set, err
}

// DeleteSet removes the set stored under name. Deleting a missing set is not
// an error.
func (s *Storage) DeleteSet(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(prefixSet + name))
	})
}

// ListSets returns the names of all stored sets, sorted.
func (s *Storage) ListSets() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixSet)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, prefixSet))
		}
		return nil
	})

	sort.Strings(names)
	return names, err
}

func (s *Storage) put(prefix, name string, payload []byte) error {
	if name == "" {
		return ErrEmptyName
	}

	value := make([]byte, 0, len(payload)+1)
	value = append(value, byte(s.codec.Format))
	value = append(value, payload...)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefix+name), value)
	})
}

func (s *Storage) get(prefix, name string, decode func(codec.Codec, []byte) error) error {
	if name == "" {
		return ErrEmptyName
	}

	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s%s: %w", prefix, name, ErrNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) == 0 {
				return fmt.Errorf("%s%s: empty record", prefix, name)
			}
			format := codec.Format(val[0])
			if !format.Valid() {
				return fmt.Errorf("%s%s: %w: tag %d", prefix, name, codec.ErrUnknownFormat, val[0])
			}
			return decode(codec.New(format), val[1:])
		})
	})
}
