// SPDX-License-Identifier: MIT

// Package cache persists solved equivalent resistances keyed by N in a
// badger key-value store, so the command surface can skip repeat solves.
//
// Keys are "req/<n>"; values are the IEEE-754 bits of the resistance in
// big-endian order. Only SOLVED results are ever stored.
package cache

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

// ErrBadValue reports a stored value that is not 8 bytes long.
var ErrBadValue = errors.New("cache: malformed value")

const keyPrefix = "req/"

// Options configures Open. An empty Dir implies InMemory.
type Options struct {
	Dir      string
	InMemory bool
}

// Store is a badger-backed result cache.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store described by opts.
func Open(opts Options) (*Store, error) {
	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory || opts.Dir == "" {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	dbOpts.Logger = nil
	dbOpts.DetectConflicts = false

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "cache: open %q", opts.Dir)
	}

	return &Store{db: db}, nil
}

func key(n int) []byte {
	return []byte(keyPrefix + strconv.Itoa(n))
}

// Get returns the stored resistance for n and whether one was found.
func (s *Store) Get(n int) (float64, bool, error) {
	var r float64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(n))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return errors.Wrapf(ErrBadValue, "key %s has %d bytes", key(n), len(val))
			}
			r = math.Float64frombits(binary.BigEndian.Uint64(val))
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "cache: get n=%d", n)
	}

	return r, true, nil
}

// Put stores r as the resistance for n, replacing any previous value.
func (s *Store) Put(n int, r float64) error {
	var val [8]byte
	binary.BigEndian.PutUint64(val[:], math.Float64bits(r))
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(n), val[:])
	})

	return errors.Wrapf(err, "cache: put n=%d", n)
}

// Close releases the underlying database. Close on a closed Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return errors.Wrap(err, "cache: close")
}
