// Package book stores opening-book moves keyed by the engine's position hash.
//
// Each position is one BadgerDB record holding every move seen from it with
// a play count. Hashes are the Zobrist hashes the engine maintains, so a
// lookup costs one key read and needs no board comparison.
package book

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const keyPrefix = "pos:"

// Entry is one book move from a position.
type Entry struct {
	Move  string `json:"move"`
	SAN   string `json:"san"`
	Count int    `json:"count"`
}

// Store is an opening book backed by BadgerDB. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	db *badger.DB
}

// Open opens the book at path, creating it if needed.
// An empty path keeps the book in memory.
func Open(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening book %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database. Later calls return ErrBookClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.ErrBookClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func positionKey(hash uint64) []byte {
	key := make([]byte, len(keyPrefix)+8)
	copy(key, keyPrefix)
	binary.BigEndian.PutUint64(key[len(keyPrefix):], hash)
	return key
}

func decode(item *badger.Item) (map[string]*Entry, error) {
	moves := make(map[string]*Entry)
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &moves)
	})
	return moves, err
}

// Record adds one occurrence of mv, played from the position with hash.
// Writers are serialised so that read-modify-write updates never conflict.
func (s *Store) Record(hash uint64, mv chess.Move, san string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.ErrBookClosed
	}

	key := positionKey(hash)
	uci := mv.String()
	return s.db.Update(func(txn *badger.Txn) error {
		return increment(txn, key, uci, san)
	})
}

func increment(txn *badger.Txn, key []byte, uci, san string) error {
	moves := make(map[string]*Entry)
	item, err := txn.Get(key)
	switch {
	case err == badger.ErrKeyNotFound:
	case err != nil:
		return err
	default:
		if moves, err = decode(item); err != nil {
			return err
		}
	}

	e, ok := moves[uci]
	if !ok {
		e = &Entry{Move: uci, SAN: san}
		moves[uci] = e
	}
	e.Count++

	data, err := json.Marshal(moves)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// RecordLine records the first maxPly plies of a game that started from the
// position with startHash. A maxPly of 0 records every ply.
func (s *Store) RecordLine(startHash uint64, plies []chess.Ply, maxPly int) error {
	hash := startHash
	for i, p := range plies {
		if maxPly > 0 && i >= maxPly {
			break
		}
		if err := s.Record(hash, p.Move(), p.SAN); err != nil {
			return err
		}
		hash = p.Hash
	}
	return nil
}

// Lookup returns the moves recorded from the position with hash, most
// played first. A position never seen yields no entries and no error.
func (s *Store) Lookup(hash uint64) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errors.ErrBookClosed
	}

	var moves map[string]*Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		moves, err = decode(item)
		return err
	})
	if err != nil || len(moves) == 0 {
		return nil, err
	}

	entries := make([]Entry, 0, len(moves))
	for _, e := range maps.Values(moves) {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Move < entries[j].Move
	})
	return entries, nil
}

// Size returns the number of positions in the book.
func (s *Store) Size() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return 0, errors.ErrBookClosed
	}

	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
