// Package hashing provides Zobrist keys, the bounded repetition history and
// position tallies used by the chess rules engine.
package hashing

import (
	"math/rand"
	"sync"
)

// Table dimensions.
const (
	NumSquares    = 64
	NumPieceKinds = 12
	NumFiles      = 8
)

// DefaultSeed is the fixed PRNG seed for the process-wide key table.
// Hashes are reproducible across runs; they carry no cryptographic meaning.
const DefaultSeed int64 = 0x5EED_C0FFEE_1234

// Keys is a Zobrist key table. It is written once at construction and only
// read afterwards, so a single table may be shared by any number of positions.
type Keys struct {
	// Pieces is indexed by piece kind (colour*6 + kind) then square index.
	Pieces [NumPieceKinds][NumSquares]uint64

	// Castling is indexed by colour then side (king side, queen side).
	Castling [2][2]uint64

	// EnPassant is indexed by file.
	EnPassant [NumFiles]uint64

	// SideToMove is toggled whenever the turn passes.
	SideToMove uint64
}

// NewKeys builds a key table from the given seed.
func NewKeys(seed int64) *Keys {
	rng := rand.New(rand.NewSource(seed))
	k := &Keys{}

	for pk := 0; pk < NumPieceKinds; pk++ {
		for sq := 0; sq < NumSquares; sq++ {
			k.Pieces[pk][sq] = rng.Uint64()
		}
	}
	for c := 0; c < 2; c++ {
		for side := 0; side < 2; side++ {
			k.Castling[c][side] = rng.Uint64()
		}
	}
	for f := 0; f < NumFiles; f++ {
		k.EnPassant[f] = rng.Uint64()
	}
	k.SideToMove = rng.Uint64()

	return k
}

var (
	defaultOnce sync.Once
	defaultKeys *Keys
)

// DefaultKeys returns the process-wide key table, built on first use.
func DefaultKeys() *Keys {
	defaultOnce.Do(func() {
		defaultKeys = NewKeys(DefaultSeed)
	})
	return defaultKeys
}
