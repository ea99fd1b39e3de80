// Package storage implements the persistent key/value store associated
// with the account executing a piece of bytecode. It is a plain map,
// private to one interpreter invocation unless the host explicitly wires
// a shared map across invocations.
package storage

import "github.com/entropyio/evmcore/word"

// Storage is a 256-bit key/value map. A missing key reads as the zero
// word; writing the zero word removes the key, matching the EVM
// convention that an unset slot and a slot explicitly set to zero are
// indistinguishable.
type Storage struct {
	data map[[32]byte]word.Word
}

// New returns an empty storage map pre-sized to hint entries.
func New(hint int) *Storage {
	if hint < 0 {
		hint = 0
	}
	return &Storage{data: make(map[[32]byte]word.Word, hint)}
}

// Load returns the value at key, or the zero word if key was never set.
func (s *Storage) Load(key word.Word) word.Word {
	v, ok := s.data[word.Bytes32(key)]
	if !ok {
		return word.Zero()
	}
	return v
}

// Store writes value at key. Storing the zero word deletes the entry.
func (s *Storage) Store(key, value word.Word) {
	k := word.Bytes32(key)
	if value.IsZero() {
		delete(s.data, k)
		return
	}
	s.data[k] = value
}
