// Package memory implements the EVM's flat, zero-initialised,
// byte-addressable scratch buffer. Its logical size is always a multiple
// of 32 bytes and grows on demand: every access expands the buffer to
// cover the bytes it touches before reading or writing them, so the core
// never observes an out-of-bounds slice.
package memory

import (
	"github.com/entropyio/evmcore/config"
	"github.com/entropyio/evmcore/word"
)

// Memory is the EVM's byte-addressable scratch buffer.
type Memory struct {
	store []byte
}

// New returns an empty memory buffer pre-sized to hold hintWords words.
func New(hintWords int) *Memory {
	if hintWords < 0 {
		hintWords = 0
	}
	return &Memory{store: make([]byte, 0, hintWords*config.WordBytes)}
}

// Len returns the current logical size in bytes, always a multiple of
// config.WordBytes.
func (m *Memory) Len() int {
	return len(m.store)
}

// ceil32 rounds n up to the next multiple of config.WordBytes.
func ceil32(n uint64) uint64 {
	const w = uint64(config.WordBytes)
	return (n + w - 1) &^ (w - 1)
}

// Resize grows the buffer so that Len() >= size, rounding size up to a
// multiple of config.WordBytes. It never shrinks the buffer.
func (m *Memory) Resize(size uint64) {
	size = ceil32(size)
	if uint64(len(m.store)) >= size {
		return
	}
	grown := make([]byte, size)
	copy(grown, m.store)
	m.store = grown
}

// Set writes value into memory at offset, expanding as needed. Writing
// zero bytes is a no-op.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	m.Resize(offset + size)
	copy(m.store[offset:offset+size], value)
}

// Set32 writes a word at offset, expanding as needed.
func (m *Memory) Set32(offset uint64, val word.Word) {
	m.Resize(offset + config.WordBytes)
	b := word.Bytes32(val)
	copy(m.store[offset:offset+config.WordBytes], b[:])
}

// SetByte writes the single low byte of a word at offset, expanding as
// needed (MSTORE8).
func (m *Memory) SetByte(offset uint64, b byte) {
	m.Resize(offset + 1)
	m.store[offset] = b
}

// GetCopy returns a fresh copy of the size bytes at offset, expanding
// memory (per spec, reads past the current size still enlarge it) and
// zero-filling any bytes that fall past what was ever written.
func (m *Memory) GetCopy(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	m.Resize(offset + size)
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out
}

// GetPtr returns a direct slice reference into the buffer, expanding
// memory first. Callers must not retain it past the next mutating call.
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	m.Resize(offset + size)
	return m.store[offset : offset+size]
}

// Load32 reads the word at offset, expanding memory first.
func (m *Memory) Load32(offset uint64) word.Word {
	return word.FromBytes(m.GetCopy(offset, config.WordBytes))
}

// CopyIn copies size bytes from src (starting at srcOff, zero-filling past
// src's end) into memory at destOff, expanding memory as needed.
func (m *Memory) CopyIn(destOff uint64, src []byte, srcOff, size uint64) {
	data := getData(src, srcOff, size)
	m.Set(destOff, size, data)
}

// getData returns size bytes of data starting at start, zero-filling any
// portion that falls past the end of data.
func getData(data []byte, start, size uint64) []byte {
	out := make([]byte, size)
	if start >= uint64(len(data)) {
		return out
	}
	end := start + size
	if end > uint64(len(data)) {
		end = uint64(len(data))
	}
	copy(out, data[start:end])
	return out
}

// Keccak256 hashes the size bytes at offset, expanding memory first.
func (m *Memory) Keccak256(offset, size uint64) word.Word {
	return word.Keccak256(m.GetPtr(offset, size))
}
