// Package config holds the tunables the interpreter core needs: the EVM
// stack limit and the default pre-sizing hints used by interpreter.Evaluate
// when a caller does not supply its own.
package config

// StackLimit is the maximum number of words the operand stack may hold.
// Pushing past this bound fails the running step with a stack-overflow
// error.
const StackLimit = 1024

// Default pre-sizing hints for interpreter.Evaluate. These only affect the
// initial capacity of the stack slice, the storage map, and the memory
// buffer; they never change behaviour, only allocation traffic.
const (
	DefaultStackHint       = 32
	DefaultStorageHint     = 10
	DefaultMemoryHintWords = 32
)

// WordBytes is the width in bytes of a Word (256 bits).
const WordBytes = 32

// AddressBytes is the width in bytes of an account address.
const AddressBytes = 20
