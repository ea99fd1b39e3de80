// Package interpreter is the public entry point (spec.md §4.H): it builds
// the working set one invocation needs — stack, memory, storage — and hands
// it and the caller's immutable context to the evm package's interpreter
// loop. It mirrors the teacher's runtime package (runtime.Config,
// runtime.Execute, runtime.setDefaults), trimmed to what a single
// CALL-free, gas-free invocation needs.
package interpreter

import (
	"github.com/entropyio/evmcore/config"
	"github.com/entropyio/evmcore/evm"
	"github.com/entropyio/evmcore/logger"
	"github.com/entropyio/evmcore/memory"
	"github.com/entropyio/evmcore/stack"
	"github.com/entropyio/evmcore/storage"
	"github.com/entropyio/evmcore/vmcontext"
)

var log = logger.NewLogger("[interpreter]")

// Hints carries caller-supplied pre-sizing for the stack, storage map and
// memory buffer an invocation starts with. A zero value in any field falls
// back to the package's default; hints never change behaviour, only
// allocation traffic.
type Hints struct {
	StackHint       int
	StorageHint     int
	MemoryHintWords int
}

func (h Hints) withDefaults() Hints {
	if h.StackHint <= 0 {
		h.StackHint = config.DefaultStackHint
	}
	if h.StorageHint <= 0 {
		h.StorageHint = config.DefaultStorageHint
	}
	if h.MemoryHintWords <= 0 {
		h.MemoryHintWords = config.DefaultMemoryHintWords
	}
	return h
}

// Evaluate runs bytecode against ctx and returns (success, data) per
// spec.md §6: the RETURN/REVERT memory slice, or empty data on STOP/
// end-of-code, or a short ASCII error reason on a checked failure. Each
// call gets a fresh Stack and Memory; Storage is fresh too unless the
// caller wires a shared one in via EvaluateWithStorage.
func Evaluate(ctx *vmcontext.Context, bytecode []byte, hints Hints) (bool, []byte) {
	return EvaluateWithStorage(ctx, bytecode, nil, hints)
}

// EvaluateWithStorage is Evaluate, but runs against a caller-supplied
// Storage instead of a fresh one, so a host can share persistent state
// across multiple invocations against the same account (spec.md §4.D).
// A nil store behaves like Evaluate.
func EvaluateWithStorage(ctx *vmcontext.Context, bytecode []byte, store *storage.Storage, hints Hints) (bool, []byte) {
	hints = hints.withDefaults()

	st := stack.New(hints.StackHint)
	mem := memory.New(hints.MemoryHintWords)
	if store == nil {
		store = storage.New(hints.StorageHint)
	}

	log.Debugf("evaluate address:%s codeLen:%d calldataLen:%d", ctx.Address, len(bytecode), len(ctx.Calldata))

	success, ret := evm.Run(st, mem, store, ctx, bytecode)

	if success {
		log.Debugf("evaluate halted success retLen:%d", len(ret))
	} else {
		log.Debugf("evaluate halted failure reason:%q", ret)
	}
	return success, ret
}
