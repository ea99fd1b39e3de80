package evm

import (
	"errors"
	"math"

	"github.com/entropyio/evmcore/memory"
	"github.com/entropyio/evmcore/stack"
	"github.com/entropyio/evmcore/storage"
	"github.com/entropyio/evmcore/vmcontext"
	"github.com/entropyio/evmcore/word"
)

var table = NewJumpTable()

// Run is the interpreter loop (spec.md §4.G): it fetches one opcode at a
// time from code, advances pc, and mutates st/mem/store in place through
// either an inline-handled control-flow class or the dispatch table.
//
// It returns success=true with the RETURN/STOP payload, or success=false
// with the REVERT payload or a short ASCII reason naming the error kind
// that halted execution (spec.md §7). Run never panics on malformed
// bytecode; every failure mode is a checked error that maps to one of the
// documented reason strings.
func Run(st *stack.Stack, mem *memory.Memory, store *storage.Storage, ctx *vmcontext.Context, code []byte) (success bool, ret []byte) {
	bitmap := analyze(code)
	pc := uint64(0)

	for {
		if pc >= uint64(len(code)) {
			return true, nil
		}

		op := OpCode(code[pc])

		switch {
		case op == STOP:
			return true, nil

		case op == RETURN || op == REVERT:
			offset, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			size, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			data, ok := boundedSlice(mem, offset, size)
			if !ok {
				return false, reason(ErrBadReturnBounds)
			}
			return op == RETURN, data

		case op.IsPush():
			n := op.PushSize()
			var buf [32]byte
			end := pc + 1 + uint64(n)
			for i := 0; i < n; i++ {
				idx := pc + 1 + uint64(i)
				if idx < uint64(len(code)) {
					buf[32-n+i] = code[idx]
				}
			}
			if err := st.Push(word.FromBytes(buf[:])); err != nil {
				return false, reason(err)
			}
			pc = end

		case op.IsDup():
			if err := st.Dup(op.DupPosition()); err != nil {
				return false, reason(err)
			}
			pc++

		case op.IsSwap():
			if err := st.Swap(op.SwapPosition()); err != nil {
				return false, reason(err)
			}
			pc++

		case op == JUMP:
			dest, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			if !dest.IsUint64() || !bitmap.validJumpDest(code, dest.Uint64()) {
				return false, reason(ErrInvalidJump)
			}
			pc = dest.Uint64()

		case op == JUMPI:
			dest, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			cond, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			if cond.IsZero() {
				pc++
				continue
			}
			if !dest.IsUint64() || !bitmap.validJumpDest(code, dest.Uint64()) {
				return false, reason(ErrInvalidJump)
			}
			pc = dest.Uint64()

		case op == JUMPDEST:
			pc++

		case op == PC:
			if err := st.Push(word.FromUint64(pc)); err != nil {
				return false, reason(err)
			}
			pc++

		case op == CODESIZE:
			if err := st.Push(word.FromUint64(uint64(len(code)))); err != nil {
				return false, reason(err)
			}
			pc++

		case op == CODECOPY:
			destOff, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			srcOff, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			size, err := st.Pop()
			if err != nil {
				return false, reason(err)
			}
			if !destOff.IsUint64() || !srcOff.IsUint64() || !size.IsUint64() {
				return false, reason(ErrBadReturnBounds)
			}
			mem.CopyIn(destOff.Uint64(), code, srcOff.Uint64(), size.Uint64())
			pc++

		default:
			entry := table[op]
			if entry == nil {
				return false, reason(ErrInvalidOpcode)
			}
			if err := st.CheckBounds(entry.minStack, entry.maxStack); err != nil {
				return false, reason(err)
			}
			if err := entry.execute(st, mem, store, ctx); err != nil {
				return false, reason(err)
			}
			pc++
		}
	}
}

// boundedSlice extracts the memory[offset:offset+size] slice RETURN/REVERT
// requests, expanding memory first. offset/size that do not fit a uint64
// (so cannot address real memory) fail as bad-return-bounds rather than
// wrapping or panicking.
func boundedSlice(mem *memory.Memory, offset, size word.Word) ([]byte, bool) {
	if size.IsZero() {
		return nil, true
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return nil, false
	}
	off, sz := offset.Uint64(), size.Uint64()
	if off > math.MaxUint64-sz {
		return nil, false
	}
	return mem.GetCopy(off, sz), true
}

// reason converts an error sentinel to the short ASCII message spec.md §7
// specifies as the returned data for a failed invocation. Stack errors are
// mapped through the package's own ErrStackUnderflow/ErrStackOverflow
// aliases rather than the stack package's sentinels directly, keeping the
// evm package's error identity the one callers match against.
func reason(err error) []byte {
	switch {
	case errors.Is(err, ErrStackUnderflow):
		return []byte(ErrStackUnderflow.Error())
	case errors.Is(err, ErrStackOverflow):
		return []byte(ErrStackOverflow.Error())
	default:
		return []byte(err.Error())
	}
}
