package evm

import (
	"errors"

	"github.com/entropyio/evmcore/stack"
)

// Error kinds that halt the interpreter loop with success=false. Their
// Error() text is exactly the ASCII reason spec.md §7 specifies, so the
// interpreter can pass it straight through as the returned data.
var (
	ErrInvalidOpcode   = errors.New("invalid op")
	ErrInvalidJump     = errors.New("invalid jump")
	ErrBadReturnBounds = errors.New("bad return")

	// ErrStackUnderflow and ErrStackOverflow alias the stack package's own
	// sentinels so callers can check for them under either name; the
	// interpreter loop surfaces them via stack.Pop/Push/CheckBounds
	// directly rather than re-wrapping.
	ErrStackUnderflow = stack.ErrUnderflow
	ErrStackOverflow  = stack.ErrOverflow
)
