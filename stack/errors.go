package stack

import "errors"

// ErrUnderflow is returned by Pop/Peek/Swap/Dup when the stack does not
// have enough elements for the requested operation.
var ErrUnderflow = errors.New("stack underflow")

// ErrOverflow is returned by Push/Dup when the stack is already at
// config.StackLimit items.
var ErrOverflow = errors.New("stack overflow")
