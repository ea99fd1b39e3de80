package stack

import "github.com/entropyio/evmcore/config"

// MinStack returns the minimum stack length required to run an operation
// that pops `pops` items off the stack.
func MinStack(pops, _ int) int {
	return pops
}

// MaxStack returns the maximum stack length an operation that pops `pop`
// items and pushes `push` items may start from without the resulting
// stack exceeding config.StackLimit.
func MaxStack(pop, push int) int {
	return config.StackLimit + pop - push
}

// CheckBounds reports a stack-underflow or stack-overflow error if the
// stack's current length falls outside [min, max].
func (s *Stack) CheckBounds(min, max int) error {
	n := s.Len()
	if n < min {
		return ErrUnderflow
	}
	if n > max {
		return ErrOverflow
	}
	return nil
}
