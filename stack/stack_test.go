package stack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entropyio/evmcore/config"
	"github.com/entropyio/evmcore/word"
)

func TestPushPopRoundTrip(t *testing.T) {
	s := New(4)
	w := word.FromUint64(7)
	require.NoError(t, s.Push(w))
	got, err := s.Pop()
	require.NoError(t, err)
	require.True(t, got.Eq(&w))
	require.Equal(t, 0, s.Len())
}

func TestPopOnEmptyUnderflows(t *testing.T) {
	s := New(4)
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestPushPastLimitOverflows(t *testing.T) {
	s := New(1)
	for i := 0; i < config.StackLimit; i++ {
		require.NoError(t, s.Push(word.FromUint64(uint64(i))))
	}
	require.ErrorIs(t, s.Push(word.One()), ErrOverflow)
}

func TestDupPushesCopyOfNthElement(t *testing.T) {
	s := New(4)
	require.NoError(t, s.Push(word.FromUint64(1)))
	require.NoError(t, s.Push(word.FromUint64(2)))
	require.NoError(t, s.Push(word.FromUint64(3)))

	require.NoError(t, s.Dup(3)) // DUP3 duplicates the bottom-most of these three.
	top, err := s.Pop()
	require.NoError(t, err)
	require.True(t, top.Eq(ptr(word.FromUint64(1))))
}

func TestDupUnderflowsWhenTooShort(t *testing.T) {
	s := New(4)
	require.NoError(t, s.Push(word.One()))
	require.ErrorIs(t, s.Dup(2), ErrUnderflow)
}

func TestSwapIsInvolution(t *testing.T) {
	s := New(4)
	vals := []word.Word{word.FromUint64(1), word.FromUint64(2)}
	for _, v := range vals {
		require.NoError(t, s.Push(v))
	}
	require.NoError(t, s.Swap(1))
	require.NoError(t, s.Swap(1))

	top, err := s.Pop()
	require.NoError(t, err)
	require.True(t, top.Eq(&vals[1]))
}

func TestSwapUnderflowsWhenTooShort(t *testing.T) {
	s := New(4)
	require.NoError(t, s.Push(word.One()))
	require.ErrorIs(t, s.Swap(1), ErrUnderflow)
}

func TestPeekReadsWithoutRemoving(t *testing.T) {
	s := New(4)
	require.NoError(t, s.Push(word.FromUint64(42)))
	got, err := s.Peek(0)
	require.NoError(t, err)
	require.True(t, got.Eq(ptr(word.FromUint64(42))))
	require.Equal(t, 1, s.Len())
}

func ptr(w word.Word) *word.Word { return &w }
