package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entropyio/evmcore/word"
)

func TestMStoreMLoadRoundTrip(t *testing.T) {
	m := New(4)
	val := word.FromUint64(0xdeadbeef)
	m.Set32(0, val)
	got := m.Load32(0)
	require.True(t, got.Eq(&val))
}

func TestSizeAlwaysMultipleOf32(t *testing.T) {
	m := New(0)
	m.GetCopy(1, 3)
	require.Equal(t, 32, m.Len())

	m.SetByte(40, 0xFF)
	require.Equal(t, 64, m.Len())
}

func TestReadPastSizeIsZero(t *testing.T) {
	m := New(0)
	out := m.GetCopy(0, 32)
	for _, b := range out {
		require.Equal(t, byte(0), b)
	}
}

func TestCopyInZeroFillsPastSource(t *testing.T) {
	m := New(0)
	src := []byte{1, 2, 3}
	m.CopyIn(0, src, 0, 8)
	got := m.GetCopy(0, 8)
	require.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0}, got)
}

func TestKeccak256OverRange(t *testing.T) {
	m := New(0)
	m.Set(0, 0, nil)
	got := m.Keccak256(0, 0)
	want := word.Keccak256(nil)
	require.True(t, got.Eq(&want))
}
