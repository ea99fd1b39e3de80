package evm

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entropyio/evmcore/memory"
	"github.com/entropyio/evmcore/stack"
	"github.com/entropyio/evmcore/storage"
	"github.com/entropyio/evmcore/vmcontext"
	"github.com/entropyio/evmcore/word"
)

func mustCode(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func run(t *testing.T, ctx *vmcontext.Context, code []byte) (bool, []byte, *stack.Stack) {
	if ctx == nil {
		ctx = &vmcontext.Context{}
	}
	st := stack.New(8)
	mem := memory.New(4)
	store := storage.New(4)
	success, ret := Run(st, mem, store, ctx, code)
	return success, ret, st
}

func TestSimplePushStop(t *testing.T) {
	success, ret, st := run(t, nil, mustCode(t, "6001"))
	require.True(t, success)
	require.Empty(t, ret)
	top, err := st.Peek(0)
	require.NoError(t, err)
	require.True(t, top.Eq(ptrWord(word.FromUint64(1))))
}

func TestMulThenReturn32Bytes(t *testing.T) {
	success, ret, _ := run(t, nil, mustCode(t, "600160030260005260206000F3"))
	require.True(t, success)
	want := word.Bytes32(word.FromUint64(3))
	require.Equal(t, want[:], ret)
}

func TestAddChainThenReturn32Bytes(t *testing.T) {
	// PUSH1 1; PUSH1 1; ADD; PUSH1 1; ADD; PUSH1 0; MSTORE; PUSH1 0x20; PUSH1 0; RETURN
	success, ret, _ := run(t, nil, mustCode(t, "600160010160010160005260206000f3"))
	require.True(t, success)
	want := word.Bytes32(word.FromUint64(3))
	require.Equal(t, want[:], ret)
}

func TestFortyAddsThenReturn(t *testing.T) {
	code := "6001"
	for i := 0; i < 40; i++ {
		code += "600101"
	}
	code += "60005260206000F3"
	success, ret, _ := run(t, nil, mustCode(t, code))
	require.True(t, success)
	want := word.Bytes32(word.FromUint64(41))
	require.Equal(t, want[:], ret)
}

func TestReturnFirstThreeBytesOfMemory(t *testing.T) {
	// PUSH1 1; PUSH1 0; MSTORE; PUSH1 3; PUSH1 0; RETURN -- offset=0 size=3.
	success, ret, _ := run(t, nil, mustCode(t, "600160005260036000f3"))
	require.True(t, success)
	require.Len(t, ret, 3)
}

func TestContextProbeLayout(t *testing.T) {
	ctx := &vmcontext.Context{
		Origin:     word.HexToAddress("0x1111111111111111111111111111111111111111"),
		Caller:     word.HexToAddress("0x2222222222222222222222222222222222222222"),
		Address:    word.HexToAddress("0x3333333333333333333333333333333333333333"),
		Coinbase:   word.HexToAddress("0x4444444444444444444444444444444444444444"),
		CallValue:  word.FromUint64(5),
		Timestamp:  word.FromUint64(6),
		Number:     word.FromUint64(7),
		GasLimit:   word.FromUint64(8),
		Difficulty: word.FromUint64(9),
		ChainID:    word.FromUint64(10),
		BaseFee:    word.FromUint64(11),
	}
	code := "32600052336020523060405234606052416080524260a0524360c0524560e" +
		"0524461010052466101205248610140526101606000F3"
	success, ret, _ := run(t, ctx, mustCode(t, code))
	require.True(t, success)
	require.Len(t, ret, 352) // 11 words

	words := []word.Word{
		word.AddressToWord(ctx.Origin),
		word.AddressToWord(ctx.Caller),
		word.AddressToWord(ctx.Address),
		ctx.CallValue,
		word.AddressToWord(ctx.Coinbase),
		ctx.Timestamp,
		ctx.Number,
		ctx.GasLimit,
		ctx.Difficulty,
		ctx.ChainID,
		ctx.BaseFee,
	}
	for i, w := range words {
		got := ret[i*32 : i*32+32]
		wantBytes := word.Bytes32(w)
		require.Equal(t, wantBytes[:], got, "word %d", i)
	}
}

func TestJumpToNonJumpdestIsInvalidJump(t *testing.T) {
	success, ret, _ := run(t, nil, mustCode(t, "60016000565B6002"))
	require.False(t, success)
	require.Equal(t, "invalid jump", string(ret))
}

func TestJumpToJumpdestSucceeds(t *testing.T) {
	// PUSH1 3; JUMP; JUMPDEST; PUSH1 2 -- JUMP target 3 is the JUMPDEST byte.
	success, _, st := run(t, nil, mustCode(t, "6003565B6002"))
	require.True(t, success)
	top, err := st.Peek(0)
	require.NoError(t, err)
	require.True(t, top.Eq(ptrWord(word.FromUint64(2))))
}

func TestJumpIntoPushDataIsInvalidJump(t *testing.T) {
	// PUSH2 0x005B (its second immediate byte happens to equal JUMPDEST);
	// PUSH1 2 (the offset of that data byte); JUMP.
	success, ret, _ := run(t, nil, mustCode(t, "61005b600256"))
	require.False(t, success)
	require.Equal(t, "invalid jump", string(ret))
}

func TestUnknownOpcodeIsInvalidOp(t *testing.T) {
	success, ret, _ := run(t, nil, mustCode(t, "0c"))
	require.False(t, success)
	require.Equal(t, "invalid op", string(ret))
}

func TestDivByZeroYieldsZero(t *testing.T) {
	// PUSH1 0 (divisor); PUSH1 5 (dividend); DIV -- 5/0 == 0 per EVM convention.
	success, _, st := run(t, nil, mustCode(t, "6000600504"))
	require.True(t, success)
	top, err := st.Peek(0)
	require.NoError(t, err)
	require.True(t, top.IsZero())
}

func TestStackOverflowHalts(t *testing.T) {
	code := ""
	for i := 0; i < 1025; i++ {
		code += "6001"
	}
	success, ret, _ := run(t, nil, mustCode(t, code))
	require.False(t, success)
	require.Equal(t, "stack overflow", string(ret))
}

func TestStackUnderflowHalts(t *testing.T) {
	success, ret, _ := run(t, nil, mustCode(t, hex.EncodeToString([]byte{byte(ADD)})))
	require.False(t, success)
	require.Equal(t, "stack underflow", string(ret))
}

func TestRevertReportsFailureWithData(t *testing.T) {
	success, ret, _ := run(t, nil, mustCode(t, "600160005260036000fd"))
	require.False(t, success)
	require.Len(t, ret, 3)
}

func ptrWord(w word.Word) *word.Word { return &w }
