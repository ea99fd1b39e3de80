package evm

import (
	"github.com/entropyio/evmcore/memory"
	"github.com/entropyio/evmcore/stack"
	"github.com/entropyio/evmcore/storage"
	"github.com/entropyio/evmcore/vmcontext"
	"github.com/entropyio/evmcore/word"
)

// The op* functions below are the table-handled opcodes' execute funcs
// (see jump_table.go). Each pops its operands off the stack, computes the
// result with the word package's wrapping 256-bit semantics, and pushes it
// back. The interpreter loop has already checked minStack/maxStack before
// calling execute, so pop/push here cannot underflow or overflow.

func opAdd(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Add(a, b))
}

func opMul(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Mul(a, b))
}

func opSub(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Sub(a, b))
}

func opDiv(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Div(a, b))
}

func opSdiv(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.SDiv(a, b))
}

func opMod(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Mod(a, b))
}

func opSmod(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.SMod(a, b))
}

func opAddmod(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	n, _ := st.Pop()
	return st.Push(word.AddMod(a, b, n))
}

func opMulmod(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	n, _ := st.Pop()
	return st.Push(word.MulMod(a, b, n))
}

func opExp(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	base, _ := st.Pop()
	exponent, _ := st.Pop()
	return st.Push(word.Exp(base, exponent))
}

func opSignExtend(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	b, _ := st.Pop()
	x, _ := st.Pop()
	return st.Push(word.SignExtend(b, x))
}

func opLt(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Lt(a, b))
}

func opGt(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Gt(a, b))
}

func opSlt(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Slt(a, b))
}

func opSgt(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Sgt(a, b))
}

func opEq(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Eq(a, b))
}

func opIszero(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	return st.Push(word.IsZero(a))
}

func opAnd(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.And(a, b))
}

func opOr(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Or(a, b))
}

func opXor(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	b, _ := st.Pop()
	return st.Push(word.Xor(a, b))
}

func opNot(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	a, _ := st.Pop()
	return st.Push(word.Not(a))
}

func opByte(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	i, _ := st.Pop()
	x, _ := st.Pop()
	return st.Push(word.Byte(i, x))
}

func opShl(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	shift, _ := st.Pop()
	value, _ := st.Pop()
	return st.Push(word.Shl(shift, value))
}

func opShr(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	shift, _ := st.Pop()
	value, _ := st.Pop()
	return st.Push(word.Shr(shift, value))
}

func opSar(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	shift, _ := st.Pop()
	value, _ := st.Pop()
	return st.Push(word.Sar(shift, value))
}

func opKeccak256(st *stack.Stack, mem *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	offset, _ := st.Pop()
	size, _ := st.Pop()
	h := mem.Keccak256(offset.Uint64(), size.Uint64())
	return st.Push(h)
}

func opAddress(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(word.AddressToWord(ctx.Address))
}

func opBalance(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	w, _ := st.Pop()
	addr := word.WordToAddress(w)
	return st.Push(ctx.Balance(addr))
}

func opOrigin(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(word.AddressToWord(ctx.Origin))
}

func opCaller(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(word.AddressToWord(ctx.Caller))
}

func opCallValue(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.CallValue)
}

func opCallDataLoad(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	off, _ := st.Pop()
	start := off.Uint64()
	data := make([]byte, 32)
	if start < uint64(len(ctx.Calldata)) {
		end := start + 32
		if end > uint64(len(ctx.Calldata)) {
			end = uint64(len(ctx.Calldata))
		}
		copy(data, ctx.Calldata[start:end])
	}
	return st.Push(word.FromBytes(data))
}

func opCallDataSize(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(word.FromUint64(uint64(len(ctx.Calldata))))
}

func opCallDataCopy(st *stack.Stack, mem *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	destOff, _ := st.Pop()
	srcOff, _ := st.Pop()
	size, _ := st.Pop()
	mem.CopyIn(destOff.Uint64(), ctx.Calldata, srcOff.Uint64(), size.Uint64())
	return nil
}

func opCoinbase(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(word.AddressToWord(ctx.Coinbase))
}

func opTimestamp(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.Timestamp)
}

func opNumber(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.Number)
}

func opDifficulty(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.Difficulty)
}

func opGasLimit(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.GasLimit)
}

func opChainID(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.ChainID)
}

func opSelfBalance(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.Balance(ctx.Address))
}

func opBaseFee(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.BaseFee)
}

func opPop(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	_, err := st.Pop()
	return err
}

func opMload(st *stack.Stack, mem *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	off, _ := st.Pop()
	return st.Push(mem.Load32(off.Uint64()))
}

func opMstore(st *stack.Stack, mem *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	off, _ := st.Pop()
	val, _ := st.Pop()
	mem.Set32(off.Uint64(), val)
	return nil
}

func opMstore8(st *stack.Stack, mem *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	off, _ := st.Pop()
	val, _ := st.Pop()
	mem.SetByte(off.Uint64(), byte(val.Uint64()&0xff))
	return nil
}

func opSload(st *stack.Stack, _ *memory.Memory, store *storage.Storage, _ *vmcontext.Context) error {
	key, _ := st.Pop()
	return st.Push(store.Load(key))
}

func opSstore(st *stack.Stack, _ *memory.Memory, store *storage.Storage, _ *vmcontext.Context) error {
	key, _ := st.Pop()
	val, _ := st.Pop()
	store.Store(key, val)
	return nil
}

func opMsize(st *stack.Stack, mem *memory.Memory, _ *storage.Storage, _ *vmcontext.Context) error {
	return st.Push(word.FromUint64(uint64(mem.Len())))
}

// opGas pushes the deterministic GAS placeholder (spec.md §9 open
// question): the host-supplied GasLimit context field, never decremented.
func opGas(st *stack.Stack, _ *memory.Memory, _ *storage.Storage, ctx *vmcontext.Context) error {
	return st.Push(ctx.GasLimit)
}
