package evm

import (
	"github.com/entropyio/evmcore/memory"
	"github.com/entropyio/evmcore/stack"
	"github.com/entropyio/evmcore/storage"
	"github.com/entropyio/evmcore/vmcontext"
)

// executionFunc runs one table-handled opcode. It mutates the stack,
// memory and storage it is given in place; it never returns data of its
// own (RETURN/REVERT are handled inline by the interpreter loop, not
// through the dispatch table). Borrowed mutable references replace the
// "thread the whole world through and back" handler shape some reference
// EVMs use.
type executionFunc func(st *stack.Stack, mem *memory.Memory, store *storage.Storage, ctx *vmcontext.Context) error

// operation is one dispatch table entry: the handler plus the stack
// bounds the interpreter loop must check before invoking it.
type operation struct {
	execute executionFunc
	// minStack is the minimum stack length required for the operation's
	// pops not to underflow.
	minStack int
	// maxStack is the maximum stack length the operation may start from
	// without its net pushes overflowing config.StackLimit.
	maxStack int
}

// JumpTable is the fixed opcode-to-handler mapping. Entries for
// inline-handled opcodes (STOP, PUSH*, DUP*, SWAP*, JUMP, JUMPI,
// JUMPDEST, PC, CODESIZE, CODECOPY, RETURN, REVERT) and for unassigned or
// out-of-scope opcodes are left nil; the interpreter loop treats a nil
// entry it falls through to as ErrInvalidOpcode.
type JumpTable [256]*operation

func newOp(fn executionFunc, pop, push int) *operation {
	return &operation{
		execute:  fn,
		minStack: stack.MinStack(pop, push),
		maxStack: stack.MaxStack(pop, push),
	}
}

// NewJumpTable builds the dispatch table described in spec.md §4.F.
func NewJumpTable() *JumpTable {
	tbl := &JumpTable{}

	tbl[ADD] = newOp(opAdd, 2, 1)
	tbl[MUL] = newOp(opMul, 2, 1)
	tbl[SUB] = newOp(opSub, 2, 1)
	tbl[DIV] = newOp(opDiv, 2, 1)
	tbl[SDIV] = newOp(opSdiv, 2, 1)
	tbl[MOD] = newOp(opMod, 2, 1)
	tbl[SMOD] = newOp(opSmod, 2, 1)
	tbl[ADDMOD] = newOp(opAddmod, 3, 1)
	tbl[MULMOD] = newOp(opMulmod, 3, 1)
	tbl[EXP] = newOp(opExp, 2, 1)
	tbl[SIGNEXTEND] = newOp(opSignExtend, 2, 1)

	tbl[LT] = newOp(opLt, 2, 1)
	tbl[GT] = newOp(opGt, 2, 1)
	tbl[SLT] = newOp(opSlt, 2, 1)
	tbl[SGT] = newOp(opSgt, 2, 1)
	tbl[EQ] = newOp(opEq, 2, 1)
	tbl[ISZERO] = newOp(opIszero, 1, 1)
	tbl[AND] = newOp(opAnd, 2, 1)
	tbl[OR] = newOp(opOr, 2, 1)
	tbl[XOR] = newOp(opXor, 2, 1)
	tbl[NOT] = newOp(opNot, 1, 1)
	tbl[BYTE] = newOp(opByte, 2, 1)
	tbl[SHL] = newOp(opShl, 2, 1)
	tbl[SHR] = newOp(opShr, 2, 1)
	tbl[SAR] = newOp(opSar, 2, 1)

	tbl[KECCAK256] = newOp(opKeccak256, 2, 1)

	tbl[ADDRESS] = newOp(opAddress, 0, 1)
	tbl[BALANCE] = newOp(opBalance, 1, 1)
	tbl[ORIGIN] = newOp(opOrigin, 0, 1)
	tbl[CALLER] = newOp(opCaller, 0, 1)
	tbl[CALLVALUE] = newOp(opCallValue, 0, 1)
	tbl[CALLDATALOAD] = newOp(opCallDataLoad, 1, 1)
	tbl[CALLDATASIZE] = newOp(opCallDataSize, 0, 1)
	tbl[CALLDATACOPY] = newOp(opCallDataCopy, 3, 0)

	tbl[COINBASE] = newOp(opCoinbase, 0, 1)
	tbl[TIMESTAMP] = newOp(opTimestamp, 0, 1)
	tbl[NUMBER] = newOp(opNumber, 0, 1)
	tbl[DIFFICULTY] = newOp(opDifficulty, 0, 1)
	tbl[GASLIMIT] = newOp(opGasLimit, 0, 1)
	tbl[CHAINID] = newOp(opChainID, 0, 1)
	tbl[SELFBALANCE] = newOp(opSelfBalance, 0, 1)
	tbl[BASEFEE] = newOp(opBaseFee, 0, 1)

	tbl[POP] = newOp(opPop, 1, 0)
	tbl[MLOAD] = newOp(opMload, 1, 1)
	tbl[MSTORE] = newOp(opMstore, 2, 0)
	tbl[MSTORE8] = newOp(opMstore8, 2, 0)
	tbl[SLOAD] = newOp(opSload, 1, 1)
	tbl[SSTORE] = newOp(opSstore, 2, 0)
	tbl[MSIZE] = newOp(opMsize, 0, 1)
	tbl[GAS] = newOp(opGas, 0, 1)

	return tbl
}
