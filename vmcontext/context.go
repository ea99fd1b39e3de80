// Package vmcontext carries the immutable execution context an
// interpreter invocation reads from: transaction/block fields, chain id,
// balances, and calldata. It is borrowed read-only by the interpreter and
// never mutated once constructed, so the same Context value may be shared
// across multiple concurrent Evaluate calls.
package vmcontext

import "github.com/entropyio/evmcore/word"

// Context is an immutable snapshot of the data the context-reading
// opcodes (ADDRESS, BALANCE, ORIGIN, CALLER, CALLVALUE, COINBASE,
// TIMESTAMP, NUMBER, GASLIMIT, DIFFICULTY, CHAINID, SELFBALANCE, BASEFEE,
// CALLDATA*) need.
type Context struct {
	Origin   word.Address
	Caller   word.Address
	Address  word.Address
	Coinbase word.Address

	CallValue  word.Word
	Timestamp  word.Word
	Number     word.Word
	GasLimit   word.Word
	Difficulty word.Word
	ChainID    word.Word
	BaseFee    word.Word

	// Balances defaults missing addresses to the zero word.
	Balances map[word.Address]word.Word

	Calldata []byte
}

// Balance returns the balance of addr, defaulting to 0 for addresses not
// present in Balances.
func (c *Context) Balance(addr word.Address) word.Word {
	if c.Balances == nil {
		return word.Zero()
	}
	if v, ok := c.Balances[addr]; ok {
		return v
	}
	return word.Zero()
}
