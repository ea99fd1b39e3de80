// Package word implements the 256-bit word arithmetic the interpreter
// operates on: wrapping unsigned/signed arithmetic, modular arithmetic,
// bitwise and shift operations, and KECCAK-256 hashing. It is a thin
// façade over github.com/holiman/uint256, following the same direct,
// in-place style used across the reference EVM implementations (erigon,
// go-ethereum) rather than routing 256-bit math through math/big.
package word

import (
	"golang.org/x/crypto/sha3"

	"github.com/holiman/uint256"
)

// Word is a 256-bit value. All arithmetic wraps modulo 2^256; signed
// operations reinterpret the bits as two's complement.
type Word = uint256.Int

// Zero returns the zero word.
func Zero() Word { return Word{} }

// One returns the word 1.
func One() Word {
	var z Word
	z.SetOne()
	return z
}

// FromUint64 builds a word from a uint64.
func FromUint64(v uint64) Word {
	var z Word
	z.SetUint64(v)
	return z
}

// FromBytes builds a word from big-endian bytes, truncating/zero-extending
// to 256 bits the way EVM calldata/bytecode reads do.
func FromBytes(b []byte) Word {
	var z Word
	z.SetBytes(b)
	return z
}

// Bytes32 returns the word's big-endian 32-byte representation.
func Bytes32(w Word) [32]byte {
	return w.Bytes32()
}

func boolWord(b bool) Word {
	if b {
		return One()
	}
	return Zero()
}

// Add returns a+b mod 2^256.
func Add(a, b Word) Word {
	var z Word
	z.Add(&a, &b)
	return z
}

// Sub returns a-b mod 2^256.
func Sub(a, b Word) Word {
	var z Word
	z.Sub(&a, &b)
	return z
}

// Mul returns a*b mod 2^256.
func Mul(a, b Word) Word {
	var z Word
	z.Mul(&a, &b)
	return z
}

// Div returns the unsigned quotient a/b, or 0 if b is 0.
func Div(a, b Word) Word {
	var z Word
	z.Div(&a, &b)
	return z
}

// SDiv returns the signed quotient a/b, or 0 if b is 0. Matches the EVM
// rule that SDIV(-2^255, -1) == -2^255 with no overflow trap.
func SDiv(a, b Word) Word {
	var z Word
	z.SDiv(&a, &b)
	return z
}

// Mod returns the unsigned remainder a%b, or 0 if b is 0.
func Mod(a, b Word) Word {
	var z Word
	z.Mod(&a, &b)
	return z
}

// SMod returns the signed remainder a%b (sign follows the dividend), or 0
// if b is 0.
func SMod(a, b Word) Word {
	var z Word
	z.SMod(&a, &b)
	return z
}

// AddMod returns (a+b) mod n using a 512-bit intermediate, or 0 if n is 0.
func AddMod(a, b, n Word) Word {
	if n.IsZero() {
		return Zero()
	}
	var z Word
	z.AddMod(&a, &b, &n)
	return z
}

// MulMod returns (a*b) mod n using a 512-bit intermediate, or 0 if n is 0.
func MulMod(a, b, n Word) Word {
	if n.IsZero() {
		return Zero()
	}
	var z Word
	z.MulMod(&a, &b, &n)
	return z
}

// Exp returns base^exponent mod 2^256.
func Exp(base, exponent Word) Word {
	var z Word
	z.Exp(&base, &exponent)
	return z
}

// SignExtend sign-extends x starting at byte position b (0 = low byte).
// If b >= 31, x is returned unchanged.
func SignExtend(b, x Word) Word {
	if !b.LtUint64(31) {
		return x
	}
	var z Word
	z.ExtendSign(&x, &b)
	return z
}

// Lt returns 1 if a<b (unsigned), else 0.
func Lt(a, b Word) Word { return boolWord(a.Lt(&b)) }

// Gt returns 1 if a>b (unsigned), else 0.
func Gt(a, b Word) Word { return boolWord(a.Gt(&b)) }

// Slt returns 1 if a<b (signed), else 0.
func Slt(a, b Word) Word { return boolWord(a.Slt(&b)) }

// Sgt returns 1 if a>b (signed), else 0.
func Sgt(a, b Word) Word { return boolWord(a.Sgt(&b)) }

// Eq returns 1 if a==b, else 0.
func Eq(a, b Word) Word { return boolWord(a.Eq(&b)) }

// IsZero returns 1 if a==0, else 0.
func IsZero(a Word) Word { return boolWord(a.IsZero()) }

// And returns the bitwise AND of a and b.
func And(a, b Word) Word {
	var z Word
	z.And(&a, &b)
	return z
}

// Or returns the bitwise OR of a and b.
func Or(a, b Word) Word {
	var z Word
	z.Or(&a, &b)
	return z
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b Word) Word {
	var z Word
	z.Xor(&a, &b)
	return z
}

// Not returns the bitwise complement of a.
func Not(a Word) Word {
	var z Word
	z.Not(&a)
	return z
}

// Byte returns the byte of x at position i, counting from the most
// significant byte (big-endian). i>=32 yields 0.
func Byte(i, x Word) Word {
	if !i.LtUint64(32) {
		return Zero()
	}
	z := x
	n := i
	z.Byte(&n)
	return z
}

// Shl returns value shifted left by shift bits, or 0 if shift>=256.
func Shl(shift, value Word) Word {
	if !shift.LtUint64(256) {
		return Zero()
	}
	var z Word
	z.Lsh(&value, uint(shift.Uint64()))
	return z
}

// Shr returns value shifted right by shift bits (unsigned), or 0 if
// shift>=256.
func Shr(shift, value Word) Word {
	if !shift.LtUint64(256) {
		return Zero()
	}
	var z Word
	z.Rsh(&value, uint(shift.Uint64()))
	return z
}

// Sar returns value arithmetically shifted right by shift bits. For
// shift>=256 the result is all-zero if value's sign bit is clear, all-one
// if set.
func Sar(shift, value Word) Word {
	if !shift.LtUint64(256) {
		if value.Sign() >= 0 {
			return Zero()
		}
		var z Word
		z.SetAllOne()
		return z
	}
	var z Word
	z.SRsh(&value, uint(shift.Uint64()))
	return z
}

// Keccak256 hashes data with KECCAK-256 and returns the digest as a word.
func Keccak256(data []byte) Word {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var digest [32]byte
	h.Sum(digest[:0])
	return FromBytes(digest[:])
}
