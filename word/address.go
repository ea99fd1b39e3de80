package word

import (
	"encoding/hex"

	"github.com/entropyio/evmcore/config"
)

// Address is a 20-byte account address.
type Address [config.AddressBytes]byte

// BytesToAddress left-truncates b to the low 20 bytes of an address,
// zero-padding on the left if b is shorter.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > len(a) {
		b = b[len(b)-len(a):]
	}
	copy(a[len(a)-len(b):], b)
	return a
}

// HexToAddress parses a hex string (with or without 0x prefix) into an
// Address.
func HexToAddress(s string) Address {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	b, _ := hex.DecodeString(s)
	return BytesToAddress(b)
}

// AddressToWord zero-pads addr on the left into a full 256-bit word, the
// representation ADDRESS/ORIGIN/CALLER/COINBASE push onto the stack.
func AddressToWord(addr Address) Word {
	var z Word
	z.SetBytes(addr[:])
	return z
}

// WordToAddress takes the low 20 bytes of w as an address.
func WordToAddress(w Word) Address {
	return Address(w.Bytes20())
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
