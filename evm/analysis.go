package evm

// jumpdestBitmap marks every byte position in a bytecode string as either
// code or PUSH-immediate data. A JUMP/JUMPI destination is valid only if it
// lands on a code position holding JUMPDEST (spec.md §4.G).
//
// Grounded on the pack's PUSH-immediate-skipping code/data bitmaps (e.g.
// bnb-chain-bsc/core/vm/analysis_legacy.go's codeBitmap), simplified to a
// plain []bool since this interpreter has no super-instruction rewriting to
// special-case.
type jumpdestBitmap []bool

// analyze runs the single left-to-right pre-pass spec.md §4.G describes:
// walk the bytecode, and whenever a PUSH_n is encountered, mark its n
// immediate bytes as data and skip over them.
func analyze(code []byte) jumpdestBitmap {
	isData := make(jumpdestBitmap, len(code))
	for pc := 0; pc < len(code); {
		op := OpCode(code[pc])
		if op.IsPush() {
			n := op.PushSize()
			for i := 1; i <= n && pc+i < len(code); i++ {
				isData[pc+i] = true
			}
			pc += n + 1
			continue
		}
		pc++
	}
	return isData
}

// validJumpDest reports whether dest is a JUMPDEST byte that is not inside
// a PUSH immediate.
func (bm jumpdestBitmap) validJumpDest(code []byte, dest uint64) bool {
	if dest >= uint64(len(code)) {
		return false
	}
	if bm[dest] {
		return false
	}
	return OpCode(code[dest]) == JUMPDEST
}
