package vm

// Opcodes the analysis cares about; push data is the only thing that can
// masquerade as a jump destination.
const (
	opJumpdest byte = 0x5b
	opPush1    byte = 0x60
	opPush32   byte = 0x7f
)

// bitvec marks byte positions of code occupied by push data.
type bitvec []byte

func (bits bitvec) set(pos uint64) {
	bits[pos/8] |= 1 << (pos % 8)
}

func (bits bitvec) isSet(pos uint64) bool {
	return bits[pos/8]&(1<<(pos%8)) != 0
}

// codeBitmap walks the code once and flags every byte that is push data
// rather than an instruction.
func codeBitmap(code []byte) bitvec {
	bits := make(bitvec, len(code)/8+1)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := code[pc]
		pc++
		if op < opPush1 || op > opPush32 {
			continue
		}
		numbits := uint64(op - opPush1 + 1)
		for i := uint64(0); i < numbits && pc+i < uint64(len(code)); i++ {
			bits.set(pc + i)
		}
		pc += numbits
	}
	return bits
}

// Bytecode is contract code as stored by the engine, optionally paired with
// a precomputed jump destination bitmap.
type Bytecode struct {
	Code     []byte
	analysis bitvec // nil when the policy asked for raw code
}

// NewBytecode wraps freshly created contract code, analysing it up front
// when kind asks for it. Raw code answers jump queries by scanning on
// demand, trading repeated-execution speed for zero upfront cost.
func NewBytecode(code []byte, kind AnalysisKind) *Bytecode {
	b := &Bytecode{Code: code}
	if kind == AnalyseBytecode {
		b.analysis = codeBitmap(code)
	}
	return b
}

// Analysed reports whether the jump destination bitmap was precomputed.
func (b *Bytecode) Analysed() bool {
	return b.analysis != nil
}

// ValidJumpdest reports whether dest points at a JUMPDEST instruction that
// is not buried inside push data.
func (b *Bytecode) ValidJumpdest(dest uint64) bool {
	if dest >= uint64(len(b.Code)) || b.Code[dest] != opJumpdest {
		return false
	}
	analysis := b.analysis
	if analysis == nil {
		// Raw bytecode serves one-shot contexts, so the scan is not cached.
		analysis = codeBitmap(b.Code)
	}
	return !analysis.isSet(dest)
}
