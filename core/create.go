package core

import (
	"evmcore/vm"
	"fmt"
)

// FinishCreate enforces the deployment checkpoints on code returned by a
// creation's initcode and packages it for storage.
//
// It takes the concrete policy rather than the query interface because the
// bytecode analysis mode is configuration the engine reads directly, not a
// relaxable rule.
func FinishCreate(cfg *vm.CfgEnv, code []byte) (*vm.Bytecode, error) {
	if size := uint64(len(code)); size > cfg.GetMaxCodeSize() {
		return nil, fmt.Errorf("%w: code size %v, limit %v", ErrMaxCodeSizeExceeded, size, cfg.GetMaxCodeSize())
	}
	// Reject code starting with 0xEF (EIP-3541)
	if len(code) > 0 && code[0] == 0xEF {
		return nil, ErrInvalidCode
	}
	return vm.NewBytecode(code, cfg.PerfAnalyseCreatedBytecodes), nil
}
