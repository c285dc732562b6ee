//go:build memory_limit

package vm

import "evmcore/params"

// memoryLimitEnv carries the execution memory bound. Compiled in with the
// memory_limit tag.
type memoryLimitEnv struct {
	// MemoryLimit is a hard limit in bytes beyond which execution memory
	// cannot be resized; crossing it surfaces as an out-of-gas memory error
	// in the engine. Worth lowering when gas limits are extraordinarily
	// high. Defaults to 2^32 - 1 bytes per EIP-1985.
	MemoryLimit uint64 `json:"memoryLimit"`
}

func (e *memoryLimitEnv) applyDefault() {
	e.MemoryLimit = params.DefaultMemoryLimit
}

// GetMemoryLimit returns the configured memory bound. The accessor exists
// only in builds compiled with the memory_limit tag.
func (c *CfgEnv) GetMemoryLimit() uint64 {
	return c.MemoryLimit
}
