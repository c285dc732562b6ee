//go:build optional_block_gas_limit

package vm

// blockGasLimitEnv carries the block gas limit toggle. Compiled in with the
// optional_block_gas_limit tag.
type blockGasLimitEnv struct {
	// DisableBlockGasLimit permits transactions whose gas limit exceeds the
	// block gas limit. Some callers legitimately provide such limits, e.g.
	// when simulating calls against historical blocks.
	DisableBlockGasLimit bool `json:"disableBlockGasLimit"`
}

func (e *blockGasLimitEnv) blockGasLimitDisabled() bool {
	return e.DisableBlockGasLimit
}
