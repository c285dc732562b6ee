//go:build !optional_block_gas_limit

package vm

// Builds without the optional_block_gas_limit tag always enforce the block
// gas limit.
type blockGasLimitEnv struct{}

func (*blockGasLimitEnv) blockGasLimitDisabled() bool { return false }
