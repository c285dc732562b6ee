//go:build optional_no_base_fee

package vm

// baseFeeEnv carries the base fee check toggle. Compiled in with the
// optional_no_base_fee tag.
type baseFeeEnv struct {
	// DisableBaseFee skips the EIP-1559 base fee check, letting method calls
	// run with a zero gas price.
	DisableBaseFee bool `json:"disableBaseFee"`
}

func (e *baseFeeEnv) baseFeeCheckDisabled() bool {
	return e.DisableBaseFee
}
