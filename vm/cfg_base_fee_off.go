//go:build !optional_no_base_fee

package vm

// Builds without the optional_no_base_fee tag always enforce the base fee
// check.
type baseFeeEnv struct{}

func (*baseFeeEnv) baseFeeCheckDisabled() bool { return false }
