//go:build !optional_balance_check

package vm

// Builds without the optional_balance_check tag always enforce the sender
// balance check.
type balanceCheckEnv struct{}

func (*balanceCheckEnv) balanceCheckDisabled() bool { return false }
