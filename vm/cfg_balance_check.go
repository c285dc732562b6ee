//go:build optional_balance_check

package vm

// balanceCheckEnv carries the balance check toggle. Compiled in with the
// optional_balance_check tag.
type balanceCheckEnv struct {
	// DisableBalanceCheck skips the up-front sender balance check. The
	// engine tops the sender up with the transaction cost instead, so
	// execution cannot fail on an overdraft.
	DisableBalanceCheck bool `json:"disableBalanceCheck"`
}

func (e *balanceCheckEnv) balanceCheckDisabled() bool {
	return e.DisableBalanceCheck
}
