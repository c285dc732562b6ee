package vm

// Config is the policy surface the execution engine queries at its
// validation checkpoints. The engine holds a Config, never a concrete
// *CfgEnv, so it stays independent of which optional toggles a particular
// build carries: a toggle that is not compiled in always answers as if the
// corresponding rule were enforced.
//
// Every query is total. A true answer from an Is* query means the engine
// must skip the named validation for this execution context; false means
// the rule applies exactly as the base protocol specifies.
type Config interface {
	// GetChainID returns the chain identifier transactions are validated
	// against. Transactions declaring a different chain id are rejected by
	// the engine.
	GetChainID() uint64

	// GetMaxCodeSize returns the ceiling for deployed contract code, either
	// a configured override or the EIP-170 protocol constant.
	GetMaxCodeSize() uint64

	// IsEIP3607Disabled reports whether senders with deployed code are
	// allowed to originate transactions.
	IsEIP3607Disabled() bool

	// IsBalanceCheckDisabled reports whether the up-front sender balance
	// check is skipped.
	IsBalanceCheckDisabled() bool

	// IsGasRefundDisabled reports whether gas refunds are withheld entirely.
	IsGasRefundDisabled() bool

	// IsBlockGasLimitDisabled reports whether a transaction gas limit may
	// exceed the block gas limit.
	IsBlockGasLimitDisabled() bool

	// IsNonceCheckDisabled reports whether the transaction nonce is not
	// compared against the sender account nonce.
	IsNonceCheckDisabled() bool

	// IsBaseFeeCheckDisabled reports whether the fee cap may fall below the
	// block base fee.
	IsBaseFeeCheckDisabled() bool
}
