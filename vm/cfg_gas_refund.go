//go:build optional_gas_refund

package vm

// gasRefundEnv carries the gas refund toggle. Compiled in with the
// optional_gas_refund tag.
type gasRefundEnv struct {
	// DisableGasRefund withholds all gas refunds, matching chains that have
	// removed them (see EIP-3298 for the reasoning).
	DisableGasRefund bool `json:"disableGasRefund"`
}

func (e *gasRefundEnv) gasRefundDisabled() bool {
	return e.DisableGasRefund
}
