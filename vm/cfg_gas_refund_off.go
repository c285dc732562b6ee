//go:build !optional_gas_refund

package vm

// Builds without the optional_gas_refund tag always apply gas refunds.
type gasRefundEnv struct{}

func (*gasRefundEnv) gasRefundDisabled() bool { return false }
