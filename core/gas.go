package core

import (
	"evmcore/state"
	"evmcore/types"
	"evmcore/vm"
	"fmt"

	"github.com/holiman/uint256"
)

// BuyGas reserves the transaction's gas from the block pool and charges the
// sender the maximum cost up front.
//
// With balance checks disabled, the sender is topped up to the transaction
// cost first so the charge cannot overdraft; with the block gas limit
// disabled, the pool is bypassed entirely.
func BuyGas(tx types.Transaction, cfg vm.Config, statedb state.StateDB, gp *GasPool) error {
	preface := tx.TxPreface()
	from := preface.From()

	cost, overflow := uint256.FromBig(tx.Cost())
	if overflow {
		return fmt.Errorf("%w: cost exceeds 256 bits", ErrInsufficientFunds)
	}
	if cfg.IsBalanceCheckDisabled() {
		if have := statedb.GetBalance(from); have.Cmp(cost) < 0 {
			statedb.AddBalance(from, new(uint256.Int).Sub(cost, have))
		}
	} else if have := statedb.GetBalance(from); have.Cmp(cost) < 0 {
		return fmt.Errorf("%w: balance %v, tx cost %v", ErrInsufficientFunds, have, cost)
	}
	if !cfg.IsBlockGasLimitDisabled() {
		if err := gp.SubGas(preface.GasLimit()); err != nil {
			return err
		}
	}
	statedb.SubBalance(from, cost)
	return nil
}

// RefundGas settles a transaction's gas after execution. The refund counter
// accumulated by execution is capped at gasUsed/refundQuotient (callers
// pass params.RefundQuotient or params.RefundQuotientEIP3529 depending on
// the fork) and withheld entirely when the policy disables refunds. The
// remaining gas is repriced at the fee cap the sender was charged with and
// returned to the balance, and the block pool gets the gas back. Returns the
// gas actually refunded into gasRemaining.
func RefundGas(tx types.Transaction, cfg vm.Config, statedb state.StateDB, gp *GasPool, gasRemaining, refundCounter, refundQuotient uint64) (uint64, error) {
	preface := tx.TxPreface()
	gasUsed := preface.GasLimit() - gasRemaining

	// A fee cap beyond 256 bits cannot be repriced; BuyGas rejects such
	// offers, but the refund path must not silently truncate one either
	feeCap, overflow := uint256.FromBig(preface.GasPrice().FeeCap)
	if overflow {
		return 0, fmt.Errorf("%w: fee cap exceeds 256 bits", ErrFeeCapVeryHigh)
	}

	var refund uint64
	if !cfg.IsGasRefundDisabled() {
		// Apply refund counter, capped to a quotient of the used gas
		refund = gasUsed / refundQuotient
		if refund > refundCounter {
			refund = refundCounter
		}
	}
	gasRemaining += refund

	// Return wei for remaining gas, priced at what the sender was charged
	remaining := new(uint256.Int).Mul(uint256.NewInt(gasRemaining), feeCap)
	statedb.AddBalance(preface.From(), remaining)

	// Also return remaining gas to the block pool so it is available for the
	// next transaction, unless the pool was bypassed
	if !cfg.IsBlockGasLimitDisabled() {
		gp.AddGas(gasRemaining)
	}
	return refund, nil
}
