package core

import (
	"evmcore/common"
	"evmcore/state"
	"evmcore/types"
	"evmcore/vm"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
)

var (
	txSlotSize uint64 = 32 * 1024

	txMaxSize = 4 * txSlotSize // 128KB
)

// ValidationOptions define certain differences between transaction validation
// across callers without having to duplicate those checks.
type ValidationOptions struct {
	MaxSize uint64   // Maximum size of a transaction that the caller can meaningfully handle
	MinTip  *big.Int // Minimum effective tip needed to accept a transaction
}

// sanitize checks the provided options and changes anything that's
// unreasonable or unworkable.
func (opts *ValidationOptions) sanitize() ValidationOptions {
	o := *opts
	if o.MaxSize == 0 {
		log.Warn("Sanitizing invalid validation max size", "provided", o.MaxSize, "updated", txMaxSize)
		o.MaxSize = txMaxSize
	}
	if o.MinTip == nil {
		log.Warn("Sanitizing nil validation min tip", "updated", 0)
		o.MinTip = new(big.Int)
	}
	return o
}

// ValidateTransaction checks whether a transaction is valid according to the
// consensus rules relaxable through cfg, but does not check state-dependent
// validation (balance, nonce, etc).
//
// Each relaxable rule is queried through the vm.Config interface, so the
// same code serves every build configuration: a toggle that is not compiled
// in reports the rule as enforced.
func ValidateTransaction(tx types.Transaction, head types.Header, cfg vm.Config, opts *ValidationOptions) error {
	o := opts.sanitize()
	preface := tx.TxPreface()

	// Reject transactions signed for another chain outright
	if preface.ChainID() != cfg.GetChainID() {
		return fmt.Errorf("%w: tx chain id %v, engine chain id %v", ErrInvalidChainID, preface.ChainID(), cfg.GetChainID())
	}
	// Before performing any expensive validations, sanity check that the tx is
	// smaller than the maximum limit the caller can meaningfully handle
	if tx.Size() > o.MaxSize {
		return fmt.Errorf("%w: transaction size %v, limit %v", ErrOversizedData, tx.Size(), o.MaxSize)
	}
	// Transactions can't be negative. This may never happen using decoded
	// transactions but may occur for transactions created using the RPC.
	if preface.Value().Sign() < 0 {
		return ErrNegativeValue
	}
	// Creation initcode is bounded at twice the deployed-code ceiling, so a
	// configured code-size override moves this limit along with it
	if tx.TxInner().To() == nil {
		if limit := 2 * cfg.GetMaxCodeSize(); uint64(len(tx.TxInner().Data())) > limit {
			return fmt.Errorf("%w: initcode size %v, limit %v", ErrMaxInitCodeSizeExceeded, len(tx.TxInner().Data()), limit)
		}
	}
	// Ensure the transaction doesn't exceed the current block limit gas,
	// unless the policy relaxes the block gas limit
	if !cfg.IsBlockGasLimitDisabled() && head.GasLimit() < preface.GasLimit() {
		return ErrGasLimit
	}
	// Sanity check for extremely large numbers (supported by RPC)
	gasPrice := preface.GasPrice()
	if gasPrice.FeeCap.BitLen() > 256 {
		return ErrFeeCapVeryHigh
	}
	if gasPrice.TipCap.Cmp(gasPrice.FeeCap) > 0 {
		return ErrTipAboveFeeCap
	}
	// Ensure the fee cap covers the block base fee, unless the policy
	// disables base fee enforcement for this context
	if !cfg.IsBaseFeeCheckDisabled() && head.BaseFee() != nil && gasPrice.FeeCap.Cmp(head.BaseFee()) < 0 {
		return fmt.Errorf("%w: fee cap %v, base fee %v", ErrFeeCapTooLow, gasPrice.FeeCap, head.BaseFee())
	}
	// Make sure the transaction is signed properly
	from, err := preface.Validation().GetFrom(preface.TxHash())
	if err != nil || from != preface.From() {
		return ErrInvalidSender
	}
	// Ensure the transaction has more gas than the bare minimum needed to cover
	// the transaction metadata
	intrGas, err := tx.IntrinsicGas()
	if err != nil {
		return err
	}
	if preface.GasLimit() < intrGas {
		return fmt.Errorf("%w: needed %v, allowed %v", ErrIntrinsicGas, intrGas, preface.GasLimit())
	}
	// The tip floor is meaningless in contexts that run without base fee
	// enforcement (zero gas price calls), so it is skipped alongside it
	if !cfg.IsBaseFeeCheckDisabled() && gasPrice.EffectiveTip(head.BaseFee()).Cmp(o.MinTip) < 0 {
		return fmt.Errorf("%w: tip needed %v, tip permitted %v", ErrUnderpriced, o.MinTip, gasPrice.TipCap)
	}
	return nil
}

// ValidateTransactionWithState checks a transaction against the sender's
// current account state: nonce ordering, the EIP-3607 deployed-code
// restriction and the up-front balance requirement. Each check is skipped
// when the policy reports the corresponding rule as disabled.
func ValidateTransactionWithState(tx types.Transaction, cfg vm.Config, statedb state.StateDB) error {
	preface := tx.TxPreface()
	from := preface.From()

	// Ensure the transaction adheres to nonce ordering
	if !cfg.IsNonceCheckDisabled() {
		next := statedb.GetNonce(from)
		if next > preface.Nonce() {
			return fmt.Errorf("%w: next nonce %v, tx nonce %v", ErrNonceTooLow, next, preface.Nonce())
		}
		if next < preface.Nonce() {
			return fmt.Errorf("%w: next nonce %v, tx nonce %v", ErrNonceTooHigh, next, preface.Nonce())
		}
		if next+1 < next {
			return fmt.Errorf("%w: address %v, nonce %v", ErrNonceMax, from, next)
		}
	}
	// Make sure the sender is an EOA (EIP-3607)
	if !cfg.IsEIP3607Disabled() {
		if codeHash := statedb.GetCodeHash(from); codeHash != (common.Hash{}) && codeHash != common.EmptyCodeHash {
			return fmt.Errorf("%w: address %v, codehash %v", ErrSenderNoEOA, from, codeHash)
		}
	}
	// Ensure the transactor has enough funds to cover the transaction costs
	if !cfg.IsBalanceCheckDisabled() {
		cost, overflow := uint256.FromBig(tx.Cost())
		if overflow {
			return fmt.Errorf("%w: cost exceeds 256 bits", ErrInsufficientFunds)
		}
		if balance := statedb.GetBalance(from); balance.Cmp(cost) < 0 {
			return fmt.Errorf("%w: balance %v, tx cost %v, overshot %v", ErrInsufficientFunds, balance, cost, new(uint256.Int).Sub(cost, balance))
		}
	}
	return nil
}
