package core

import (
	"evmcore/common"
	"evmcore/params"
	"evmcore/types"
	"evmcore/types/gadget"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestBuyGas(t *testing.T) {
	prv := newTestKey(t)
	sender := mustAddressOfKey(t, prv)
	tx := newTx(t, prv, validParams()) // cost = 50000*100 + 10
	cost := uint64(50000*100 + 10)

	db := newStateFixture()
	db.fund(sender, 10_000_000)
	gp := new(GasPool).AddGas(8_000_000)

	require.NoError(t, BuyGas(tx, &testPolicy{chainID: 1}, db, gp))
	require.Equal(t, uint256.NewInt(10_000_000-cost), db.GetBalance(sender))
	require.EqualValues(t, 8_000_000-50000, gp.Gas())
}

func TestBuyGasInsufficientFunds(t *testing.T) {
	prv := newTestKey(t)
	sender := mustAddressOfKey(t, prv)
	tx := newTx(t, prv, validParams())

	db := newStateFixture()
	db.fund(sender, 100)
	gp := new(GasPool).AddGas(8_000_000)

	require.ErrorIs(t, BuyGas(tx, &testPolicy{chainID: 1}, db, gp), ErrInsufficientFunds)
	require.EqualValues(t, 8_000_000, gp.Gas(), "failed purchase must not consume pool gas")
}

func TestBuyGasBalanceCheckDisabled(t *testing.T) {
	prv := newTestKey(t)
	sender := mustAddressOfKey(t, prv)
	tx := newTx(t, prv, validParams())

	db := newStateFixture()
	gp := new(GasPool).AddGas(8_000_000)
	policy := &testPolicy{chainID: 1, disableBalanceCheck: true}

	// Broke sender gets topped up to exactly the cost, so the charge lands on zero
	require.NoError(t, BuyGas(tx, policy, db, gp))
	require.True(t, db.GetBalance(sender).IsZero())
}

func TestBuyGasPoolExhausted(t *testing.T) {
	prv := newTestKey(t)
	sender := mustAddressOfKey(t, prv)
	tx := newTx(t, prv, validParams())

	db := newStateFixture()
	db.fund(sender, 10_000_000)
	gp := new(GasPool).AddGas(40000)

	require.ErrorIs(t, BuyGas(tx, &testPolicy{chainID: 1}, db, gp), ErrGasLimitReached)

	// With the block gas limit disabled the pool is bypassed entirely
	policy := &testPolicy{chainID: 1, disableBlockGasLimit: true}
	require.NoError(t, BuyGas(tx, policy, db, gp))
	require.EqualValues(t, 40000, gp.Gas())
}

func TestRefundGas(t *testing.T) {
	prv := newTestKey(t)
	sender := mustAddressOfKey(t, prv)
	tx := newTx(t, prv, validParams()) // gas limit 50000, fee cap 100

	db := newStateFixture()
	gp := new(GasPool)

	// 30000 gas used, counter above the EIP-3529 cap: refund = 30000/5
	refund, err := RefundGas(tx, &testPolicy{chainID: 1}, db, gp, 20000, 50000, params.RefundQuotientEIP3529)
	require.NoError(t, err)
	require.EqualValues(t, 6000, refund)
	require.Equal(t, uint256.NewInt((20000+6000)*100), db.GetBalance(sender))
	require.EqualValues(t, 26000, gp.Gas())
}

func TestRefundGasCounterBelowCap(t *testing.T) {
	prv := newTestKey(t)
	tx := newTx(t, prv, validParams())

	db := newStateFixture()
	refund, err := RefundGas(tx, &testPolicy{chainID: 1}, db, new(GasPool), 20000, 100, params.RefundQuotientEIP3529)
	require.NoError(t, err)
	require.EqualValues(t, 100, refund)
}

func TestRefundGasDisabled(t *testing.T) {
	prv := newTestKey(t)
	sender := mustAddressOfKey(t, prv)
	tx := newTx(t, prv, validParams())

	db := newStateFixture()
	gp := new(GasPool)
	policy := &testPolicy{chainID: 1, disableGasRefund: true}

	refund, err := RefundGas(tx, policy, db, gp, 20000, 50000, params.RefundQuotientEIP3529)
	require.NoError(t, err)
	require.Zero(t, refund)
	// Leftover gas still comes back, just without the refund counter applied
	require.Equal(t, uint256.NewInt(20000*100), db.GetBalance(sender))
	require.EqualValues(t, 20000, gp.Gas())
}

func TestRefundGasOversizedFeeCap(t *testing.T) {
	prv := newTestKey(t)
	target := common.BytesToAddress([]byte("target"))
	feeCap := new(big.Int).Lsh(big.NewInt(1), 300)
	tx, err := types.NewDynamicTransaction(1, 0, &target, 50000,
		*gadget.NewGasPrice(feeCap, big.NewInt(1)), big.NewInt(0), nil, nil, prv)
	require.NoError(t, err)

	db := newStateFixture()
	sender := mustAddressOfKey(t, prv)
	_, err = RefundGas(tx, &testPolicy{chainID: 1}, db, new(GasPool), 20000, 0, params.RefundQuotientEIP3529)
	require.ErrorIs(t, err, ErrFeeCapVeryHigh)
	require.True(t, db.GetBalance(sender).IsZero(), "a truncated fee cap must not be paid out")
}
