package types

import (
	"evmcore/common"
	"evmcore/types/gadget"
	"math/big"
)

type Transaction interface {
	TxPreface() TxPreface

	TxInner() TxInner

	Serialize() []byte

	Cost() *big.Int

	Size() uint64

	IntrinsicGas() (uint64, error)
}

type TxPreface interface {
	TxHash() common.Hash
	ChainID() uint64
	From() common.Address
	Nonce() uint64
	GasLimit() uint64
	GasPrice() *gadget.GasPrice
	Value() *big.Int
	Validation() gadget.Validation
}

type TxInner interface {
	// To returns the call target, nil for contract creation.
	To() *common.Address
	Data() []byte
	AccessList() gadget.AccessList
}

type Transactions []Transaction

type TxByNonce Transactions

func (s TxByNonce) Len() int { return len(s) }
func (s TxByNonce) Less(i, j int) bool {
	return s[i].TxPreface().Nonce() < s[j].TxPreface().Nonce()
}
func (s TxByNonce) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
