package types

import (
	"evmcore/common"
	"math/big"
)

// Header is the view of the enclosing block the engine validates
// transactions against.
type Header interface {
	Hash() common.Hash
	ParentHash() common.Hash
	Number() *big.Int
	GasLimit() uint64
	// BaseFee returns the EIP-1559 base fee, nil before it activated.
	BaseFee() *big.Int
}
