package state

import (
	"evmcore/common"

	"github.com/holiman/uint256"
)

// StateDB is the account state the engine validates transactions against.
type StateDB interface {
	SubBalance(common.Address, *uint256.Int)
	AddBalance(common.Address, *uint256.Int)
	GetBalance(common.Address) *uint256.Int

	GetNonce(common.Address) uint64
	SetNonce(common.Address, uint64)

	// GetCode returns the code deployed at the address, nil for none.
	GetCode(common.Address) []byte
	SetCode(common.Address, []byte)
	// GetCodeHash returns the hash of the deployed code, the zero hash for
	// accounts that do not exist.
	GetCodeHash(common.Address) common.Hash

	Copy() StateDB
}
