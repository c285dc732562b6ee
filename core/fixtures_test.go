package core

import (
	"evmcore/common"
	"evmcore/state"
	"evmcore/types/gadget"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

type stateFixture struct {
	*state.MemDB
}

func newStateFixture() *stateFixture {
	return &stateFixture{state.NewMemDB()}
}

func (f *stateFixture) fund(addr common.Address, amount uint64) {
	f.AddBalance(addr, uint256.NewInt(amount))
}

func mustAddressOfKey(t *testing.T, prv []byte) common.Address {
	t.Helper()
	addr, err := gadget.AddressOfKey(prv)
	require.NoError(t, err)
	return addr
}
