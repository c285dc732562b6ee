package gadget

import "evmcore/common"

// AccessTuple is one entry of an EIP-2930 access list.
type AccessTuple struct {
	Address     common.Address `json:"address"`
	StorageKeys []common.Hash  `json:"storageKeys"`
}

type AccessList []AccessTuple

// Len returns the number of addresses in the list.
func (al AccessList) Len() int {
	return len(al)
}

// StorageKeys returns the total number of storage keys across all entries.
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, tuple := range al {
		sum += len(tuple.StorageKeys)
	}
	return sum
}
