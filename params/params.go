package params

var (
	TxGas                     uint64 = 21000 // Per transaction not creating a contract. NOTE: Not payable on data of calls between transactions.
	TxGasContractCreation     uint64 = 53000 // Per transaction that creates a contract. NOTE: Not payable on data of calls between transactions.
	TxDataZeroGas             uint64 = 4     // Per byte of data attached to a transaction that equals zero. NOTE: Not payable on data of calls between transactions.
	TxDataNonZeroGas          uint64 = 16    // Per byte of non zero data attached to a transaction after EIP 2028 (part in Istanbul)
	TxAccessListAddressGas    uint64 = 2400  // Per address specified in EIP 2930 access list
	TxAccessListStorageKeyGas uint64 = 1900  // Per storage key specified in EIP 2930 access list
	InitCodeWordGas           uint64 = 2     // Per word of initialisation code for a contract
)

const (
	MainnetChainID uint64 = 1 // Chain id the policy defaults to when none is configured

	MaxCodeSize     uint64 = 24576           // Maximum bytecode to permit for a contract (EIP-170)
	MaxInitCodeSize uint64 = 2 * MaxCodeSize // Maximum initcode to permit in a creation transaction (EIP-3860)

	RefundQuotient        uint64 = 2 // Maximum refund quotient; max refund is gas used / 2 before EIP-3529
	RefundQuotientEIP3529 uint64 = 5 // Maximum refund quotient after EIP-3529

	// DefaultMemoryLimit bounds execution memory growth when memory limiting
	// is compiled in; 2^32 - 1 bytes per EIP-1985.
	DefaultMemoryLimit uint64 = 1<<32 - 1
)
