package types

import (
	"encoding/json"
	"evmcore/common"
	"evmcore/params"
	"evmcore/types/gadget"
	"math"
	"math/big"
)

// TxDynamic is a dynamic-fee transaction: the only transaction shape the
// engine executes. A nil destination makes it a contract creation.
type TxDynamic struct {
	Preface TxDynamicPreface // fee offer, sender identity and ordering

	Inner TxDynamicInner // call target and payload
}

func (tx *TxDynamic) TxPreface() TxPreface {
	return &tx.Preface
}

func (tx *TxDynamic) TxInner() TxInner {
	return &tx.Inner
}

func (tx *TxDynamic) Serialize() []byte {
	ret, err := json.Marshal(tx)
	if err != nil {
		panic(err)
	}
	return ret
}

// Cost returns the maximum wei the transaction can take from the sender:
// gas limit priced at the fee cap plus the transferred value.
func (tx *TxDynamic) Cost() *big.Int {
	gasCost := new(big.Int).Mul(tx.Preface.gasPrice.FeeCap, new(big.Int).SetUint64(tx.Preface.gasLimit))
	return gasCost.Add(gasCost, tx.Preface.value)
}

func (tx *TxDynamic) Size() uint64 {
	return uint64(len(tx.Serialize()))
}

func (tx *TxDynamic) IntrinsicGas() (uint64, error) {
	// Set the starting gas for the raw transaction
	var gas uint64
	if tx.Inner.to == nil {
		gas = params.TxGasContractCreation
	} else {
		gas = params.TxGas
	}
	dataLen := uint64(len(tx.Inner.data))
	// Bump the required gas by the amount of transactional data
	if dataLen > 0 {
		// Zero and non-zero bytes are priced differently
		var nz uint64
		for _, byt := range tx.Inner.data {
			if byt != 0 {
				nz++
			}
		}
		// Make sure we don't exceed uint64 for all data combinations
		nonZeroGas := params.TxDataNonZeroGas

		if (math.MaxUint64-gas)/nonZeroGas < nz {
			return 0, ErrGasUintOverflow
		}
		gas += nz * nonZeroGas

		z := dataLen - nz
		if (math.MaxUint64-gas)/params.TxDataZeroGas < z {
			return 0, ErrGasUintOverflow
		}
		gas += z * params.TxDataZeroGas

		if tx.Inner.to == nil {
			lenWords := toWordSize(dataLen)
			if (math.MaxUint64-gas)/params.InitCodeWordGas < lenWords {
				return 0, ErrGasUintOverflow
			}
			gas += lenWords * params.InitCodeWordGas
		}
	}
	if tx.Inner.accessList != nil {
		gas += uint64(tx.Inner.accessList.Len()) * params.TxAccessListAddressGas
		gas += uint64(tx.Inner.accessList.StorageKeys()) * params.TxAccessListStorageKeyGas
	}
	return gas, nil
}

// toWordSize returns the ceiled word size required for init code payment calculation.
func toWordSize(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}

	return (size + 31) / 32
}

type TxDynamicPreface struct {
	txHash     common.Hash
	chainID    uint64
	from       common.Address
	nonce      uint64
	gasLimit   uint64
	gasPrice   gadget.GasPrice
	value      *big.Int
	validation *gadget.SignatureEcdsa
}

func (txPreface *TxDynamicPreface) TxHash() common.Hash {
	return txPreface.txHash
}

func (txPreface *TxDynamicPreface) ChainID() uint64 {
	return txPreface.chainID
}

func (txPreface *TxDynamicPreface) From() common.Address {
	return txPreface.from
}

func (txPreface *TxDynamicPreface) Nonce() uint64 {
	return txPreface.nonce
}

func (txPreface *TxDynamicPreface) GasLimit() uint64 {
	return txPreface.gasLimit
}

func (txPreface *TxDynamicPreface) GasPrice() *gadget.GasPrice {
	return &txPreface.gasPrice
}

func (txPreface *TxDynamicPreface) Value() *big.Int {
	return txPreface.value
}

func (txPreface *TxDynamicPreface) Validation() gadget.Validation {
	return txPreface.validation
}

type TxDynamicInner struct {
	to         *common.Address
	data       []byte
	accessList gadget.AccessList
}

func (txInner *TxDynamicInner) To() *common.Address {
	return txInner.to
}

func (txInner *TxDynamicInner) Data() []byte {
	return txInner.data
}

func (txInner *TxDynamicInner) AccessList() gadget.AccessList {
	return txInner.accessList
}

// NewDynamicTransaction assembles, hashes and signs a dynamic-fee
// transaction. The hash covers everything but the hash and signature fields
// themselves, and the signature binds the sender key to it.
func NewDynamicTransaction(chainID uint64, nonce uint64, to *common.Address,
	gasLimit uint64, gasPrice gadget.GasPrice, value *big.Int, data []byte,
	accessList gadget.AccessList, prv []byte) (*TxDynamic, error) {
	from, err := gadget.AddressOfKey(prv)
	if err != nil {
		return nil, err
	}
	tx := &TxDynamic{
		Preface: TxDynamicPreface{
			chainID:  chainID,
			from:     from,
			nonce:    nonce,
			gasLimit: gasLimit,
			gasPrice: gasPrice,
			value:    value,
		},
		Inner: TxDynamicInner{
			to:         to,
			data:       data,
			accessList: accessList,
		},
	}
	hash := common.GenerateHash(tx.Serialize())
	tx.Preface.txHash = hash

	var validate gadget.SignatureEcdsa
	validate.Sign(hash, prv)
	tx.Preface.validation = &validate

	return tx, nil
}
