package types

import (
	"encoding/json"
	"evmcore/common"
	"evmcore/types/gadget"
	"math/big"
)

// Wire form of the transaction parts. Field presence mirrors the in-memory
// structs; the signature is omitted while unsigned so the signing hash stays
// stable.
type txPrefaceJSON struct {
	TxHash     common.Hash            `json:"txHash"`
	ChainID    uint64                 `json:"chainId"`
	From       common.Address         `json:"from"`
	Nonce      uint64                 `json:"nonce"`
	GasLimit   uint64                 `json:"gasLimit"`
	GasPrice   gadget.GasPrice        `json:"gasPrice"`
	Value      *big.Int               `json:"value"`
	Validation *gadget.SignatureEcdsa `json:"validation,omitempty"`
}

type txInnerJSON struct {
	To         *common.Address   `json:"to,omitempty"`
	Data       []byte            `json:"data,omitempty"`
	AccessList gadget.AccessList `json:"accessList,omitempty"`
}

func (txPreface *TxDynamicPreface) MarshalJSON() ([]byte, error) {
	return json.Marshal(&txPrefaceJSON{
		TxHash:     txPreface.txHash,
		ChainID:    txPreface.chainID,
		From:       txPreface.from,
		Nonce:      txPreface.nonce,
		GasLimit:   txPreface.gasLimit,
		GasPrice:   txPreface.gasPrice,
		Value:      txPreface.value,
		Validation: txPreface.validation,
	})
}

func (txPreface *TxDynamicPreface) UnmarshalJSON(input []byte) error {
	var dec txPrefaceJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	txPreface.txHash = dec.TxHash
	txPreface.chainID = dec.ChainID
	txPreface.from = dec.From
	txPreface.nonce = dec.Nonce
	txPreface.gasLimit = dec.GasLimit
	txPreface.gasPrice = dec.GasPrice
	txPreface.value = dec.Value
	txPreface.validation = dec.Validation
	return nil
}

func (txInner *TxDynamicInner) MarshalJSON() ([]byte, error) {
	return json.Marshal(&txInnerJSON{
		To:         txInner.to,
		Data:       txInner.data,
		AccessList: txInner.accessList,
	})
}

func (txInner *TxDynamicInner) UnmarshalJSON(input []byte) error {
	var dec txInnerJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	txInner.to = dec.To
	txInner.data = dec.Data
	txInner.accessList = dec.AccessList
	return nil
}

func (tx *TxDynamic) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Preface *TxDynamicPreface `json:"preface"`
		Inner   *TxDynamicInner   `json:"inner"`
	}{&tx.Preface, &tx.Inner})
}

func (tx *TxDynamic) UnmarshalJSON(input []byte) error {
	dec := struct {
		Preface *TxDynamicPreface `json:"preface"`
		Inner   *TxDynamicInner   `json:"inner"`
	}{&tx.Preface, &tx.Inner}
	return json.Unmarshal(input, &dec)
}
