package gadget

import (
	"errors"
	"evmcore/common"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto" // substitude to our crypto
)

type Validation interface {
	GetFrom(input common.Hash) (common.Address, error)
	Sign(input common.Hash, prv []byte)
}

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidPubKey    = errors.New("invalid public key")
)

type SignatureEcdsa struct {
	R *big.Int `json:"r"`
	S *big.Int `json:"s"`
	V byte     `json:"v"`
}

func (sign *SignatureEcdsa) GetFrom(input common.Hash) (common.Address, error) {
	// A nil receiver is an unsigned transaction, e.g. one decoded without
	// its validation field
	if sign == nil || sign.R == nil || sign.S == nil || sign.V != 0 && sign.V != 1 {
		return common.Address{}, ErrInvalidSignature
	}
	// Decoded values must fit the 32-byte wire slots below
	if sign.R.Sign() < 0 || sign.S.Sign() < 0 || sign.R.BitLen() > 256 || sign.S.BitLen() > 256 {
		return common.Address{}, ErrInvalidSignature
	}

	sig := make([]byte, 65)
	sign.R.FillBytes(sig[:32])
	sign.S.FillBytes(sig[32:64])
	sig[64] = sign.V

	pub, err := crypto.Ecrecover(input[:], sig)
	if err != nil {
		return common.Address{}, err
	}
	if len(pub) == 0 || pub[0] != 4 {
		return common.Address{}, ErrInvalidPubKey
	}

	pubHash := common.GenerateHash(pub[1:])
	return common.BytesToAddress(pubHash[12:]), nil
}

func (sign *SignatureEcdsa) Sign(input common.Hash, prv []byte) {
	key, err := crypto.ToECDSA(prv)
	if err != nil {
		panic(err)
	}
	sig, err := crypto.Sign(input[:], key)
	if err != nil {
		panic(err)
	}
	sign.R = new(big.Int).SetBytes(sig[:32])
	sign.S = new(big.Int).SetBytes(sig[32:64])
	sign.V = sig[64]
}

// AddressOfKey derives the account address owning prv under the same scheme
// GetFrom recovers with.
func AddressOfKey(prv []byte) (common.Address, error) {
	key, err := crypto.ToECDSA(prv)
	if err != nil {
		return common.Address{}, err
	}
	pub := crypto.FromECDSAPub(&key.PublicKey)
	pubHash := common.GenerateHash(pub[1:])
	return common.BytesToAddress(pubHash[12:]), nil
}
