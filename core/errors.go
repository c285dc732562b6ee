package core

import "errors"

var (
	ErrInvalidChainID    = errors.New("invalid chain id for signer")
	ErrNonceTooLow       = errors.New("nonce too low")
	ErrNonceTooHigh      = errors.New("nonce too high")
	ErrNonceMax          = errors.New("nonce has max value")
	ErrSenderNoEOA       = errors.New("sender not an eoa")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrFeeCapTooLow      = errors.New("max fee per gas less than block base fee")
	ErrFeeCapVeryHigh    = errors.New("max fee per gas higher than 2^256-1")
	ErrTipAboveFeeCap    = errors.New("max priority fee per gas higher than max fee per gas")
	ErrGasLimit          = errors.New("exceeds block gas limit")
	ErrGasLimitReached   = errors.New("gas limit reached")
	ErrOversizedData     = errors.New("transaction data too big")
	ErrNegativeValue     = errors.New("negative value")
	ErrInvalidSender     = errors.New("invalid sender")
	ErrIntrinsicGas      = errors.New("intrinsic gas too low")
	ErrUnderpriced       = errors.New("transaction underpriced")

	ErrMaxCodeSizeExceeded     = errors.New("max code size exceeded")
	ErrMaxInitCodeSizeExceeded = errors.New("max initcode size exceeded")
	ErrInvalidCode             = errors.New("invalid code: must not begin with 0xef")
)
