// Package vm declares the execution policy of the engine: one immutable
// value per execution context holding every tunable or relaxable rule, and
// the Config query surface through which the engine consults it.
//
// Optional rule relaxations are selected when the engine is built, each by
// its own build tag: memory_limit, optional_balance_check,
// optional_block_gas_limit, optional_eip3607, optional_gas_refund,
// optional_no_base_fee and kzg. A build without a tag carries neither the
// field nor its serialized form, and the matching query reports the rule as
// enforced.
package vm

import (
	"encoding/json"
	"evmcore/common"
	"evmcore/params"
	"evmcore/utils"
	"fmt"
	"io"
)

// AnalysisKind selects what the engine does with bytecode produced by
// CREATE/CREATE2 before storing it.
type AnalysisKind uint8

const (
	// AnalyseBytecode precomputes the jump destination table. This is the
	// default: repeated execution of the same code amortises the analysis
	// cost.
	AnalyseBytecode AnalysisKind = iota
	// RawBytecode stores code as-is and defers analysis until a jump is
	// actually taken. Useful for one-shot executions where the upfront cost
	// is not worth paying.
	RawBytecode
)

func (k AnalysisKind) String() string {
	switch k {
	case AnalyseBytecode:
		return "Analyse"
	case RawBytecode:
		return "Raw"
	default:
		return fmt.Sprintf("AnalysisKind(%d)", uint8(k))
	}
}

func (k AnalysisKind) MarshalText() ([]byte, error) {
	switch k {
	case AnalyseBytecode, RawBytecode:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid analysis kind %d", uint8(k))
	}
}

func (k *AnalysisKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Analyse":
		*k = AnalyseBytecode
	case "Raw":
		*k = RawBytecode
	default:
		return fmt.Errorf("unknown analysis kind %q", text)
	}
	return nil
}

// maxEncodedCfgSize caps the input a policy decoder will consume.
const maxEncodedCfgSize uint64 = 1 << 16

// CfgEnv is the concrete execution policy. It is constructed once per
// execution context, optionally retargeted to another chain through
// WithChainID, and treated as immutable afterwards; concurrent readers may
// share it as long as no mutation happens during the sharing.
//
// Fields backing optional toggles live in embedded sub-records that only
// exist in builds carrying the matching tag. Setting a field is all there is
// to it: the policy performs no cross-field validation, and a pathological
// value (say a zero code-size ceiling) is the engine's problem to surface.
type CfgEnv struct {
	// ChainID of the engine, compared to the transaction's declared chain
	// id (EIP-155).
	ChainID uint64 `json:"chainId"`

	// PerfAnalyseCreatedBytecodes selects whether bytecode created with
	// CREATE/CREATE2 gets a precomputed jump table.
	PerfAnalyseCreatedBytecodes AnalysisKind `json:"perfAnalyseCreatedBytecodes"`

	// LimitContractCodeSize, when set, replaces the EIP-170 contract code
	// size limit. Useful to raise the ceiling in tests.
	LimitContractCodeSize *uint64 `json:"limitContractCodeSize,omitempty"`

	// DisableNonceCheck skips validation of the transaction nonce against
	// the sender account's nonce.
	DisableNonceCheck bool `json:"disableNonceCheck"`

	kzgEnv
	memoryLimitEnv
	balanceCheckEnv
	blockGasLimitEnv
	eip3607Env
	gasRefundEnv
	baseFeeEnv
}

// DefaultCfgEnv returns a policy with every field at its documented default:
// mainnet chain id, analysed bytecode, no code-size override, every
// suppression toggle off, and default values for whichever optional fields
// this build compiles in.
func DefaultCfgEnv() *CfgEnv {
	cfg := &CfgEnv{
		ChainID:                     params.MainnetChainID,
		PerfAnalyseCreatedBytecodes: AnalyseBytecode,
	}
	cfg.memoryLimitEnv.applyDefault()
	return cfg
}

// WithChainID retargets the policy to another chain and returns it for
// chaining, e.g. DefaultCfgEnv().WithChainID(42).
func (c *CfgEnv) WithChainID(chainID uint64) *CfgEnv {
	c.ChainID = chainID
	return c
}

// Copy returns a policy that can be mutated without the original observing
// the change.
func (c *CfgEnv) Copy() *CfgEnv {
	cpy := *c
	if c.LimitContractCodeSize != nil {
		limit := *c.LimitContractCodeSize
		cpy.LimitContractCodeSize = &limit
	}
	return &cpy
}

// Equal reports whether every field present in this build compares equal.
// Callers use it to decide whether two execution contexts can share cached
// analysis results, so it is exact: custom KZG contexts compare by identity.
func (c *CfgEnv) Equal(other *CfgEnv) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.ChainID != other.ChainID ||
		c.PerfAnalyseCreatedBytecodes != other.PerfAnalyseCreatedBytecodes ||
		c.DisableNonceCheck != other.DisableNonceCheck {
		return false
	}
	if (c.LimitContractCodeSize == nil) != (other.LimitContractCodeSize == nil) {
		return false
	}
	if c.LimitContractCodeSize != nil && *c.LimitContractCodeSize != *other.LimitContractCodeSize {
		return false
	}
	return c.kzgEnv == other.kzgEnv &&
		c.memoryLimitEnv == other.memoryLimitEnv &&
		c.balanceCheckEnv == other.balanceCheckEnv &&
		c.blockGasLimitEnv == other.blockGasLimitEnv &&
		c.eip3607Env == other.eip3607Env &&
		c.gasRefundEnv == other.gasRefundEnv &&
		c.baseFeeEnv == other.baseFeeEnv
}

// Hash digests the encoded policy. Two policies with equal present fields
// hash identically, so the digest works as a cache key for shared analysis
// results. KZG settings are not part of the encoding and do not contribute.
func (c *CfgEnv) Hash() common.Hash {
	enc, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return common.GenerateHash(enc)
}

// Encode writes the policy through s as a field-named record. Only fields
// compiled into this build appear; KZG settings never travel.
func (c *CfgEnv) Encode(s utils.Serializer, w io.Writer) error {
	return s.GetEncoder(w).Encode(c)
}

// DecodeCfgEnv reads a policy encoded by Encode. Decoding starts from the
// defaults, so a record produced by a build with a different feature set
// leaves the locally absent or missing fields at their strict defaults
// instead of fabricating values.
func DecodeCfgEnv(s utils.Serializer, r io.Reader) (*CfgEnv, error) {
	cfg := DefaultCfgEnv()
	if err := s.GetDecoder(r, maxEncodedCfgSize).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetChainID implements Config.
func (c *CfgEnv) GetChainID() uint64 {
	return c.ChainID
}

// GetMaxCodeSize implements Config, returning the configured override or the
// EIP-170 constant.
func (c *CfgEnv) GetMaxCodeSize() uint64 {
	if c.LimitContractCodeSize != nil {
		return *c.LimitContractCodeSize
	}
	return params.MaxCodeSize
}

// IsEIP3607Disabled implements Config.
func (c *CfgEnv) IsEIP3607Disabled() bool {
	return c.eip3607Disabled()
}

// IsBalanceCheckDisabled implements Config.
func (c *CfgEnv) IsBalanceCheckDisabled() bool {
	return c.balanceCheckDisabled()
}

// IsGasRefundDisabled implements Config.
func (c *CfgEnv) IsGasRefundDisabled() bool {
	return c.gasRefundDisabled()
}

// IsBlockGasLimitDisabled implements Config.
func (c *CfgEnv) IsBlockGasLimitDisabled() bool {
	return c.blockGasLimitDisabled()
}

// IsNonceCheckDisabled implements Config. The nonce toggle is unconditional,
// present in every build.
func (c *CfgEnv) IsNonceCheckDisabled() bool {
	return c.DisableNonceCheck
}

// IsBaseFeeCheckDisabled implements Config.
func (c *CfgEnv) IsBaseFeeCheckDisabled() bool {
	return c.baseFeeCheckDisabled()
}

var _ Config = (*CfgEnv)(nil)
