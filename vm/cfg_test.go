package vm

import (
	"bytes"
	"evmcore/params"
	"evmcore/utils"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCfgEnv(t *testing.T) {
	cfg := DefaultCfgEnv()

	require.EqualValues(t, params.MainnetChainID, cfg.GetChainID())
	require.Equal(t, AnalyseBytecode, cfg.PerfAnalyseCreatedBytecodes)
	require.Nil(t, cfg.LimitContractCodeSize)
	require.Equal(t, params.MaxCodeSize, cfg.GetMaxCodeSize())

	require.False(t, cfg.IsEIP3607Disabled())
	require.False(t, cfg.IsBalanceCheckDisabled())
	require.False(t, cfg.IsGasRefundDisabled())
	require.False(t, cfg.IsBlockGasLimitDisabled())
	require.False(t, cfg.IsNonceCheckDisabled())
	require.False(t, cfg.IsBaseFeeCheckDisabled())
}

// Toggles that are not compiled in must report their rule as enforced no
// matter what the rest of the policy looks like.
func TestAbsentTogglesStayEnforced(t *testing.T) {
	limit := uint64(100000)
	cfg := DefaultCfgEnv().WithChainID(1337)
	cfg.LimitContractCodeSize = &limit
	cfg.DisableNonceCheck = true
	cfg.PerfAnalyseCreatedBytecodes = RawBytecode

	queries := map[string]func() bool{
		"eip3607":       cfg.IsEIP3607Disabled,
		"balance":       cfg.IsBalanceCheckDisabled,
		"gasRefund":     cfg.IsGasRefundDisabled,
		"blockGasLimit": cfg.IsBlockGasLimitDisabled,
		"baseFee":       cfg.IsBaseFeeCheckDisabled,
	}
	for name, query := range queries {
		require.False(t, query(), "query %s must stay enforced in a default build", name)
	}
	// The nonce toggle is unconditional and must follow the field
	require.True(t, cfg.IsNonceCheckDisabled())
}

func TestMaxCodeSizeOverride(t *testing.T) {
	cfg := DefaultCfgEnv()
	require.Equal(t, params.MaxCodeSize, cfg.GetMaxCodeSize())

	limit := uint64(100000)
	cfg.LimitContractCodeSize = &limit
	require.EqualValues(t, 100000, cfg.GetMaxCodeSize())

	// The override is not validated; a zero ceiling is the engine's problem
	zero := uint64(0)
	cfg.LimitContractCodeSize = &zero
	require.EqualValues(t, 0, cfg.GetMaxCodeSize())
}

func TestWithChainID(t *testing.T) {
	cfg := DefaultCfgEnv().WithChainID(42)
	base := DefaultCfgEnv()

	require.EqualValues(t, 42, cfg.GetChainID())

	// Everything but the chain id answers exactly as the default
	require.Equal(t, base.GetMaxCodeSize(), cfg.GetMaxCodeSize())
	require.Equal(t, base.PerfAnalyseCreatedBytecodes, cfg.PerfAnalyseCreatedBytecodes)
	require.Equal(t, base.IsEIP3607Disabled(), cfg.IsEIP3607Disabled())
	require.Equal(t, base.IsBalanceCheckDisabled(), cfg.IsBalanceCheckDisabled())
	require.Equal(t, base.IsGasRefundDisabled(), cfg.IsGasRefundDisabled())
	require.Equal(t, base.IsBlockGasLimitDisabled(), cfg.IsBlockGasLimitDisabled())
	require.Equal(t, base.IsNonceCheckDisabled(), cfg.IsNonceCheckDisabled())
	require.Equal(t, base.IsBaseFeeCheckDisabled(), cfg.IsBaseFeeCheckDisabled())
}

func TestEqual(t *testing.T) {
	require.True(t, DefaultCfgEnv().Equal(DefaultCfgEnv()))

	mutations := map[string]func(cfg *CfgEnv){
		"chain id":  func(cfg *CfgEnv) { cfg.WithChainID(42) },
		"analysis":  func(cfg *CfgEnv) { cfg.PerfAnalyseCreatedBytecodes = RawBytecode },
		"nonce":     func(cfg *CfgEnv) { cfg.DisableNonceCheck = true },
		"code size": func(cfg *CfgEnv) { limit := uint64(100000); cfg.LimitContractCodeSize = &limit },
	}
	for name, mutate := range mutations {
		cfg := DefaultCfgEnv()
		mutate(cfg)
		require.False(t, cfg.Equal(DefaultCfgEnv()), "mutation %q must break equality", name)
		require.False(t, DefaultCfgEnv().Equal(cfg), "mutation %q must break equality", name)
	}

	// Equality is by value, not by pointer identity of the override
	a, b := DefaultCfgEnv(), DefaultCfgEnv()
	limitA, limitB := uint64(100000), uint64(100000)
	a.LimitContractCodeSize = &limitA
	b.LimitContractCodeSize = &limitB
	require.True(t, a.Equal(b))

	var nilCfg *CfgEnv
	require.False(t, DefaultCfgEnv().Equal(nilCfg))
	require.True(t, nilCfg.Equal(nil))
}

func TestHashTracksEquality(t *testing.T) {
	require.Equal(t, DefaultCfgEnv().Hash(), DefaultCfgEnv().Hash())

	changed := DefaultCfgEnv().WithChainID(42)
	require.NotEqual(t, DefaultCfgEnv().Hash(), changed.Hash())
}

func TestCopyIsIndependent(t *testing.T) {
	limit := uint64(100000)
	cfg := DefaultCfgEnv()
	cfg.LimitContractCodeSize = &limit

	cpy := cfg.Copy()
	require.True(t, cfg.Equal(cpy))

	*cpy.LimitContractCodeSize = 200000
	cpy.WithChainID(7)
	require.EqualValues(t, 100000, cfg.GetMaxCodeSize())
	require.EqualValues(t, params.MainnetChainID, cfg.GetChainID())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	limit := uint64(100000)
	cfg := DefaultCfgEnv().WithChainID(42)
	cfg.LimitContractCodeSize = &limit
	cfg.DisableNonceCheck = true
	cfg.PerfAnalyseCreatedBytecodes = RawBytecode

	var buf bytes.Buffer
	serializer := utils.JSONSerializer{}
	require.NoError(t, cfg.Encode(serializer, &buf))

	// The trusted setup selection never travels
	require.NotContains(t, strings.ToLower(buf.String()), "kzg")

	decoded, err := DecodeCfgEnv(serializer, &buf)
	require.NoError(t, err)
	require.True(t, cfg.Equal(decoded))
}

func TestDecodeMissingFieldsKeepDefaults(t *testing.T) {
	decoded, err := DecodeCfgEnv(utils.JSONSerializer{}, strings.NewReader(`{"chainId":7}`))
	require.NoError(t, err)

	require.EqualValues(t, 7, decoded.GetChainID())
	require.Equal(t, AnalyseBytecode, decoded.PerfAnalyseCreatedBytecodes)
	require.Equal(t, params.MaxCodeSize, decoded.GetMaxCodeSize())
	require.False(t, decoded.IsNonceCheckDisabled())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeCfgEnv(utils.JSONSerializer{}, strings.NewReader(`{"chainId":`))
	require.Error(t, err)
}

func TestAnalysisKindClosedSet(t *testing.T) {
	for kind, name := range map[AnalysisKind]string{
		AnalyseBytecode: "Analyse",
		RawBytecode:     "Raw",
	} {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		require.Equal(t, name, string(text))

		var decoded AnalysisKind
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, kind, decoded)
	}

	var kind AnalysisKind
	require.Error(t, kind.UnmarshalText([]byte("Jit")))

	_, err := AnalysisKind(7).MarshalText()
	require.Error(t, err)
}
