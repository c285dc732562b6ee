//go:build kzg

package vm

import (
	"fmt"
	"sync"

	gokzg4844 "github.com/crate-crypto/go-kzg-4844"
)

// EnvKzgSettings selects the trusted setup parameterising the point
// evaluation precompile. The zero value selects the setup embedded in the
// KZG library (the Ethereum mainnet ceremony output), loaded on first use;
// CustomKzgSettings wraps a caller-provided context.
//
// Settings never serialize with the rest of the policy and do not
// contribute to its hash.
type EnvKzgSettings struct {
	custom *gokzg4844.Context
}

// CustomKzgSettings wraps ctx as the trusted setup to use for point
// evaluation. Two custom settings compare equal only if they wrap the same
// context.
func CustomKzgSettings(ctx *gokzg4844.Context) EnvKzgSettings {
	return EnvKzgSettings{custom: ctx}
}

// Settings returns the KZG context to hand to the point evaluation
// precompile.
func (s EnvKzgSettings) Settings() *gokzg4844.Context {
	if s.custom != nil {
		return s.custom
	}
	return defaultKzgContext()
}

var (
	defaultKzgOnce sync.Once
	defaultKzgCtx  *gokzg4844.Context
)

// defaultKzgContext loads the embedded mainnet trusted setup exactly once.
// The setup ships inside the library, so a failure means a corrupt build and
// is not recoverable.
func defaultKzgContext() *gokzg4844.Context {
	defaultKzgOnce.Do(func() {
		ctx, err := gokzg4844.NewContext4096Secure()
		if err != nil {
			panic(fmt.Errorf("could not load mainnet trusted setup: %w", err))
		}
		defaultKzgCtx = ctx
	})
	return defaultKzgCtx
}

// kzgEnv embeds the trusted setup selection into the policy. Compiled in
// with the kzg tag.
type kzgEnv struct {
	// KzgSettings for the point evaluation precompile. The zero value is the
	// mainnet trusted setup.
	KzgSettings EnvKzgSettings `json:"-"`
}
