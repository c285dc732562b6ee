//go:build !kzg

package vm

// Builds without the kzg tag carry no trusted setup; the point evaluation
// precompile is not wired into such engines.
type kzgEnv struct{}
