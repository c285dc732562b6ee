//go:build !memory_limit

package vm

// Builds without the memory_limit tag carry no memory bound; execution
// memory is limited by gas alone.
type memoryLimitEnv struct{}

func (*memoryLimitEnv) applyDefault() {}
