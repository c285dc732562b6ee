//go:build !optional_eip3607

package vm

// Builds without the optional_eip3607 tag always reject transactions from
// senders with deployed code.
type eip3607Env struct{}

func (*eip3607Env) eip3607Disabled() bool { return false }
