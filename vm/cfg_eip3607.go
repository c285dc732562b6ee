//go:build optional_eip3607

package vm

// eip3607Env carries the sender-code check toggle. Compiled in with the
// optional_eip3607 tag.
type eip3607Env struct {
	// DisableEIP3607 permits transactions from senders with deployed code.
	// EIP-3607 rejects those; in development it can be desirable to simulate
	// calls originating from contracts.
	DisableEIP3607 bool `json:"disableEip3607"`
}

func (e *eip3607Env) eip3607Disabled() bool {
	return e.DisableEIP3607
}
