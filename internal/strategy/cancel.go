package strategy

import "sync/atomic"

// CancelToken is an atomic cancellation flag. The core loop polls it at the
// start of each candidate, and every strategy also polls it inside its
// position scan so that a long search stops early; geometry primitives
// never poll it. A context.Context is accepted only at
// the internal/packer facade, which starts a goroutine to flip this token
// when ctx is done or a timeout elapses; the strategies themselves know
// nothing about contexts, channels, or goroutines.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a token that has not fired.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel fires the token. Safe to call more than once or concurrently.
func (t *CancelToken) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (t *CancelToken) Cancelled() bool {
	return t.cancelled.Load()
}
