// File: loop/token.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package loop

import "sync/atomic"

// Token is the cooperative cancellation flag shared by the dispatch loop
// and the process signal boundary. It transitions false→true at most once
// and is never reset.
//
// Cancel performs a single atomic store and nothing else, so the signal
// path may call it from any goroutine without touching other state.
type Token struct {
	cancelled atomic.Bool
}

// NewToken returns an uncancelled token.
func NewToken() *Token { return &Token{} }

// Cancel requests termination. Idempotent.
func (t *Token) Cancel() { t.cancelled.Store(true) }

// Cancelled reports whether termination was requested.
func (t *Token) Cancelled() bool { return t.cancelled.Load() }
