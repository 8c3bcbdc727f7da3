// File: app/closers.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package app

// closerStack runs teardown functions in reverse registration order,
// exactly once. Teardown is best-effort and must run to completion, so
// the functions themselves log and swallow failures.
type closerStack struct {
	fns  []func()
	done bool
}

func (s *closerStack) push(fn func()) { s.fns = append(s.fns, fn) }

func (s *closerStack) closeAll() {
	if s.done {
		return
	}
	s.done = true
	for i := len(s.fns) - 1; i >= 0; i-- {
		s.fns[i]()
	}
}
