// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"errors"

	"github.com/momentics/blinkloop/api"
)

// ErrScriptExhausted is returned by Wait once the scripted steps run out,
// so loop tests terminate deterministically.
var ErrScriptExhausted = errors.New("fake registry: script exhausted")

// Step describes one Wait outcome.
type Step struct {
	Fd          uintptr // dispatch the handler registered for this descriptor
	Interrupted bool    // simulate an interrupted wait: (nil, nil)
	Err         error   // simulate a wait failure
}

// Registry is a scripted api.Registry for dispatcher tests.
type Registry struct {
	handlers map[uintptr]api.EventHandler
	script   []Step
	pos      int
	Closed   int // number of Close calls
}

var _ api.Registry = (*Registry)(nil)

// NewRegistry builds a registry that replays script in order.
func NewRegistry(script ...Step) *Registry {
	return &Registry{
		handlers: make(map[uintptr]api.EventHandler),
		script:   script,
	}
}

// Register rejects duplicate descriptors like the real registry.
func (r *Registry) Register(src api.Pollable, h api.EventHandler) error {
	fd := src.Fd()
	if _, dup := r.handlers[fd]; dup {
		return api.NewResourceError("register", api.ErrAlreadyRegistered)
	}
	r.handlers[fd] = h
	return nil
}

// Handler returns the handler registered for fd, if any.
func (r *Registry) Handler(fd uintptr) api.EventHandler { return r.handlers[fd] }

// Wait replays the next scripted step.
func (r *Registry) Wait() (api.EventHandler, error) {
	if r.pos >= len(r.script) {
		return nil, api.NewIOError("wait", ErrScriptExhausted)
	}
	step := r.script[r.pos]
	r.pos++
	switch {
	case step.Err != nil:
		return nil, api.NewIOError("wait", step.Err)
	case step.Interrupted:
		return nil, nil
	default:
		return r.handlers[step.Fd], nil
	}
}

// Close counts invocations.
func (r *Registry) Close() error {
	r.Closed++
	return nil
}
