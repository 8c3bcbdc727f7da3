// File: loop/bind.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package loop

import (
	"github.com/momentics/blinkloop/api"
)

// ExpirationSource is a pollable whose level-triggered readiness is
// cleared by Consume.
type ExpirationSource interface {
	api.Pollable
	Consume() (uint64, error)
}

// Bind registers src with reg behind a wrapper that always consumes the
// pending expiration before running policy. Callers cannot observe a
// readiness notification without the consume step, which keeps the
// level-triggered source from reporting ready on every subsequent wait.
func Bind(reg api.Registry, src ExpirationSource, policy api.EventHandler) error {
	return reg.Register(src, &timerEvent{src: src, policy: policy})
}

// timerEvent couples one expiration source with its policy handler.
type timerEvent struct {
	src    ExpirationSource
	policy api.EventHandler
}

func (e *timerEvent) OnReady() error {
	n, err := e.src.Consume()
	if err != nil {
		return err
	}
	if n == 0 {
		// Already consumed; no expiration to dispatch.
		return nil
	}
	return e.policy.OnReady()
}
