// File: api/handler.go
// Package api defines the EventHandler interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// EventHandler consumes one readiness notification for its source.
// Handlers run synchronously on the dispatch thread and must not block;
// a returned error is fatal and stops the loop.
type EventHandler interface {
	OnReady() error
}

// EventHandlerFunc adapts a plain function to EventHandler.
type EventHandlerFunc func() error

// OnReady invokes f.
func (f EventHandlerFunc) OnReady() error { return f() }
