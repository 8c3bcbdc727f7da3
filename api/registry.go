// File: api/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Readiness-multiplexing registry contract. The set of registered sources
// is fixed for the program lifetime; there is no removal before teardown.

package api

// Registry multiplexes readiness over a fixed set of (source, handler)
// pairs and blocks until one becomes ready.
type Registry interface {
	// Register adds one source with read interest. Registering a
	// descriptor twice fails with a resource error and leaves the
	// previous registration intact.
	Register(src Pollable, h EventHandler) error

	// Wait blocks indefinitely until a registered source is ready and
	// returns its handler. A wait interrupted by a non-termination
	// signal returns (nil, nil); the caller retries rather than
	// treating it as failure. Any other failure returns an error.
	//
	// One handler is returned per call even when several sources are
	// simultaneously ready; ordering across distinct ready sources is
	// unspecified and handlers must not depend on it.
	Wait() (EventHandler, error)

	// Close releases the multiplexing context.
	Close() error
}
