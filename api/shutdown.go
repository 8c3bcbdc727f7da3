// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies teardown across components. Shutdown releases
// all internal resources; it is best-effort and safe to call once.
type GracefulShutdown interface {
	Shutdown() error
}
