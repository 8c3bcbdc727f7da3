//go:build !linux
// +build !linux

// File: reactor/registry_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.

package reactor

import (
	"errors"

	"github.com/momentics/blinkloop/api"
)

// New returns an error for unsupported platforms.
func New() (api.Registry, error) {
	return nil, errors.New("reactor: this platform is not supported")
}
