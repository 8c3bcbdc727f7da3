// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for the blinkloop core.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrAlreadyRegistered = errors.New("source already registered")
	ErrClosed            = errors.New("resource is closed")
	ErrInvalidInterval   = errors.New("interval must be positive")
)

// ErrorCode classifies an error by the phase it belongs to.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota

	// ErrCodeResource marks allocation or registration failures during
	// setup: descriptor exhaustion, duplicate registration, rejected
	// timer reprogramming.
	ErrCodeResource

	// ErrCodeIO marks read/write failures on an open handle during
	// steady-state operation. The core is fail-stop: an IO error stops
	// the loop, it is never retried.
	ErrCodeIO
)

// Error is a structured error carrying the failing operation and the
// underlying OS error.
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// NewResourceError wraps err as a setup-phase resource failure.
func NewResourceError(op string, err error) *Error {
	return &Error{Code: ErrCodeResource, Op: op, Err: err}
}

// NewIOError wraps err as a steady-state I/O failure.
func NewIOError(op string, err error) *Error {
	return &Error{Code: ErrCodeIO, Op: op, Err: err}
}

// IsResourceError reports whether err is classified as a resource failure.
func IsResourceError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeResource
}

// IsIOError reports whether err is classified as an I/O failure.
func IsIOError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeIO
}
