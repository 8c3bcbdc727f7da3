// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	res := NewResourceError("register", ErrAlreadyRegistered)
	if !IsResourceError(res) {
		t.Error("expected resource classification")
	}
	if IsIOError(res) {
		t.Error("resource error misclassified as IO")
	}

	io := NewIOError("gpio write", errors.New("EIO"))
	if !IsIOError(io) {
		t.Error("expected IO classification")
	}
	if IsResourceError(io) {
		t.Error("IO error misclassified as resource")
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := NewResourceError("register", ErrAlreadyRegistered)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Error("sentinel not reachable through wrap")
	}

	// Classification survives further wrapping.
	wrapped := fmt.Errorf("setup: %w", err)
	if !IsResourceError(wrapped) {
		t.Error("classification lost through fmt wrapping")
	}
}

func TestErrorString(t *testing.T) {
	err := NewIOError("timerfd read", errors.New("bad file descriptor"))
	want := "timerfd read: bad file descriptor"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
