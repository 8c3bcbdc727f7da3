//go:build linux
// +build linux

// File: reactor/waker_linux.go
// Author: momentics <momentics@gmail.com>
//
// eventfd(2) wakeup source. The registry's wait blocks a runtime thread,
// and a signal delivered to the process does not interrupt it the way it
// would a single-threaded epoll_wait; the termination path writes the
// waker after setting the cancellation flag so the blocked wait observes
// readiness and the loop re-checks the flag.

package reactor

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"github.com/momentics/blinkloop/api"
)

// Waker is a pollable the termination boundary can make ready at will.
type Waker struct {
	fd int
}

// NewWaker allocates a nonblocking eventfd.
func NewWaker() (*Waker, error) {
	fd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		return nil, api.NewResourceError("eventfd create", err)
	}
	return &Waker{fd: fd}, nil
}

// Fd returns the eventfd descriptor.
func (w *Waker) Fd() uintptr { return uintptr(w.fd) }

// Wake makes the descriptor readable. Safe to call from any goroutine;
// errors are ignored (a wake on a closing waker has nothing to do).
func (w *Waker) Wake() {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	unix.Write(w.fd, buf[:])
}

// Consume clears the pending wake count; zero when nothing is pending.
func (w *Waker) Consume() (uint64, error) {
	var buf [8]byte
	n, err := unix.Read(w.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, nil
		}
		return 0, api.NewIOError("eventfd read", err)
	}
	if n != len(buf) {
		return 0, api.NewIOError("eventfd read", unix.EIO)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

// Close releases the descriptor.
func (w *Waker) Close() error {
	if err := unix.Close(w.fd); err != nil {
		return api.NewIOError("eventfd close", err)
	}
	return nil
}
