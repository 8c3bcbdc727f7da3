//go:build linux
// +build linux

// File: timer/source_linux.go
// Author: momentics <momentics@gmail.com>
//
// timerfd(2)-backed time event source.

package timer

import (
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/blinkloop/api"
)

// Source is a timerfd-backed event source. All methods are called from
// the single dispatch thread; the type is not internally synchronized.
type Source struct {
	fd       int
	kind     Kind
	interval time.Duration
	closed   bool
}

// New allocates a timerfd armed to fire after interval, and every
// interval again when kind is Periodic. The descriptor is nonblocking so
// consuming an unexpired source reports zero expirations instead of
// stalling the dispatch thread.
func New(interval time.Duration, kind Kind) (*Source, error) {
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, unix.TFD_NONBLOCK|unix.TFD_CLOEXEC)
	if err != nil {
		return nil, api.NewResourceError("timerfd create", err)
	}
	s := &Source{fd: fd, kind: kind}
	if err := s.Rearm(interval); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return s, nil
}

// Fd returns the source's descriptor.
func (s *Source) Fd() uintptr { return uintptr(s.fd) }

// Kind returns the firing mode.
func (s *Source) Kind() Kind { return s.kind }

// Rearm atomically replaces the interval; the next and subsequent firings
// use the new value.
func (s *Source) Rearm(interval time.Duration) error {
	if interval <= 0 {
		return api.NewResourceError("timerfd settime", api.ErrInvalidInterval)
	}
	if s.closed {
		return api.NewResourceError("timerfd settime", api.ErrClosed)
	}
	spec := unix.ItimerSpec{Value: unix.NsecToTimespec(interval.Nanoseconds())}
	if s.kind == Periodic {
		spec.Interval = unix.NsecToTimespec(interval.Nanoseconds())
	}
	if err := unix.TimerfdSettime(s.fd, 0, &spec, nil); err != nil {
		return api.NewResourceError("timerfd settime", err)
	}
	s.interval = interval
	return nil
}

// Interval returns the currently configured interval.
func (s *Source) Interval() time.Duration { return s.interval }

// Consume reads and clears the pending expiration count, re-arming the
// next wait. A source with no pending expiration reports zero; calling
// Consume twice in a row without an intervening firing is a no-op on the
// second call.
func (s *Source) Consume() (uint64, error) {
	var buf [8]byte
	n, err := unix.Read(s.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, nil
		}
		return 0, api.NewIOError("timerfd read", err)
	}
	if n != len(buf) {
		return 0, api.NewIOError("timerfd read", unix.EIO)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

// Close releases the descriptor.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := unix.Close(s.fd); err != nil {
		return api.NewIOError("timerfd close", err)
	}
	return nil
}
