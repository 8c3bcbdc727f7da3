//go:build linux
// +build linux

// File: reactor/registry_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux epoll(7)-based registry implementation and factory.

package reactor

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/blinkloop/api"
)

// Registry is the epoll-backed readiness multiplexer.
type Registry struct {
	epfd     int
	handlers map[int32]api.EventHandler
	closed   bool
}

var _ api.Registry = (*Registry)(nil)

// New allocates the epoll context.
func New() (api.Registry, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, api.NewResourceError("epoll create", err)
	}
	return &Registry{
		epfd:     epfd,
		handlers: make(map[int32]api.EventHandler),
	}, nil
}

// Register adds src to the epoll watch list with read interest.
func (r *Registry) Register(src api.Pollable, h api.EventHandler) error {
	if r.closed {
		return api.NewResourceError("register", api.ErrClosed)
	}
	fd := int32(src.Fd())
	if _, dup := r.handlers[fd]; dup {
		return api.NewResourceError("register", api.ErrAlreadyRegistered)
	}
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: fd}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, int(fd), &ev); err != nil {
		return api.NewResourceError("epoll ctl add", err)
	}
	r.handlers[fd] = h
	return nil
}

// Wait blocks until a registered source is ready and returns its handler.
//
// The event buffer holds a single entry, so the kernel reports exactly one
// ready descriptor per call; with several sources simultaneously ready the
// rest surface on subsequent calls. EINTR yields (nil, nil): interruption
// by a caught signal is a retry condition, not a failure.
func (r *Registry) Wait() (api.EventHandler, error) {
	var events [1]unix.EpollEvent
	n, err := unix.EpollWait(r.epfd, events[:], -1)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, api.NewIOError("epoll wait", err)
	}
	if n == 0 {
		return nil, nil
	}
	h, ok := r.handlers[events[0].Fd]
	if !ok {
		// Stale descriptor; nothing to dispatch.
		return nil, nil
	}
	return h, nil
}

// Len returns the number of registered sources.
func (r *Registry) Len() int { return len(r.handlers) }

// Close releases the epoll descriptor.
func (r *Registry) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := unix.Close(r.epfd); err != nil {
		return api.NewIOError("epoll close", err)
	}
	return nil
}
