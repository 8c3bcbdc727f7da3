// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package reactor provides the readiness-multiplexing registry: a
// level-triggered epoll context over a fixed set of event sources, with
// a single ready source reported per wait cycle.
package reactor
