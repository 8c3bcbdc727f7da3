// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package timer implements time-based event sources over Linux timerfd.
// A Source exposes a pollable descriptor that reports readable when its
// interval elapses; the notification is level-triggered and is cleared by
// Consume.
package timer

// Kind selects the firing mode of a Source.
type Kind int

const (
	// Periodic fires every interval until closed.
	Periodic Kind = iota
	// OneShot fires once after the interval and then disarms.
	OneShot
)

func (k Kind) String() string {
	switch k {
	case Periodic:
		return "periodic"
	case OneShot:
		return "one-shot"
	default:
		return "unknown"
	}
}
