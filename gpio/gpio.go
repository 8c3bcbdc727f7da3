// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package gpio wraps the Linux GPIO character device behind the small
// pin surface the blink demo needs: open input, open output, read, write,
// close. Both the LED and the button on the target board are active low.
package gpio

// Level is a digital pin level.
type Level int

const (
	Low Level = iota
	High
)

// Toggle returns the opposite level.
func (l Level) Toggle() Level {
	if l == Low {
		return High
	}
	return Low
}

func (l Level) String() string {
	if l == Low {
		return "low"
	}
	return "high"
}

func (l Level) value() int {
	if l == Low {
		return 0
	}
	return 1
}

func levelOf(v int) Level {
	if v == 0 {
		return Low
	}
	return High
}
