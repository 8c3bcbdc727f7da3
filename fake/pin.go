// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/blinkloop/gpio"

// Pin is an in-memory GPIO line usable as both input and output.
type Pin struct {
	level gpio.Level

	Writes   []gpio.Level // every level written
	ReadErr  error
	WriteErr error
	Closed   int
}

// NewPin starts at the given level.
func NewPin(initial gpio.Level) *Pin {
	return &Pin{level: initial}
}

// Set drives the level from the test side.
func (p *Pin) Set(l gpio.Level) { p.level = l }

// Read samples the current level.
func (p *Pin) Read() (gpio.Level, error) {
	if p.ReadErr != nil {
		return gpio.Low, p.ReadErr
	}
	return p.level, nil
}

// Write records and applies a level.
func (p *Pin) Write(l gpio.Level) error {
	if p.WriteErr != nil {
		return p.WriteErr
	}
	p.level = l
	p.Writes = append(p.Writes, l)
	return nil
}

// Close counts invocations.
func (p *Pin) Close() error {
	p.Closed++
	return nil
}
