//go:build linux
// +build linux

// File: gpio/cdev_linux.go
// Author: momentics <momentics@gmail.com>
//
// GPIO line access over the gpio-cdev uAPI.

package gpio

import (
	"github.com/warthog618/go-gpiocdev"

	"github.com/momentics/blinkloop/api"
)

// Input is a GPIO line requested as input with pull-up bias (the board's
// buttons float when released).
type Input struct {
	line *gpiocdev.Line
}

// OpenInput requests line offset on chip as input.
func OpenInput(chip string, offset int) (*Input, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return nil, api.NewResourceError("gpio open input", err)
	}
	return &Input{line: line}, nil
}

// Read samples the current level.
func (p *Input) Read() (Level, error) {
	v, err := p.line.Value()
	if err != nil {
		return Low, api.NewIOError("gpio read", err)
	}
	return levelOf(v), nil
}

// Close releases the line request.
func (p *Input) Close() error { return p.line.Close() }

// Output is a GPIO line requested as push-pull output.
type Output struct {
	line *gpiocdev.Line
}

// OpenOutput requests line offset on chip as output driven to initial.
func OpenOutput(chip string, offset int, initial Level) (*Output, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(initial.value()))
	if err != nil {
		return nil, api.NewResourceError("gpio open output", err)
	}
	return &Output{line: line}, nil
}

// Write drives the line to l.
func (p *Output) Write(l Level) error {
	if err := p.line.SetValue(l.value()); err != nil {
		return api.NewIOError("gpio write", err)
	}
	return nil
}

// Close releases the line request.
func (p *Output) Close() error { return p.line.Close() }
