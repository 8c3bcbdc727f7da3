// File: blinker/led.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package blinker

import (
	"github.com/rs/zerolog"

	"github.com/momentics/blinkloop/api"
	"github.com/momentics/blinkloop/gpio"
)

// OutputPin is the write surface the LED handler needs.
type OutputPin interface {
	Write(gpio.Level) error
}

// LEDHandler toggles the LED on each blink timer expiration.
// The LED is active low: Low is lit, High is dark. A write failure is
// unrecoverable for the demo; the returned error stops the loop.
type LEDHandler struct {
	pin   OutputPin
	level gpio.Level
	log   zerolog.Logger
}

// NewLEDHandler starts with the LED dark.
func NewLEDHandler(pin OutputPin, log zerolog.Logger) *LEDHandler {
	return &LEDHandler{
		pin:   pin,
		level: gpio.High,
		log:   log.With().Str("component", "led").Logger(),
	}
}

var _ api.EventHandler = (*LEDHandler)(nil)

// OnReady flips the logical level and writes it out.
func (h *LEDHandler) OnReady() error {
	h.level = h.level.Toggle()
	if err := h.pin.Write(h.level); err != nil {
		h.log.Error().Err(err).Msg("could not set LED output value")
		return err
	}
	return nil
}

// Level returns the last written logical level.
func (h *LEDHandler) Level() gpio.Level { return h.level }
