// File: blinker/button.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Button poll handler: debounce-by-edge rate selection over a fixed
// ordered interval table.

package blinker

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/blinkloop/api"
	"github.com/momentics/blinkloop/gpio"
)

// InputPin is the read surface the button handler needs.
type InputPin interface {
	Read() (gpio.Level, error)
}

// Rearmer reprograms the blink source's interval.
type Rearmer interface {
	Rearm(time.Duration) error
}

// StatusSink receives fire-and-forget rate-change notifications. Sinks
// run on the dispatch thread and must not block; their failures never
// reach the loop.
type StatusSink interface {
	RateChanged(index int, interval time.Duration)
}

// ButtonHandler samples the rate-select button on each poll timer
// expiration. It reacts only to level transitions, and only a falling
// edge (press; the button is active low) advances the interval index
// circularly and rearms the blink source. Releases and unchanged polls
// are ignored.
type ButtonHandler struct {
	pin       InputPin
	blink     Rearmer
	intervals []time.Duration
	index     int
	last      gpio.Level
	sinks     []StatusSink
	log       zerolog.Logger
}

// NewButtonHandler starts at initialIndex with the button observed
// released.
func NewButtonHandler(pin InputPin, blink Rearmer, intervals []time.Duration, initialIndex int, log zerolog.Logger, sinks ...StatusSink) *ButtonHandler {
	return &ButtonHandler{
		pin:       pin,
		blink:     blink,
		intervals: intervals,
		index:     initialIndex,
		last:      gpio.High,
		sinks:     sinks,
		log:       log.With().Str("component", "button").Logger(),
	}
}

var _ api.EventHandler = (*ButtonHandler)(nil)

// OnReady polls the button once.
func (h *ButtonHandler) OnReady() error {
	level, err := h.pin.Read()
	if err != nil {
		h.log.Error().Err(err).Msg("could not read button")
		return err
	}
	if level == h.last {
		return nil
	}
	if level == gpio.Low {
		h.index = (h.index + 1) % len(h.intervals)
		next := h.intervals[h.index]
		if err := h.blink.Rearm(next); err != nil {
			h.log.Error().Err(err).Msg("could not rearm blink timer")
			return err
		}
		h.log.Debug().Int("index", h.index).Dur("interval", next).Msg("blink rate changed")
		for _, s := range h.sinks {
			s.RateChanged(h.index, next)
		}
	}
	h.last = level
	return nil
}

// Index returns the active position in the interval table.
func (h *ButtonHandler) Index() int { return h.index }

// Interval returns the active blink interval.
func (h *ButtonHandler) Interval() time.Duration { return h.intervals[h.index] }
