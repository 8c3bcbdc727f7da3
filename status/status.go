// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package status mirrors the demo's status text to a serial console.
// Like the display, the mirror is fire-and-forget: write failures are
// logged and never reach the event loop.
package status

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/tarm/serial"

	"github.com/momentics/blinkloop/api"
)

// Port is the minimal serial surface the mirror needs.
type Port interface {
	io.WriteCloser
}

// Mirror writes one status line per rate change.
type Mirror struct {
	port Port
	log  zerolog.Logger
}

// OpenMirror opens the serial console at device/baud and wraps it in a
// Mirror.
func OpenMirror(device string, baud int, log zerolog.Logger) (*Mirror, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, api.NewResourceError("serial open", err)
	}
	return NewMirror(port, log), nil
}

// NewMirror wraps an already open port.
func NewMirror(port Port, log zerolog.Logger) *Mirror {
	return &Mirror{
		port: port,
		log:  log.With().Str("component", "serial").Logger(),
	}
}

// RateChanged writes the new rate as one CRLF-terminated line.
func (m *Mirror) RateChanged(index int, interval time.Duration) {
	if _, err := fmt.Fprintf(m.port, "blink rate %d: %s\r\n", index, interval); err != nil {
		m.log.Warn().Err(err).Msg("serial status write failed")
	}
}

// Close releases the port.
func (m *Mirror) Close() error { return m.port.Close() }
