// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed run configuration with TOML overrides and validation.

package control

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds parameters immutable per run.
// All fields influence setup; nothing is reconfigurable after the event
// sources are registered.
type Config struct {
	Chip      string `toml:"chip"`       // GPIO character device, e.g. "gpiochip0"
	LEDPin    int    `toml:"led_pin"`    // output line offset for the blinking LED (active low)
	ButtonPin int    `toml:"button_pin"` // input line offset for the rate-select button (active low)

	PollIntervalMs   int   `toml:"poll_interval_ms"`   // button sampling period
	BlinkIntervalsMs []int `toml:"blink_intervals_ms"` // ordered blink interval table
	InitialIndex     int   `toml:"initial_index"`      // starting position in the table

	DisplayEnabled bool   `toml:"display_enabled"` // drive the OLED status panel
	I2CDevice      string `toml:"i2c_device"`      // i2c-dev node for the panel
	I2CAddress     uint16 `toml:"i2c_address"`     // panel target address

	SerialEnabled bool   `toml:"serial_enabled"` // mirror status lines to a serial console
	SerialDevice  string `toml:"serial_device"`
	SerialBaud    int    `toml:"serial_baud"`
}

// DefaultConfig returns the demo defaults: 1ms button polling and the
// 125/250/500ms blink table.
func DefaultConfig() *Config {
	return &Config{
		Chip:             "gpiochip0",
		LEDPin:           0,
		ButtonPin:        12,
		PollIntervalMs:   1,
		BlinkIntervalsMs: []int{125, 250, 500},
		InitialIndex:     0,
		DisplayEnabled:   true,
		I2CDevice:        "/dev/i2c-2",
		I2CAddress:       0x3C,
		SerialEnabled:    false,
		SerialDevice:     "/dev/ttyS0",
		SerialBaud:       115200,
	}
}

// Load merges the TOML file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the event core relies on.
func (c *Config) Validate() error {
	if c.Chip == "" {
		return fmt.Errorf("config: chip must be set")
	}
	if c.PollIntervalMs <= 0 {
		return fmt.Errorf("config: poll_interval_ms must be positive, got %d", c.PollIntervalMs)
	}
	if len(c.BlinkIntervalsMs) == 0 {
		return fmt.Errorf("config: blink_intervals_ms must not be empty")
	}
	for i, ms := range c.BlinkIntervalsMs {
		if ms <= 0 {
			return fmt.Errorf("config: blink_intervals_ms[%d] must be positive, got %d", i, ms)
		}
	}
	if c.InitialIndex < 0 || c.InitialIndex >= len(c.BlinkIntervalsMs) {
		return fmt.Errorf("config: initial_index %d out of range [0,%d)", c.InitialIndex, len(c.BlinkIntervalsMs))
	}
	if c.SerialEnabled && c.SerialBaud <= 0 {
		return fmt.Errorf("config: serial_baud must be positive, got %d", c.SerialBaud)
	}
	return nil
}

// PollInterval returns the button sampling period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// BlinkIntervals returns the interval table as durations.
func (c *Config) BlinkIntervals() []time.Duration {
	out := make([]time.Duration, len(c.BlinkIntervalsMs))
	for i, ms := range c.BlinkIntervalsMs {
		out[i] = time.Duration(ms) * time.Millisecond
	}
	return out
}
