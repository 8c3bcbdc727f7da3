// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestDefaultTable(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []time.Duration{
		125 * time.Millisecond,
		250 * time.Millisecond,
		500 * time.Millisecond,
	}, cfg.BlinkIntervals())
	assert.Equal(t, time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 0, cfg.InitialIndex)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty chip", func(c *Config) { c.Chip = "" }},
		{"zero poll interval", func(c *Config) { c.PollIntervalMs = 0 }},
		{"empty table", func(c *Config) { c.BlinkIntervalsMs = nil }},
		{"nonpositive entry", func(c *Config) { c.BlinkIntervalsMs = []int{125, 0, 500} }},
		{"index out of range", func(c *Config) { c.InitialIndex = 3 }},
		{"negative index", func(c *Config) { c.InitialIndex = -1 }},
		{"bad baud", func(c *Config) { c.SerialEnabled = true; c.SerialBaud = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinkloop.toml")
	doc := `
led_pin = 8
blink_intervals_ms = [100, 200]
serial_enabled = true
serial_device = "/dev/ttyUSB0"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.LEDPin)
	assert.Equal(t, []int{100, 200}, cfg.BlinkIntervalsMs)
	assert.True(t, cfg.SerialEnabled)
	assert.Equal(t, "/dev/ttyUSB0", cfg.SerialDevice)
	// Untouched keys keep their defaults.
	assert.Equal(t, "gpiochip0", cfg.Chip)
	assert.Equal(t, 1, cfg.PollIntervalMs)
	assert.Equal(t, 115200, cfg.SerialBaud)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinkloop.toml")
	require.NoError(t, os.WriteFile(path, []byte("blink_intervals_ms = []\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
