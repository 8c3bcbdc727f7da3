//go:build linux
// +build linux

// File: cmd/blinkloop/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Entry point for the blink demo. Errors are reported via logging and
// the process exits 0 either way; only the logs distinguish a clean
// SIGTERM shutdown from a fail-stop.

package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/momentics/blinkloop/app"
	"github.com/momentics/blinkloop/control"
)

func main() {
	cfgPath := flag.String("config", "", "path to TOML configuration")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg := control.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = control.Load(*cfgPath)
		if err != nil {
			logger.Error().Err(err).Msg("invalid configuration")
			return
		}
	}

	logger.Info().Msg("blink application starting")
	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("initialization failed")
		return
	}
	a.Run()
	a.Close()
	logger.Info().
		Interface("metrics", a.Metrics().GetSnapshot()).
		Msg("application exiting")
}
