//go:build linux
// +build linux

// File: app/app_linux.go
// Unified lifecycle controller for the blinkloop demo.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the App struct, which aggregates the event core and
// the peripheral collaborators behind a single facade: the readiness
// registry, the blink and button-poll timer sources, the GPIO pins, the
// OLED panel, and the serial status mirror. Setup runs in dependency
// order; teardown releases everything in reverse, best-effort.

package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/blinkloop/api"
	"github.com/momentics/blinkloop/blinker"
	"github.com/momentics/blinkloop/control"
	"github.com/momentics/blinkloop/display"
	"github.com/momentics/blinkloop/gpio"
	"github.com/momentics/blinkloop/loop"
	"github.com/momentics/blinkloop/reactor"
	"github.com/momentics/blinkloop/status"
	"github.com/momentics/blinkloop/timer"
)

// MetricPressEdges counts observed button press edges.
const MetricPressEdges = "button.press_edges"

// App is the lifecycle controller: it owns setup order, the run loop,
// and the teardown of every handle the demo opens.
type App struct {
	cfg     *control.Config
	log     zerolog.Logger
	metrics *control.MetricsRegistry
	token   *loop.Token

	registry   api.Registry
	waker      *reactor.Waker
	dispatcher *loop.Dispatcher

	led      *gpio.Output
	button   *gpio.Input
	blinkSrc *timer.Source
	pollSrc  *timer.Source

	panel  *display.Panel
	mirror *status.Mirror

	closers closerStack
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*App)(nil)

// New builds the full component graph: registry, pins, timer sources,
// handlers, and the optional display and serial collaborators. Any
// failure aborts startup before the run loop and tears down whatever was
// already built.
func New(cfg *control.Config, logger zerolog.Logger) (*App, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, api.NewResourceError("config", err)
	}
	a := &App{
		cfg:     cfg,
		log:     logger.With().Str("component", "app").Logger(),
		metrics: control.NewMetricsRegistry(),
		token:   loop.NewToken(),
	}
	if err := a.init(logger); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(logger zerolog.Logger) error {
	reg, err := reactor.New()
	if err != nil {
		return err
	}
	a.registry = reg
	a.closers.push(func() { a.closeLogged("registry", reg.Close) })

	waker, err := reactor.NewWaker()
	if err != nil {
		return err
	}
	a.waker = waker
	a.closers.push(func() { a.closeLogged("waker", waker.Close) })

	a.log.Info().Str("chip", a.cfg.Chip).Int("line", a.cfg.ButtonPin).Msg("opening button as input")
	button, err := gpio.OpenInput(a.cfg.Chip, a.cfg.ButtonPin)
	if err != nil {
		return err
	}
	a.button = button
	a.closers.push(func() { a.closeLogged("button", button.Close) })

	a.log.Info().Str("chip", a.cfg.Chip).Int("line", a.cfg.LEDPin).Msg("opening LED as output")
	led, err := gpio.OpenOutput(a.cfg.Chip, a.cfg.LEDPin, gpio.High)
	if err != nil {
		return err
	}
	a.led = led
	a.closers.push(func() {
		// Leave the LED dark.
		if err := led.Write(gpio.High); err != nil {
			a.log.Warn().Err(err).Msg("could not turn LED off on shutdown")
		}
		a.closeLogged("led", led.Close)
	})

	intervals := a.cfg.BlinkIntervals()
	blinkSrc, err := timer.New(intervals[a.cfg.InitialIndex], timer.Periodic)
	if err != nil {
		return err
	}
	a.blinkSrc = blinkSrc
	a.closers.push(func() { a.closeLogged("blink timer", blinkSrc.Close) })

	pollSrc, err := timer.New(a.cfg.PollInterval(), timer.Periodic)
	if err != nil {
		return err
	}
	a.pollSrc = pollSrc
	a.closers.push(func() { a.closeLogged("button poll timer", pollSrc.Close) })

	sinks := []blinker.StatusSink{metricsSink{a.metrics}}

	if a.cfg.DisplayEnabled {
		bus, err := display.OpenI2C(a.cfg.I2CDevice)
		if err != nil {
			return err
		}
		a.closers.push(func() { a.closeLogged("i2c bus", bus.Close) })
		panel := display.New(bus, a.cfg.I2CAddress, logger)
		if err := panel.Init(); err != nil {
			// The display is fire-and-forget; a failed self-check is
			// reported but never aborts startup.
			a.log.Warn().Err(err).Msg("display self-check failed")
		}
		a.panel = panel
		sinks = append(sinks, display.NewStatusView(panel))
	}

	if a.cfg.SerialEnabled {
		mirror, err := status.OpenMirror(a.cfg.SerialDevice, a.cfg.SerialBaud, logger)
		if err != nil {
			return err
		}
		a.mirror = mirror
		a.closers.push(func() { a.closeLogged("serial mirror", mirror.Close) })
		sinks = append(sinks, mirror)
	}

	ledHandler := blinker.NewLEDHandler(led, logger)
	if err := loop.Bind(reg, blinkSrc, ledHandler); err != nil {
		return err
	}
	buttonHandler := blinker.NewButtonHandler(button, blinkSrc, intervals, a.cfg.InitialIndex, logger, sinks...)
	if err := loop.Bind(reg, pollSrc, buttonHandler); err != nil {
		return err
	}
	// The waker carries no policy; it only forces a loop iteration so the
	// cancellation token gets re-checked.
	if err := loop.Bind(reg, waker, api.EventHandlerFunc(func() error { return nil })); err != nil {
		return err
	}

	a.dispatcher = loop.NewDispatcher(reg, a.token, a.metrics, logger)
	if a.panel != nil {
		a.dispatcher.AfterCycle(a.panel.Drain)
	}
	return nil
}

// Run installs the termination signal handler and drives the dispatch
// loop until cancellation. The signal path performs the token's atomic
// write and a wakeup of the blocked wait, nothing else.
func (a *App) Run() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCh:
			a.token.Cancel()
			a.waker.Wake()
		case <-done:
		}
	}()

	a.dispatcher.Run()
}

// Close tears down all handles in reverse dependency order. Errors are
// logged and ignored; teardown always runs to completion and is safe to
// call more than once.
func (a *App) Close() {
	a.log.Info().Msg("closing file descriptors")
	a.closers.closeAll()
}

// Shutdown implements api.GracefulShutdown by delegating to Close.
func (a *App) Shutdown() error {
	a.Close()
	return nil
}

// Token exposes the cancellation token shared with the signal boundary.
func (a *App) Token() *loop.Token { return a.token }

// Metrics exposes the loop's metrics registry.
func (a *App) Metrics() *control.MetricsRegistry { return a.metrics }

func (a *App) closeLogged(name string, fn func() error) {
	if err := fn(); err != nil {
		a.log.Warn().Err(err).Str("resource", name).Msg("close failed")
	}
}

// metricsSink counts press edges without touching any other state.
type metricsSink struct {
	m *control.MetricsRegistry
}

func (s metricsSink) RateChanged(int, time.Duration) { s.m.Inc(MetricPressEdges) }
