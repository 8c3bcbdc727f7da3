// File: loop/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The wait/dispatch loop: one blocking wait and at most one handler
// invocation per iteration, until the cancellation token is set or the
// wait itself fails.

package loop

import (
	"github.com/rs/zerolog"

	"github.com/momentics/blinkloop/api"
	"github.com/momentics/blinkloop/control"
)

// Outcome classifies a single wait+dispatch cycle.
type Outcome int

const (
	// OutcomeDispatched means one handler ran successfully.
	OutcomeDispatched Outcome = iota
	// OutcomeInterrupted means the wait was interrupted by a signal and
	// must be retried; it does not count as a dispatch cycle.
	OutcomeInterrupted
	// OutcomeWaitFailed means the wait itself failed.
	OutcomeWaitFailed
	// OutcomeHandlerFailed means a handler signaled fatal failure.
	OutcomeHandlerFailed
)

// Metric keys maintained by the dispatcher.
const (
	MetricCycles      = "loop.cycles"
	MetricDispatches  = "loop.dispatches"
	MetricInterrupted = "loop.interrupted"
	MetricErrors      = "loop.errors"
)

// Dispatcher drives the registry's wait/dispatch cycle.
type Dispatcher struct {
	registry api.Registry
	token    *Token
	metrics  *control.MetricsRegistry
	log      zerolog.Logger

	// afterCycle, when set, runs on the dispatch thread after every
	// completed cycle (used to drain fire-and-forget side work).
	afterCycle func()
}

// NewDispatcher wires the loop to its registry, token and metrics.
func NewDispatcher(reg api.Registry, token *Token, metrics *control.MetricsRegistry, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		token:    token,
		metrics:  metrics,
		log:      log.With().Str("component", "loop").Logger(),
	}
}

// AfterCycle registers fn to run after each cycle. Must be set before Run.
func (d *Dispatcher) AfterCycle(fn func()) { d.afterCycle = fn }

// Run loops until the token is observed cancelled at the top of an
// iteration. A failed wait or a failed handler cancels the token, so the
// loop stops on the following check; STOPPED is terminal.
func (d *Dispatcher) Run() {
	for !d.token.Cancelled() {
		d.Cycle()
		if d.afterCycle != nil {
			d.afterCycle()
		}
	}
}

// Cycle performs exactly one blocking wait and at most one handler
// invocation, and reports what happened.
func (d *Dispatcher) Cycle() Outcome {
	d.metrics.Inc(MetricCycles)

	h, err := d.registry.Wait()
	if err != nil {
		d.metrics.Inc(MetricErrors)
		d.log.Error().Err(err).Msg("wait failed")
		d.token.Cancel()
		return OutcomeWaitFailed
	}
	if h == nil {
		// Interrupted by a caught signal; retry the wait.
		d.metrics.Inc(MetricInterrupted)
		return OutcomeInterrupted
	}
	if err := h.OnReady(); err != nil {
		d.metrics.Inc(MetricErrors)
		d.log.Error().Err(err).Msg("handler failed")
		d.token.Cancel()
		return OutcomeHandlerFailed
	}
	d.metrics.Inc(MetricDispatches)
	return OutcomeDispatched
}
