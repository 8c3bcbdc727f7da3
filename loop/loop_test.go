// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package loop_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/momentics/blinkloop/api"
	"github.com/momentics/blinkloop/control"
	"github.com/momentics/blinkloop/fake"
	"github.com/momentics/blinkloop/loop"
)

func newDispatcher(reg api.Registry, tok *loop.Token, m *control.MetricsRegistry) *loop.Dispatcher {
	return loop.NewDispatcher(reg, tok, m, zerolog.Nop())
}

// countingHandler counts policy invocations.
type countingHandler struct {
	calls int
	err   error
}

func (h *countingHandler) OnReady() error {
	h.calls++
	return h.err
}

func TestCycleDispatchesOneHandler(t *testing.T) {
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	h := &countingHandler{}
	reg := fake.NewRegistry(fake.Step{Fd: 3})
	require.NoError(t, loop.Bind(reg, src, h))

	src.Fire(1)
	tok := loop.NewToken()
	m := control.NewMetricsRegistry()
	d := newDispatcher(reg, tok, m)

	require.Equal(t, loop.OutcomeDispatched, d.Cycle())
	require.Equal(t, 1, h.calls)
	require.False(t, tok.Cancelled())
	require.EqualValues(t, 1, m.Get(loop.MetricDispatches))
}

func TestBindConsumesBeforePolicy(t *testing.T) {
	// A readiness notification with no pending expiration (already
	// consumed) must not reach the policy handler: no duplicate dispatch
	// per actual expiration.
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	h := &countingHandler{}
	reg := fake.NewRegistry(fake.Step{Fd: 3}, fake.Step{Fd: 3})
	require.NoError(t, loop.Bind(reg, src, h))

	src.Fire(1)
	tok := loop.NewToken()
	d := newDispatcher(reg, tok, control.NewMetricsRegistry())

	require.Equal(t, loop.OutcomeDispatched, d.Cycle())
	require.Equal(t, 1, h.calls)

	// Second wake with nothing pending: consumed, policy skipped.
	require.Equal(t, loop.OutcomeDispatched, d.Cycle())
	require.Equal(t, 1, h.calls)
}

func TestInterruptedWaitIsRetriedNotFatal(t *testing.T) {
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	h := &countingHandler{}
	reg := fake.NewRegistry(
		fake.Step{Interrupted: true},
		fake.Step{Fd: 3},
		fake.Step{Err: errors.New("stop the test")},
	)
	require.NoError(t, loop.Bind(reg, src, h))
	src.Fire(1)

	tok := loop.NewToken()
	m := control.NewMetricsRegistry()
	d := newDispatcher(reg, tok, m)

	require.Equal(t, loop.OutcomeInterrupted, d.Cycle())
	require.False(t, tok.Cancelled(), "interruption must not set the termination flag")
	require.EqualValues(t, 0, m.Get(loop.MetricDispatches), "interruption must not count as a dispatch")

	require.Equal(t, loop.OutcomeDispatched, d.Cycle())
	require.Equal(t, 1, h.calls)
}

func TestWaitFailureStopsLoop(t *testing.T) {
	reg := fake.NewRegistry(fake.Step{Err: errors.New("wait blew up")})
	tok := loop.NewToken()
	d := newDispatcher(reg, tok, control.NewMetricsRegistry())

	require.Equal(t, loop.OutcomeWaitFailed, d.Cycle())
	require.True(t, tok.Cancelled())
}

func TestHandlerFailureStopsWithinOneIteration(t *testing.T) {
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	h := &countingHandler{err: api.NewIOError("gpio write", errors.New("EIO"))}
	reg := fake.NewRegistry(fake.Step{Fd: 3})
	require.NoError(t, loop.Bind(reg, src, h))
	src.Fire(1)

	tok := loop.NewToken()
	d := newDispatcher(reg, tok, control.NewMetricsRegistry())

	require.Equal(t, loop.OutcomeHandlerFailed, d.Cycle())
	require.True(t, tok.Cancelled(), "handler failure must set the termination flag")
}

func TestConsumeFailureStopsLoop(t *testing.T) {
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	src.ConsumeErr = api.NewIOError("timerfd read", errors.New("EBADF"))
	h := &countingHandler{}
	reg := fake.NewRegistry(fake.Step{Fd: 3})
	require.NoError(t, loop.Bind(reg, src, h))

	tok := loop.NewToken()
	d := newDispatcher(reg, tok, control.NewMetricsRegistry())

	require.Equal(t, loop.OutcomeHandlerFailed, d.Cycle())
	require.Equal(t, 0, h.calls, "policy must not run when consume fails")
	require.True(t, tok.Cancelled())
}

func TestRunStopsOnCancelledToken(t *testing.T) {
	// Script: one dispatch, then exhaustion would fail the wait; the
	// handler cancels the token so Run must exit before the second wait.
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	tok := loop.NewToken()
	h := api.EventHandlerFunc(func() error {
		tok.Cancel()
		return nil
	})
	reg := fake.NewRegistry(fake.Step{Fd: 3})
	require.NoError(t, loop.Bind(reg, src, h))
	src.Fire(1)

	m := control.NewMetricsRegistry()
	d := newDispatcher(reg, tok, m)
	d.Run()

	require.EqualValues(t, 1, m.Get(loop.MetricCycles))
	require.EqualValues(t, 1, m.Get(loop.MetricDispatches))
}

func TestRunInvokesAfterCycle(t *testing.T) {
	reg := fake.NewRegistry(fake.Step{Interrupted: true}, fake.Step{Err: errors.New("done")})
	tok := loop.NewToken()
	d := newDispatcher(reg, tok, control.NewMetricsRegistry())

	drains := 0
	d.AfterCycle(func() { drains++ })
	d.Run()

	require.Equal(t, 2, drains, "after-cycle hook must run once per iteration")
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	src := fake.NewTimerSource(3, 125*time.Millisecond)
	h := &countingHandler{}
	reg := fake.NewRegistry()
	require.NoError(t, loop.Bind(reg, src, h))

	other := &countingHandler{}
	err := loop.Bind(reg, src, other)
	require.True(t, api.IsResourceError(err))
	require.ErrorIs(t, err, api.ErrAlreadyRegistered)

	// The previous registration stays intact: readiness still reaches
	// the first handler, never the rejected one.
	src.Fire(1)
	require.NoError(t, reg.Handler(3).OnReady())
	require.Equal(t, 1, h.calls)
	require.Equal(t, 0, other.calls)
}
