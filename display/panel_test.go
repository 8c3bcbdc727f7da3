// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package display_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/blinkloop/display"
	"github.com/momentics/blinkloop/fake"
)

func newPanel(t *testing.T) (*fake.Bus, *display.Panel) {
	t.Helper()
	bus := &fake.Bus{}
	p := display.New(bus, display.DefaultAddress, zerolog.Nop())
	require.NoError(t, p.Init())
	return bus, p
}

func TestInitTouchesBus(t *testing.T) {
	bus, _ := newPanel(t)
	require.NotEmpty(t, bus.Transfers, "Init must configure the controller")
	for _, tr := range bus.Transfers {
		assert.Equal(t, display.DefaultAddress, tr.Addr)
	}
}

func TestOperationsAreDeferredUntilDrain(t *testing.T) {
	bus, p := newPanel(t)
	before := len(bus.Transfers)

	p.Clear()
	p.WriteAt(1, 1, "Hello World!")
	p.SetVerticalScroll(display.ScrollVerticalLeft, 3, 6, display.ScrollPer25Frames, 1)
	p.ActivateScroll()

	assert.Equal(t, before, len(bus.Transfers), "queued operations must not touch the bus")
	assert.Equal(t, 4, p.Pending())

	p.Drain()
	assert.Greater(t, len(bus.Transfers), before, "Drain must flush to the bus")
	assert.Equal(t, 0, p.Pending())
}

func TestDrainDropsFailedOperations(t *testing.T) {
	bus, p := newPanel(t)

	p.Clear()
	p.WriteAt(0, 0, "rate 1: 250ms")
	bus.Err = errors.New("bus stuck")
	p.Drain()

	// Failures are logged and dropped; the queue is empty and the loop
	// never sees them.
	assert.Equal(t, 0, p.Pending())
}

func TestStatusViewQueuesFullRedraw(t *testing.T) {
	_, p := newPanel(t)
	v := display.NewStatusView(p)

	v.RateChanged(1, 250*time.Millisecond)
	assert.Greater(t, p.Pending(), 0, "view must queue, not draw synchronously")
	p.Drain()
	assert.Equal(t, 0, p.Pending())
}

func TestDeactivateScroll(t *testing.T) {
	bus, p := newPanel(t)
	before := len(bus.Transfers)

	p.DeactivateScroll()
	p.Drain()
	require.Greater(t, len(bus.Transfers), before)
}
