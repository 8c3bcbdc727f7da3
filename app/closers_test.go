// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseAllRunsInReverseOrder(t *testing.T) {
	var order []string
	var s closerStack
	s.push(func() { order = append(order, "registry") })
	s.push(func() { order = append(order, "pins") })
	s.push(func() { order = append(order, "timers") })

	s.closeAll()
	assert.Equal(t, []string{"timers", "pins", "registry"}, order)
}

func TestCloseAllRunsExactlyOnce(t *testing.T) {
	calls := 0
	var s closerStack
	s.push(func() { calls++ })

	s.closeAll()
	s.closeAll()
	assert.Equal(t, 1, calls, "teardown must trigger exactly once")
}

func TestCloseAllEmptyIsNoop(t *testing.T) {
	var s closerStack
	s.closeAll()
}
