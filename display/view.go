// File: display/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package display

import (
	"fmt"
	"time"
)

// StatusView maps rate-change notifications onto the panel: the active
// rate on the top row, the greeting banner on a diagonal, and a slow
// vertical scroll over the banner pages. It implements the button
// handler's StatusSink contract.
type StatusView struct {
	panel *Panel
}

// NewStatusView binds a view to its panel.
func NewStatusView(panel *Panel) *StatusView {
	return &StatusView{panel: panel}
}

// RateChanged redraws the status screen. Everything is queued; the panel
// flushes on the next loop cycle.
func (v *StatusView) RateChanged(index int, interval time.Duration) {
	p := v.panel
	p.Clear()
	p.WriteAt(0, 0, fmt.Sprintf("rate %d: %s", index, interval))
	for i := 1; i <= 4; i++ {
		p.WriteAt(i, i, "Hello World!")
	}
	p.ClearRegion(7, 3, 5)
	p.SetVerticalScroll(ScrollVerticalLeft, 3, 6, ScrollPer25Frames, 1)
	p.ActivateScroll()
}
