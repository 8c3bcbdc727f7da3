// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "time"

// RateChange records one status notification.
type RateChange struct {
	Index    int
	Interval time.Duration
}

// StatusSink records rate-change notifications.
type StatusSink struct {
	Events []RateChange
}

// RateChanged appends the notification.
func (s *StatusSink) RateChanged(index int, interval time.Duration) {
	s.Events = append(s.Events, RateChange{Index: index, Interval: interval})
}
