// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "time"

// TimerSource is a manually fired expiration source. Fire marks pending
// expirations; Consume clears them, mirroring the level-triggered
// contract of the real timerfd source.
type TimerSource struct {
	fd       uintptr
	pending  uint64
	interval time.Duration

	Rearms     []time.Duration // every interval passed to Rearm
	RearmErr   error
	ConsumeErr error
	Closed     int
}

// NewTimerSource builds a source with a fixed descriptor and interval.
func NewTimerSource(fd uintptr, interval time.Duration) *TimerSource {
	return &TimerSource{fd: fd, interval: interval}
}

// Fd returns the fixed descriptor.
func (s *TimerSource) Fd() uintptr { return s.fd }

// Fire adds n pending expirations.
func (s *TimerSource) Fire(n uint64) { s.pending += n }

// Consume clears and returns the pending count.
func (s *TimerSource) Consume() (uint64, error) {
	if s.ConsumeErr != nil {
		return 0, s.ConsumeErr
	}
	n := s.pending
	s.pending = 0
	return n, nil
}

// Rearm records the new interval.
func (s *TimerSource) Rearm(d time.Duration) error {
	if s.RearmErr != nil {
		return s.RearmErr
	}
	s.interval = d
	s.Rearms = append(s.Rearms, d)
	return nil
}

// Interval returns the currently configured interval.
func (s *TimerSource) Interval() time.Duration { return s.interval }

// Close counts invocations.
func (s *TimerSource) Close() error {
	s.Closed++
	return nil
}
