// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for loop-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds named monotonic counters. It is internally
// synchronized: the dispatch thread writes, reporting paths read.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]uint64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]uint64),
	}
}

// Inc increments a counter by one.
func (mr *MetricsRegistry) Inc(key string) { mr.Add(key, 1) }

// Add increments a counter by n.
func (mr *MetricsRegistry) Add(key string, n uint64) {
	mr.mu.Lock()
	mr.counters[key] += n
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns the current value of one counter.
func (mr *MetricsRegistry) Get(key string) uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// GetSnapshot returns a copy of all counters.
func (mr *MetricsRegistry) GetSnapshot() map[string]uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]uint64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}
