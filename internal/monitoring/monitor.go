package monitoring

import (
	"sync"
	"time"
)

// Monitor tallies dispatched actions for the stats endpoint
type Monitor struct {
	actions      map[string]int64
	actionsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		actions:   make(map[string]int64),
		startTime: time.Now(),
	}
}

// RecordAction counts one dispatch of the named action
func (m *Monitor) RecordAction(name string) {
	m.actionsMutex.Lock()
	defer m.actionsMutex.Unlock()
	m.actions[name]++
}

// ActionCount returns how often one action has been dispatched
func (m *Monitor) ActionCount(name string) int64 {
	m.actionsMutex.RLock()
	defer m.actionsMutex.RUnlock()
	return m.actions[name]
}

// Stats returns all current counters plus uptime
func (m *Monitor) Stats() map[string]interface{} {
	m.actionsMutex.RLock()
	defer m.actionsMutex.RUnlock()

	actions := make(map[string]int64, len(m.actions))
	var total int64
	for k, v := range m.actions {
		actions[k] = v
		total += v
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(m.startTime).Seconds(),
		"actions_total":  total,
		"actions":        actions,
	}
}

// Reset clears all counters
func (m *Monitor) Reset() {
	m.actionsMutex.Lock()
	defer m.actionsMutex.Unlock()
	m.actions = make(map[string]int64)
}
