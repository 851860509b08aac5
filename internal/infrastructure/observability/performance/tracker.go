package performance

import (
	"sync"
	"time"
)

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers        int           `json:"maxMarkers"`        // Completed markers retained
	Retention         time.Duration `json:"retention"`         // How long completed markers are kept
	SlowThreshold     time.Duration `json:"slowThreshold"`     // Operations slower than this count as degraded
	CriticalThreshold time.Duration `json:"criticalThreshold"` // Operations slower than this count as failures
}

// DefaultTrackerConfig returns the configuration used when none is given
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:        5000,
		Retention:         time.Hour,
		SlowThreshold:     2 * time.Second,
		CriticalThreshold: 5 * time.Second,
	}
}

// Tracker collects completed markers and summarizes them
type Tracker struct {
	mu        sync.RWMutex
	completed []*Marker
	started   time.Time
	config    *TrackerConfig
	now       func() time.Time
}

// NewTracker creates a new performance tracker with the given configuration
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{started: time.Now(), config: config, now: time.Now}
}

// StartOperation creates a marker for an operation. The marker is recorded
// when Complete is called.
func (t *Tracker) StartOperation(operation, scope string) *Marker {
	return &Marker{
		Operation: operation,
		Scope:     scope,
		StartTime: time.Now(),
		Success:   true, // Assume success until proven otherwise
		tracker:   t,
	}
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.completed = append(t.completed, m)
	if over := len(t.completed) - t.config.MaxMarkers; over > 0 {
		t.completed = append([]*Marker(nil), t.completed[over:]...)
	}
}

// Snapshot summarizes the retained markers.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	now := t.now()
	snap := Snapshot{
		Timestamp:  now,
		Uptime:     now.Sub(t.started),
		Operations: make(map[string]OperationStats),
	}

	var total, critical, slow int
	totals := make(map[string]time.Duration)
	for _, m := range t.completed {
		stats := snap.Operations[m.Operation]
		stats.Count++
		if !m.Success {
			stats.Failures++
		}
		if m.Duration > stats.MaxDuration {
			stats.MaxDuration = m.Duration
		}
		totals[m.Operation] += m.Duration
		snap.Operations[m.Operation] = stats

		total++
		switch {
		case !m.Success || m.Duration > t.config.CriticalThreshold:
			critical++
		case m.Duration > t.config.SlowThreshold:
			slow++
		}
	}
	for op, stats := range snap.Operations {
		stats.AvgDuration = totals[op] / time.Duration(stats.Count)
		snap.Operations[op] = stats
	}

	snap.Health = health(total, critical, slow)
	return snap
}

func health(total, critical, slow int) HealthStatus {
	if total == 0 {
		return HealthUnknown
	}
	criticalRatio := float64(critical) / float64(total)
	slowRatio := float64(slow) / float64(total)

	switch {
	case criticalRatio > 0.1:
		return HealthUnhealthy
	case criticalRatio > 0.05 || slowRatio > 0.2:
		return HealthDegraded
	default:
		return HealthHealthy
	}
}

// Cleanup drops completed markers older than the retention window and
// returns how many were removed.
func (t *Tracker) Cleanup() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-t.config.Retention)
	kept := t.completed[:0]
	for _, m := range t.completed {
		if m.EndTime.After(cutoff) {
			kept = append(kept, m)
		}
	}
	removed := len(t.completed) - len(kept)
	for i := len(kept); i < len(t.completed); i++ {
		t.completed[i] = nil
	}
	t.completed = kept
	return removed
}
