// Package cleanup provides the background worker that expires admin sessions
// and old performance markers.
package cleanup

import (
	"context"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
)

// Worker handles background cleanup operations
type Worker struct {
	sessions    *stores.SessionsStore
	perfTracker *performance.Tracker
	config      *Config
	logger      *logging.ChanneledLogger
}

// NewWorker creates a new cleanup worker with injected configuration
func NewWorker(sessions *stores.SessionsStore, perfTracker *performance.Tracker, config *Config, logger *logging.ChanneledLogger) *Worker {
	return &Worker{
		sessions:    sessions,
		perfTracker: perfTracker,
		config:      config,
		logger:      logger,
	}
}

// Start runs cleanup on every interval until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	w.logger.Cache().Info("Cleanup worker started", "interval", w.config.CleanupInterval)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Cleanup worker stopping")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce performs a single cleanup pass and returns the number of expired
// sessions removed.
func (w *Worker) RunOnce() int {
	start := time.Now()
	sessions := w.sessions.PurgeExpired()
	markers := w.perfTracker.Cleanup()

	if sessions > 0 || markers > 0 {
		w.logger.Cache().Info("Cleanup finished",
			"expiredSessions", sessions,
			"expiredMarkers", markers,
			"remainingSessions", w.sessions.Count(),
			"duration", time.Since(start))
	} else {
		w.logger.Cache().Debug("Cleanup completed - nothing expired", "duration", time.Since(start))
	}
	return sessions
}
