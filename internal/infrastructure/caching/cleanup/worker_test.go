package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
)

func TestRunOnceRemovesExpiredSessions(t *testing.T) {
	t.Parallel()

	logger := logging.NewDiscardLogger()
	sessions := stores.NewSessionsStore(logger)
	now := time.Now()
	sessions.Put(admin.NewSession("old", content.EmptyDocument(), 1, now.Add(-time.Hour), time.Minute))
	sessions.Put(admin.NewSession("new", content.EmptyDocument(), 1, now, time.Hour))

	w := NewWorker(sessions, performance.NewTracker(nil), &Config{CleanupInterval: time.Minute}, logger)
	if removed := w.RunOnce(); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if sessions.Count() != 1 {
		t.Fatalf("count = %d, want 1", sessions.Count())
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	t.Parallel()

	logger := logging.NewDiscardLogger()
	w := NewWorker(stores.NewSessionsStore(logger), performance.NewTracker(nil), &Config{CleanupInterval: 5 * time.Millisecond}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
