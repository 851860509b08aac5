package stores

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

func TestDocumentStoreLifecycle(t *testing.T) {
	t.Parallel()

	ds := NewDocumentStore(logging.NewDiscardLogger())
	if got := ds.Status().State; got != StateLoading {
		t.Fatalf("initial state = %s, want loading", got)
	}

	ds.MarkFailed(errors.New("timeout"))
	if got := ds.Status(); got.State != StateFailed || got.LastError != "timeout" {
		t.Fatalf("status = %+v", got)
	}

	doc := content.EmptyDocument()
	doc.EN.General["heroTitle"] = "Build"
	if v := ds.Replace(doc, "remote"); v != 1 {
		t.Fatalf("version = %d, want 1", v)
	}
	doc.EN.General["heroTitle"] = "mutated after replace"
	if got := ds.Current().Document.EN.General["heroTitle"]; got != "Build" {
		t.Fatalf("store aliases caller document: %q", got)
	}

	ds.MarkFailed(errors.New("later failure"))
	if got := ds.Status().State; got != StateReady {
		t.Fatalf("state after later failure = %s, want ready", got)
	}
}

func TestDocumentStoreConcurrentReaders(t *testing.T) {
	t.Parallel()

	ds := NewDocumentStore(logging.NewDiscardLogger())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ds.Replace(content.EmptyDocument(), "test")
		}()
		go func() {
			defer wg.Done()
			if snap := ds.Current(); snap == nil || snap.Document == nil {
				t.Error("reader observed a nil snapshot")
			}
		}()
	}
	wg.Wait()
	if got := ds.Current().Version; got != 8 {
		t.Fatalf("version = %d, want 8", got)
	}
}

func TestSessionsStoreExpiry(t *testing.T) {
	t.Parallel()

	ss := NewSessionsStore(logging.NewDiscardLogger())
	now := time.Now()
	ss.now = func() time.Time { return now }

	ss.Put(admin.NewSession("live", content.EmptyDocument(), 1, now, time.Hour))
	ss.Put(admin.NewSession("stale", content.EmptyDocument(), 1, now.Add(-2*time.Hour), time.Hour))

	if _, ok := ss.Get("stale"); ok {
		t.Fatal("expired session returned")
	}
	if _, ok := ss.Get("live"); !ok {
		t.Fatal("live session missing")
	}

	ss.Put(admin.NewSession("stale2", content.EmptyDocument(), 1, now.Add(-3*time.Hour), time.Hour))
	if removed := ss.PurgeExpired(); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if ss.Count() != 1 {
		t.Fatalf("count = %d, want 1", ss.Count())
	}
}

func TestDocumentStoreNotifiesListeners(t *testing.T) {
	t.Parallel()

	ds := NewDocumentStore(logging.NewDiscardLogger())
	var got []uint64
	var sources []string
	ds.OnReplace(func(version uint64, source string) {
		got = append(got, version)
		sources = append(sources, source)
		// Listeners may read the store without deadlocking.
		if ds.Status().Version != version {
			t.Errorf("listener saw version %d before store", version)
		}
	})

	ds.Replace(content.EmptyDocument(), "remote")
	ds.Replace(content.EmptyDocument(), "admin")

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("versions = %v, want [1 2]", got)
	}
	if sources[1] != "admin" {
		t.Fatalf("sources = %v", sources)
	}
}
