package content

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/persistence/database"
)

func newTestRepository(t *testing.T) *RecordRepository {
	t.Helper()

	logger := logging.NewDiscardLogger()
	db, err := database.NewConnectionWithLogger("sqlite3", "file::memory:", logger)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.CreateSchema(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return NewRecordRepository(db, logger)
}

func TestStoreAndFind(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	if got, err := repo.FindByKey(ctx, repositories.RecordEN); err != nil || got != nil {
		t.Fatalf("missing record = %v, %v; want nil, nil", got, err)
	}

	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := repo.Store(ctx, &repositories.Record{Key: repositories.RecordEN, Body: json.RawMessage(`{"a":1}`), UpdatedAt: when}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := repo.Store(ctx, &repositories.Record{Key: repositories.RecordEN, Body: json.RawMessage(`{"a":2}`), UpdatedAt: when.Add(time.Hour)}); err != nil {
		t.Fatalf("Store overwrite: %v", err)
	}

	got, err := repo.FindByKey(ctx, repositories.RecordEN)
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if string(got.Body) != `{"a":2}` || !got.UpdatedAt.Equal(when.Add(time.Hour)) {
		t.Fatalf("record = %s at %s", got.Body, got.UpdatedAt)
	}
}

func TestFindAllOrdersByKey(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()
	for _, key := range []repositories.RecordKey{repositories.RecordGlobal, repositories.RecordAR, repositories.RecordEN} {
		if err := repo.Store(ctx, &repositories.Record{Key: key, Body: json.RawMessage(`{}`)}); err != nil {
			t.Fatalf("Store %s: %v", key, err)
		}
	}

	records, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(records) != 3 || records[0].Key != repositories.RecordAR || records[2].Key != repositories.RecordGlobal {
		t.Fatalf("records = %+v", records)
	}
}
