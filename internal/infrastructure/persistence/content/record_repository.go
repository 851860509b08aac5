// Package content provides the SQL repository for content store records.
package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/persistence/database"
)

// RecordRepository stores content records in the content_records table.
type RecordRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewRecordRepository creates a repository over db.
func NewRecordRepository(db *database.DB, logger *logging.ChanneledLogger) *RecordRepository {
	return &RecordRepository{db: db, logger: logger}
}

const (
	selectRecordSQL  = `SELECT key, body, updated_at FROM content_records WHERE key = ?`
	selectRecordsSQL = `SELECT key, body, updated_at FROM content_records ORDER BY key`
	upsertRecordSQL  = `INSERT INTO content_records (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`
)

// FindByKey returns the record stored under key, or nil when there is none.
func (r *RecordRepository) FindByKey(ctx context.Context, key repositories.RecordKey) (*repositories.Record, error) {
	start := time.Now()
	row := r.db.QueryRowContext(ctx, selectRecordSQL, string(key))

	record, err := scanRecord(row)
	database.CheckAndLogSlowQuery(r.logger, selectRecordSQL, time.Since(start))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record %q: %w", key, err)
	}
	return record, nil
}

// FindAll returns every stored record ordered by key.
func (r *RecordRepository) FindAll(ctx context.Context) ([]*repositories.Record, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, selectRecordsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*repositories.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	database.CheckAndLogSlowQuery(r.logger, selectRecordsSQL, time.Since(start))
	return records, nil
}

// Store inserts or replaces record.
func (r *RecordRepository) Store(ctx context.Context, record *repositories.Record) error {
	start := time.Now()
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertRecordSQL,
		string(record.Key), string(record.Body), record.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to store record %q: %w", record.Key, err)
	}

	database.CheckAndLogSlowQuery(r.logger, upsertRecordSQL, time.Since(start))
	r.logger.Database().Debug("Record stored", "key", record.Key, "bytes", len(record.Body), "duration", time.Since(start))
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*repositories.Record, error) {
	var key, body, updatedAt string
	if err := s.Scan(&key, &body, &updatedAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", updatedAt, err)
	}
	return &repositories.Record{
		Key:       repositories.RecordKey(key),
		Body:      []byte(body),
		UpdatedAt: ts,
	}, nil
}
