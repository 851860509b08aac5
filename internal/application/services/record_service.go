package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownRecord is returned for keys other than global, en and ar.
	ErrUnknownRecord = errors.New("unknown record key")
	// ErrRecordNotFound is returned when a known key has not been stored yet.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when a body is not a JSON object.
	ErrInvalidRecord = errors.New("record body must be a JSON object")
)

// RecordService serves the content store records.
type RecordService struct {
	repo        repositories.RecordRepository
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	now         func() time.Time
}

// NewRecordService creates a record service.
func NewRecordService(repo repositories.RecordRepository, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *RecordService {
	return &RecordService{repo: repo, logger: logger, perfTracker: perfTracker, now: time.Now}
}

func parseKey(raw string) (repositories.RecordKey, error) {
	if !repositories.ValidRecordKey(raw) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecord, raw)
	}
	return repositories.RecordKey(raw), nil
}

// Get returns the record stored under key.
func (s *RecordService) Get(ctx context.Context, rawKey string) (*repositories.Record, error) {
	key, err := parseKey(rawKey)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", key, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	return record, nil
}

// List returns every stored record.
func (s *RecordService) List(ctx context.Context) ([]*repositories.Record, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// Put replaces the record under key. body must be a JSON object.
func (s *RecordService) Put(ctx context.Context, rawKey string, body []byte) (*repositories.Record, error) {
	start := time.Now()
	marker := s.perfTracker.StartOperation("put_record", rawKey)
	defer marker.Complete()

	key, err := parseKey(rawKey)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	compact, err := compactObject(body)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	record := &repositories.Record{Key: key, Body: compact, UpdatedAt: s.now().UTC()}
	if err := s.repo.Store(ctx, record); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to store record %s: %w", key, err)
	}

	marker.SetSuccess(true)
	s.logger.Database().Info("Record stored", "key", key, "bytes", len(compact), "duration", time.Since(start))
	return record, nil
}

func compactObject(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidRecord
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, ErrInvalidRecord
	}
	return buf.Bytes(), nil
}

// SeedFromFile stores each record of the seed document whose key is not
// stored yet. The file holds a {global, en, ar} document in JSON or YAML.
// It returns the number of records written.
func (s *RecordService) SeedFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}
	return s.Seed(ctx, data)
}

// Seed stores the parts of a seed document for keys that are still empty.
func (s *RecordService) Seed(ctx context.Context, data []byte) (int, error) {
	var parts map[string]any
	if err := yaml.Unmarshal(data, &parts); err != nil {
		return 0, fmt.Errorf("failed to parse seed document: %w", err)
	}

	written := 0
	for _, key := range repositories.RecordKeys {
		part, ok := parts[string(key)]
		if !ok {
			continue
		}
		existing, err := s.repo.FindByKey(ctx, key)
		if err != nil {
			return written, fmt.Errorf("failed to check record %s: %w", key, err)
		}
		if existing != nil {
			s.logger.Database().Debug("Seed skipped existing record", "key", key)
			continue
		}
		body, err := json.Marshal(part)
		if err != nil {
			return written, fmt.Errorf("failed to encode seed record %s: %w", key, err)
		}
		if _, err := s.Put(ctx, string(key), body); err != nil {
			return written, err
		}
		written++
	}
	s.logger.Database().Info("Seed completed", "written", written)
	return written, nil
}
