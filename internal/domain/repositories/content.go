// Package repositories defines the interfaces through which the application
// reaches the remote content store and the store's own persistence.
package repositories

import (
	"context"
	"encoding/json"
	"time"
)

// RecordKey names one of the three records that make up the site document.
type RecordKey string

const (
	RecordGlobal RecordKey = "global"
	RecordEN     RecordKey = "en"
	RecordAR     RecordKey = "ar"
)

// RecordKeys lists every record key in fetch order.
var RecordKeys = []RecordKey{RecordGlobal, RecordEN, RecordAR}

// ValidRecordKey reports whether key names a known record.
func ValidRecordKey(key string) bool {
	switch RecordKey(key) {
	case RecordGlobal, RecordEN, RecordAR:
		return true
	default:
		return false
	}
}

// ContentSource fetches one raw JSON record from the remote content store.
type ContentSource interface {
	Fetch(ctx context.Context, key RecordKey) (json.RawMessage, error)
}

// ContentPublisher writes one raw JSON record back to the remote content store.
type ContentPublisher interface {
	Publish(ctx context.Context, key RecordKey, body json.RawMessage) error
}

// Record is a stored content record.
type Record struct {
	Key       RecordKey
	Body      json.RawMessage
	UpdatedAt time.Time
}

// RecordRepository persists content records for the content store service.
type RecordRepository interface {
	FindByKey(ctx context.Context, key RecordKey) (*Record, error)
	FindAll(ctx context.Context) ([]*Record, error)
	Store(ctx context.Context, record *Record) error
}
