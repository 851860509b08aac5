// Package stores provides the in-memory stores shared by the web service:
// the published site document and the admin sessions.
package stores

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

// LoadState is the lifecycle of the shared document.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// DocumentSnapshot is one immutable published version of the document.
// Readers must not modify Document.
type DocumentSnapshot struct {
	Document  *content.Document
	Version   uint64
	UpdatedAt time.Time
	Source    string
}

// DocumentStatus is the load state together with the current version.
type DocumentStatus struct {
	State     LoadState `json:"state"`
	Version   uint64    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	LastError string    `json:"lastError,omitempty"`
}

// DocumentStore holds the shared document. Replacing it is a single pointer
// swap, so readers see either the old or the new version.
type DocumentStore struct {
	current   atomic.Pointer[DocumentSnapshot]
	mu        sync.Mutex
	state     LoadState
	lastErr   string
	listeners []ReplaceListener
	logger    *logging.ChanneledLogger
}

// ReplaceListener is called after each Replace with the new version. It runs
// on the replacing goroutine and must not block.
type ReplaceListener func(version uint64, source string)

// NewDocumentStore creates a store in the loading state holding an empty document.
func NewDocumentStore(logger *logging.ChanneledLogger) *DocumentStore {
	ds := &DocumentStore{state: StateLoading, logger: logger}
	ds.current.Store(&DocumentSnapshot{Document: content.EmptyDocument(), Source: "empty"})
	logger.Cache().Info("Initializing document store")
	return ds
}

// Current returns the published snapshot.
func (ds *DocumentStore) Current() *DocumentSnapshot {
	return ds.current.Load()
}

// Replace publishes a private copy of doc as the next version and marks the
// store ready. It returns the new version.
func (ds *DocumentStore) Replace(doc *content.Document, source string) uint64 {
	start := time.Now()
	owned := doc.Clone()
	owned.Normalize()

	ds.mu.Lock()
	next := &DocumentSnapshot{
		Document:  owned,
		Version:   ds.current.Load().Version + 1,
		UpdatedAt: time.Now().UTC(),
		Source:    source,
	}
	ds.current.Store(next)
	ds.state = StateReady
	ds.lastErr = ""
	listeners := ds.listeners
	ds.mu.Unlock()

	ds.logger.Cache().Info("Document replaced", "version", next.Version, "source", source, "duration", time.Since(start))
	for _, listener := range listeners {
		listener(next.Version, source)
	}
	return next.Version
}

// OnReplace registers listener for future replacements.
func (ds *DocumentStore) OnReplace(listener ReplaceListener) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.listeners = append(ds.listeners, listener)
}

// MarkLoading records that a load is in progress. A store that already holds
// a document stays ready.
func (ds *DocumentStore) MarkLoading() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.state != StateReady {
		ds.state = StateLoading
	}
}

// MarkFailed records a failed load. A store that already holds a document
// keeps serving it and only remembers the error.
func (ds *DocumentStore) MarkFailed(err error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if err != nil {
		ds.lastErr = err.Error()
	}
	if ds.state != StateReady {
		ds.state = StateFailed
	}
	ds.logger.Cache().Warn("Document load failed", "state", ds.state, "error", ds.lastErr)
}

// Status returns the load state and current version.
func (ds *DocumentStore) Status() DocumentStatus {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	snap := ds.current.Load()
	return DocumentStatus{
		State:     ds.state,
		Version:   snap.Version,
		UpdatedAt: snap.UpdatedAt,
		LastError: ds.lastErr,
	}
}
