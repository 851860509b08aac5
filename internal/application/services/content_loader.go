// Package services provides application-level services that orchestrate
// the content store, the admin drafts and the outer transports.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	domainservices "github.com/ModelHouseContracting/modelhouse-go/internal/domain/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"golang.org/x/sync/errgroup"
)

// ErrContentUnavailable is returned when the document cannot be loaded or has
// not been loaded yet.
var ErrContentUnavailable = errors.New("content unavailable")

// ContentLoader fetches the three content records and publishes them as one
// document. A load either replaces the whole document or changes nothing.
type ContentLoader struct {
	source      repositories.ContentSource
	store       *stores.DocumentStore
	timeout     time.Duration
	integrity   *domainservices.ContentIntegrityService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewContentLoader creates a loader. A non-positive timeout disables the
// per-load deadline.
func NewContentLoader(source repositories.ContentSource, store *stores.DocumentStore, timeout time.Duration, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContentLoader {
	return &ContentLoader{
		source:      source,
		store:       store,
		timeout:     timeout,
		integrity:   domainservices.NewContentIntegrityService(),
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Load fetches global, en and ar concurrently. On success the combined
// document is published and returned; on any failure the store keeps its
// previous document and records the error.
func (l *ContentLoader) Load(ctx context.Context) (*content.Document, error) {
	start := time.Now()
	marker := l.perfTracker.StartOperation("load_content", "remote")
	defer marker.Complete()

	l.logger.Content().Info("Loading content", "keys", len(repositories.RecordKeys), "timeout", l.timeout)
	l.store.MarkLoading()

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	doc, err := l.fetchAll(ctx)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrContentUnavailable, err)
		l.store.MarkFailed(wrapped)
		marker.SetError(wrapped)
		l.logger.Content().Error("Content load failed", "error", err, "duration", time.Since(start))
		return nil, wrapped
	}

	version := l.store.Replace(doc, "remote")
	marker.SetSuccess(true)
	marker.AddMetadata("version", version)
	l.logger.Content().Info("Content loaded",
		"version", version,
		"galleryProjects", len(doc.Global.GalleryProjects),
		"teamMembers", len(doc.Global.TeamMembers),
		"duration", time.Since(start))

	for _, issue := range l.integrity.Check(doc) {
		l.logger.Content().Warn("Content integrity issue", "kind", issue.Kind, "lang", issue.Lang, "ref", issue.Ref)
	}
	return doc, nil
}

// fetchAll decodes each record into its own slot of a fresh document. The
// slots are disjoint so the goroutines never touch the same field.
func (l *ContentLoader) fetchAll(ctx context.Context) (*content.Document, error) {
	doc := &content.Document{}
	targets := map[repositories.RecordKey]any{
		repositories.RecordGlobal: &doc.Global,
		repositories.RecordEN:     &doc.EN,
		repositories.RecordAR:     &doc.AR,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range repositories.RecordKeys {
		key := key
		target := targets[key]
		g.Go(func() error {
			fetchStart := time.Now()
			raw, err := l.source.Fetch(gctx, key)
			if err != nil {
				return fmt.Errorf("failed to fetch %s content: %w", key, err)
			}
			if err := json.Unmarshal(raw, target); err != nil {
				return fmt.Errorf("failed to decode %s content: %w", key, err)
			}
			l.logger.Content().Debug("Fetched content record", "key", key, "bytes", len(raw), "duration", time.Since(fetchStart))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc.Normalize()
	return doc, nil
}

// Ready returns the current snapshot, or ErrContentUnavailable while the
// first load is pending or after it failed.
func (l *ContentLoader) Ready() (*stores.DocumentSnapshot, error) {
	return currentSnapshot(l.store)
}

func currentSnapshot(store *stores.DocumentStore) (*stores.DocumentSnapshot, error) {
	status := store.Status()
	if status.State != stores.StateReady {
		return nil, fmt.Errorf("%w: %s", ErrContentUnavailable, status.State)
	}
	return store.Current(), nil
}
