package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	domainservices "github.com/ModelHouseContracting/modelhouse-go/internal/domain/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/security"
	"golang.org/x/sync/errgroup"
)

// ErrSessionNotFound is returned for unknown or expired admin sessions.
var ErrSessionNotFound = errors.New("admin session not found")

// ErrPublishDisabled is returned when no content publisher is configured.
var ErrPublishDisabled = errors.New("publishing is not configured")

// AdminConfig holds the admin session timings.
type AdminConfig struct {
	SessionTTL time.Duration
	NoticeTTL  time.Duration
}

// DraftView is the admin editor state returned after every operation.
type DraftView struct {
	Document       *content.Document      `json:"document"`
	GeneralFields  []string               `json:"generalFields"`
	BaseVersion    uint64                 `json:"baseVersion"`
	CurrentVersion uint64                 `json:"currentVersion"`
	Stale          bool                   `json:"stale"`
	ProjectEdit    admin.EditStatus       `json:"projectEdit"`
	StagedProject  *admin.ProjectEdit     `json:"stagedProject,omitempty"`
	PhotoEdit      admin.EditStatus       `json:"photoEdit"`
	StagedPhoto    *content.TeamPhoto     `json:"stagedPhoto,omitempty"`
	Notice         *admin.Notice          `json:"notice,omitempty"`
	Issues         []domainservices.Issue `json:"issues"`
	ExpiresAt      time.Time              `json:"expiresAt"`
}

// AdminService runs the draft workflow of admin sessions: open, mutate,
// save into the shared document, publish to the content store, discard.
type AdminService struct {
	documents   *stores.DocumentStore
	sessions    *stores.SessionsStore
	publisher   repositories.ContentPublisher
	catalog     *i18n.Catalog
	config      AdminConfig
	integrity   *domainservices.ContentIntegrityService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	now         func() time.Time
}

// NewAdminService creates an admin service. publisher may be nil, in which
// case Publish reports ErrPublishDisabled.
func NewAdminService(documents *stores.DocumentStore, sessions *stores.SessionsStore, publisher repositories.ContentPublisher, catalog *i18n.Catalog, config AdminConfig, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AdminService {
	return &AdminService{
		documents:   documents,
		sessions:    sessions,
		publisher:   publisher,
		catalog:     catalog,
		config:      config,
		integrity:   domainservices.NewContentIntegrityService(),
		logger:      logger,
		perfTracker: perfTracker,
		now:         time.Now,
	}
}

// OpenSession starts a session whose draft is a deep copy of the published
// document. It fails while content is unavailable so a draft is never cloned
// from the empty placeholder.
func (s *AdminService) OpenSession() (*admin.Session, error) {
	snap, err := currentSnapshot(s.documents)
	if err != nil {
		return nil, err
	}
	id, err := security.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to create session id: %w", err)
	}

	session := admin.NewSession(id, snap.Document, snap.Version, s.now(), s.config.SessionTTL)
	s.sessions.Put(session)
	s.logger.Admin().Info("Admin session opened", "sessionId", logging.MaskID(id), "baseVersion", snap.Version)
	return session, nil
}

// CloseSession ends a session and drops its draft.
func (s *AdminService) CloseSession(id string) {
	s.sessions.Delete(id)
	s.logger.Admin().Info("Admin session closed", "sessionId", logging.MaskID(id))
}

// Session returns the live session with id and extends its lifetime.
func (s *AdminService) Session(id string) (*admin.Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.Touch(s.now(), s.config.SessionTTL)
	return session, nil
}

// Mutate applies fn to the session draft. Validation failures leave an
// error notice in lang on the session.
func (s *AdminService) Mutate(sessionID string, lang content.Language, operation string, fn func(d *admin.Draft) error) error {
	start := time.Now()
	marker := s.perfTracker.StartOperation("admin_"+operation, "draft")
	defer marker.Complete()

	session, err := s.Session(sessionID)
	if err != nil {
		marker.SetError(err)
		return err
	}

	if err := session.Do(fn); err != nil {
		marker.SetError(err)
		if errors.Is(err, admin.ErrValidation) {
			session.SetNotice(admin.NewNotice(admin.NoticeError, s.catalog.T(lang, "admin_feedback_error"), s.now(), s.config.NoticeTTL))
		}
		s.logger.Admin().Warn("Draft operation rejected", "operation", operation, "sessionId", logging.MaskID(sessionID), "error", err)
		return err
	}

	marker.SetSuccess(true)
	s.logger.Admin().Debug("Draft operation applied", "operation", operation, "sessionId", logging.MaskID(sessionID), "duration", time.Since(start))
	return nil
}

// View returns the editor state of a session.
func (s *AdminService) View(sessionID string) (*DraftView, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	current := s.documents.Current().Version
	view := &DraftView{
		GeneralFields:  content.GeneralFields,
		CurrentVersion: current,
		ExpiresAt:      session.ExpiresAt(),
	}
	_ = session.Do(func(d *admin.Draft) error {
		view.Document = d.Snapshot()
		view.ProjectEdit = d.ProjectEditStatus()
		if staged, err := d.StagedProject(); err == nil {
			view.StagedProject = &staged
		}
		view.PhotoEdit = d.PhotoEditStatus()
		if staged, err := d.StagedPhoto(); err == nil {
			view.StagedPhoto = &staged
		}
		return nil
	})
	view.Issues = s.integrity.Check(view.Document)
	view.BaseVersion = session.BaseVersion()
	view.Stale = view.BaseVersion != current
	if notice, ok := session.ActiveNotice(s.now()); ok {
		view.Notice = &notice
	}
	return view, nil
}

// Save commits the session draft as the next version of the shared document.
// Staged gallery and photo edits that were never committed are not included.
func (s *AdminService) Save(sessionID string, lang content.Language) (uint64, error) {
	start := time.Now()
	marker := s.perfTracker.StartOperation("admin_save", "draft")
	defer marker.Complete()

	session, err := s.Session(sessionID)
	if err != nil {
		marker.SetError(err)
		return 0, err
	}

	var snapshot *content.Document
	_ = session.Do(func(d *admin.Draft) error {
		snapshot = d.Snapshot()
		return nil
	})

	base := session.BaseVersion()
	if current := s.documents.Current().Version; current != base {
		s.logger.Admin().Warn("Saving over a newer document", "sessionId", logging.MaskID(sessionID), "baseVersion", base, "currentVersion", current)
	}

	version := s.documents.Replace(snapshot, "admin")
	session.SetBaseVersion(version)
	session.SetNotice(admin.NewNotice(admin.NoticeSuccess, s.catalog.T(lang, "admin_feedback_success_save"), s.now(), s.config.NoticeTTL))

	marker.SetSuccess(true)
	marker.AddMetadata("version", version)
	s.logger.Admin().Info("Draft saved", "sessionId", logging.MaskID(sessionID), "version", version, "duration", time.Since(start))
	return version, nil
}

// Discard replaces the session draft with a fresh copy of the shared document.
func (s *AdminService) Discard(sessionID string) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}
	snap := s.documents.Current()
	session.Reset(snap.Document, snap.Version)
	s.logger.Admin().Info("Draft discarded", "sessionId", logging.MaskID(sessionID), "version", snap.Version)
	return nil
}

// Publish writes the shared document back to the content store as its three
// records. Drafts are not published; save first.
func (s *AdminService) Publish(ctx context.Context, sessionID string, lang content.Language) (uint64, error) {
	start := time.Now()
	marker := s.perfTracker.StartOperation("admin_publish", "remote")
	defer marker.Complete()

	session, err := s.Session(sessionID)
	if err != nil {
		marker.SetError(err)
		return 0, err
	}
	if s.publisher == nil {
		marker.SetError(ErrPublishDisabled)
		return 0, ErrPublishDisabled
	}

	snap, err := currentSnapshot(s.documents)
	if err != nil {
		marker.SetError(err)
		return 0, err
	}

	records, err := encodeRecords(snap.Document)
	if err != nil {
		marker.SetError(err)
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range repositories.RecordKeys {
		key := key
		body := records[key]
		g.Go(func() error {
			if err := s.publisher.Publish(gctx, key, body); err != nil {
				return fmt.Errorf("failed to publish %s content: %w", key, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		marker.SetError(err)
		session.SetNotice(admin.NewNotice(admin.NoticeError, s.catalog.T(lang, "admin_feedback_publish_error"), s.now(), s.config.NoticeTTL))
		s.logger.Admin().Error("Publish failed", "version", snap.Version, "error", err, "duration", time.Since(start))
		return 0, err
	}

	session.SetNotice(admin.NewNotice(admin.NoticeSuccess, s.catalog.T(lang, "admin_feedback_published"), s.now(), s.config.NoticeTTL))
	marker.SetSuccess(true)
	s.logger.Admin().Info("Document published", "sessionId", logging.MaskID(sessionID), "version", snap.Version, "duration", time.Since(start))
	return snap.Version, nil
}

func encodeRecords(doc *content.Document) (map[repositories.RecordKey]json.RawMessage, error) {
	parts := map[repositories.RecordKey]any{
		repositories.RecordGlobal: doc.Global,
		repositories.RecordEN:     doc.EN,
		repositories.RecordAR:     doc.AR,
	}
	out := make(map[repositories.RecordKey]json.RawMessage, len(parts))
	for key, part := range parts {
		body, err := json.Marshal(part)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s content: %w", key, err)
		}
		out[key] = body
	}
	return out, nil
}
