package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
)

type fakePublisher struct {
	mu     sync.Mutex
	bodies map[repositories.RecordKey]json.RawMessage
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, key repositories.RecordKey, body json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.bodies == nil {
		f.bodies = make(map[repositories.RecordKey]json.RawMessage)
	}
	f.bodies[key] = append(json.RawMessage{}, body...)
	return nil
}

type adminFixture struct {
	svc       *AdminService
	documents *stores.DocumentStore
	sessions  *stores.SessionsStore
	publisher *fakePublisher
}

func newAdminFixture(t *testing.T, doc *content.Document) *adminFixture {
	t.Helper()
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	logger := logging.NewDiscardLogger()
	documents := stores.NewDocumentStore(logger)
	if doc != nil {
		documents.Replace(doc, "test")
	}
	sessions := stores.NewSessionsStore(logger)
	publisher := &fakePublisher{}
	svc := NewAdminService(documents, sessions, publisher, catalog,
		AdminConfig{SessionTTL: time.Hour, NoticeTTL: time.Minute}, logger, performance.NewTracker(nil))
	return &adminFixture{svc: svc, documents: documents, sessions: sessions, publisher: publisher}
}

func (f *adminFixture) open(t *testing.T) *admin.Session {
	t.Helper()
	session, err := f.svc.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return session
}

func TestOpenSessionRequiresContent(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, nil)
	if _, err := f.svc.OpenSession(); !errors.Is(err, ErrContentUnavailable) {
		t.Fatalf("err = %v, want ErrContentUnavailable", err)
	}
}

func TestDraftIsIsolatedUntilSave(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	session := f.open(t)

	err := f.svc.Mutate(session.ID, content.LangEN, "set_general", func(d *admin.Draft) error {
		return d.SetGeneralField(content.LangEN, "heroTitle", "Draft title")
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if got := f.documents.Current().Document.EN.General.Get("heroTitle"); got != "Building the future" {
		t.Fatalf("published heroTitle = %q before save", got)
	}

	version, err := f.svc.Save(session.ID, content.LangEN)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if version != 2 {
		t.Fatalf("version = %d, want 2", version)
	}
	if got := f.documents.Current().Document.EN.General.Get("heroTitle"); got != "Draft title" {
		t.Fatalf("published heroTitle = %q after save", got)
	}

	view, err := f.svc.View(session.ID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Stale || view.BaseVersion != 2 {
		t.Fatalf("view = %+v", view)
	}
	if view.Notice == nil || view.Notice.Kind != admin.NoticeSuccess || view.Notice.Message != "Changes saved successfully!" {
		t.Fatalf("notice = %+v", view.Notice)
	}
}

func TestSaveTwiceLeavesDocumentUnchanged(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	session := f.open(t)

	if _, err := f.svc.Save(session.ID, content.LangEN); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	first, _ := json.Marshal(f.documents.Current().Document)
	if _, err := f.svc.Save(session.ID, content.LangEN); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	second, _ := json.Marshal(f.documents.Current().Document)
	if string(first) != string(second) {
		t.Fatal("second save changed the document")
	}
}

func TestValidationFailureSetsErrorNotice(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	session := f.open(t)

	err := f.svc.Mutate(session.ID, content.LangAR, "add_gallery_project", func(d *admin.Draft) error {
		_, err := d.AddGalleryProject(admin.NewProject{Title: "X", Location: "Y", CoverImageURL: "c.jpg", ImageURLs: " , "})
		return err
	})
	if !errors.Is(err, admin.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	view, err := f.svc.View(session.ID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Notice == nil || view.Notice.Kind != admin.NoticeError {
		t.Fatalf("notice = %+v", view.Notice)
	}
	if len(view.Document.Global.GalleryProjects) != 4 {
		t.Fatalf("projects = %d, want 4", len(view.Document.Global.GalleryProjects))
	}
}

func TestStaleDraftIsReported(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	first := f.open(t)
	second := f.open(t)

	if _, err := f.svc.Save(first.ID, content.LangEN); err != nil {
		t.Fatalf("Save: %v", err)
	}
	view, err := f.svc.View(second.ID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !view.Stale {
		t.Fatal("second session should be stale after the first saved")
	}

	if err := f.svc.Discard(second.ID); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	view, _ = f.svc.View(second.ID)
	if view.Stale {
		t.Fatal("discard should rebase the draft")
	}
}

func TestDiscardDropsDraftChanges(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	session := f.open(t)
	_ = f.svc.Mutate(session.ID, content.LangEN, "add_team_member", func(d *admin.Draft) error {
		d.AddTeamMember()
		return nil
	})
	if err := f.svc.Discard(session.ID); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	view, _ := f.svc.View(session.ID)
	if len(view.Document.Global.TeamMembers) != 2 {
		t.Fatalf("team members = %d, want 2", len(view.Document.Global.TeamMembers))
	}
}

func TestPublishWritesSharedDocument(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	session := f.open(t)

	_ = f.svc.Mutate(session.ID, content.LangEN, "set_global", func(d *admin.Draft) error {
		return d.SetGlobalField("companyLogoUrl", "unsaved.png")
	})
	if _, err := f.svc.Publish(context.Background(), session.ID, content.LangEN); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(f.publisher.bodies) != 3 {
		t.Fatalf("published %d records, want 3", len(f.publisher.bodies))
	}

	var global content.GlobalContent
	if err := json.Unmarshal(f.publisher.bodies[repositories.RecordGlobal], &global); err != nil {
		t.Fatalf("decode global: %v", err)
	}
	if global.CompanyLogoURL != "logo.png" {
		t.Fatalf("published logo = %q, unsaved draft must not be published", global.CompanyLogoURL)
	}
}

func TestPublishFailureSetsNotice(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	f.publisher.err = errors.New("store down")
	session := f.open(t)

	if _, err := f.svc.Publish(context.Background(), session.ID, content.LangEN); err == nil {
		t.Fatal("expected publish error")
	}
	view, _ := f.svc.View(session.ID)
	if view.Notice == nil || view.Notice.Kind != admin.NoticeError {
		t.Fatalf("notice = %+v", view.Notice)
	}
	want := f.svc.catalog.T(content.LangEN, "admin_feedback_publish_error")
	if want == "admin_feedback_publish_error" {
		t.Fatal("publish error message missing from catalog")
	}
	if view.Notice.Message != want {
		t.Fatalf("notice message = %q, want %q", view.Notice.Message, want)
	}
}

func TestUnknownSession(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	if _, err := f.svc.View("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	session := f.open(t)
	f.svc.CloseSession(session.ID)
	if _, err := f.svc.Save(session.ID, content.LangEN); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestViewReportsIntegrityIssues(t *testing.T) {
	t.Parallel()

	doc := content.EmptyDocument()
	doc.EN.Services = []content.Service{{Key: "build", Title: "Build"}}
	f := newAdminFixture(t, doc)
	session := f.open(t)

	view, err := f.svc.View(session.ID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view.Issues) != 1 || view.Issues[0].Ref != "service:build" {
		t.Fatalf("issues = %+v, want one for service:build", view.Issues)
	}
}
