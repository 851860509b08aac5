package services

import (
	"errors"
	"testing"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

func sampleDocument() *content.Document {
	doc := content.EmptyDocument()
	doc.Global.CompanyLogoURL = "logo.png"
	doc.Global.MapCoordinates = content.MapCoordinates{Lat: 25.2, Lng: 55.3}
	doc.Global.TeamMembers = []content.TeamMemberImage{{ID: 7, ImageURL: "x.png"}, {ID: 8, ImageURL: "y.png"}}
	doc.Global.Services = []content.IconRef{{Key: "design", IconKey: "pencil"}, {Key: "build", IconKey: "crane"}}
	doc.Global.CoreValues = []content.IconRef{{Key: "quality", IconKey: "star"}}
	doc.Global.GalleryProjects = []content.GalleryProject{
		{ID: 1, Title: "Tower", Category: content.CategoryBuildings, Location: "Dubai", CoverImageURL: "t.jpg", ImageURLs: []string{"t1.jpg"}},
		{ID: 2, Title: "Palm Villa", Category: content.CategoryVillas, Location: "Dubai", CoverImageURL: "v.jpg", ImageURLs: []string{"v1.jpg"}},
		{ID: 3, Title: "Depot", Category: "Warehouses", Location: "Sharjah", CoverImageURL: "d.jpg", ImageURLs: []string{"d1.jpg"}},
		{ID: 4, Title: "Mall", Category: content.CategoryBuildings, Location: "Abu Dhabi", CoverImageURL: "m.jpg", ImageURLs: []string{"m1.jpg"}},
	}

	doc.EN.General = content.GeneralText{"heroTitle": "Building the future", "footerTagline": "Quality first"}
	doc.EN.Services = []content.Service{
		{Key: "build", Title: "Construction", Description: "We build"},
		{Key: "design", Title: "Design", Description: "We draw"},
		{Key: "mep", Title: "MEP", Description: "Pipes"},
		{Key: "fitout", Title: "Fit-out", Description: "Interiors"},
	}
	doc.EN.CoreValues = []content.CoreValue{{Key: "quality", Title: "Quality"}}
	doc.EN.TeamMembers = []content.TeamMemberText{{ID: 7, Name: "A", Title: "T", Bio: "B"}}
	doc.EN.WorkingHours = []content.WorkingHour{{ID: 1, Day: "Sun-Thu", Time: "8-5"}}

	doc.AR.General = content.GeneralText{"heroTitle": "نبني المستقبل"}
	doc.AR.TeamMembers = []content.TeamMemberText{{ID: 7, Name: "ا", Title: "ت", Bio: "ب"}}
	return doc
}

func newPageFixture(t *testing.T, doc *content.Document) (*PageService, *stores.DocumentStore) {
	t.Helper()
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	store := stores.NewDocumentStore(logging.NewDiscardLogger())
	if doc != nil {
		store.Replace(doc, "test")
	}
	return NewPageService(store, catalog), store
}

func TestPagesUnavailableWhileLoading(t *testing.T) {
	t.Parallel()

	pages, store := newPageFixture(t, nil)
	if _, err := pages.Home(content.LangEN); !errors.Is(err, ErrContentUnavailable) {
		t.Fatalf("Home err = %v, want ErrContentUnavailable", err)
	}
	if got := pages.LoadingMessage(content.LangEN); got != "Loading content..." {
		t.Fatalf("loading message = %q", got)
	}

	store.MarkFailed(errors.New("down"))
	if got := pages.LoadingMessage(content.LangEN); got != "Failed to load website content. Please try refreshing the page." {
		t.Fatalf("failed message = %q", got)
	}
}

func TestShellDirectionAndNav(t *testing.T) {
	t.Parallel()

	pages, _ := newPageFixture(t, sampleDocument())
	shell, err := pages.Shell(content.LangAR)
	if err != nil {
		t.Fatalf("Shell: %v", err)
	}
	if shell.Dir != i18n.RTL || shell.Lang != content.LangAR {
		t.Fatalf("shell meta = %+v", shell.PageMeta)
	}
	if len(shell.Nav) != 6 || shell.Nav[0].Label != "الرئيسية" {
		t.Fatalf("nav = %+v", shell.Nav)
	}
	if shell.LogoURL != "logo.png" || len(shell.Footer.Social) != 3 {
		t.Fatalf("shell = %+v", shell)
	}
}

func TestHomeLimitsAndJoins(t *testing.T) {
	t.Parallel()

	pages, _ := newPageFixture(t, sampleDocument())
	home, err := pages.Home(content.LangEN)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.Hero.Title != "Building the future" {
		t.Fatalf("hero title = %q", home.Hero.Title)
	}
	if len(home.Services) != 3 || home.Services[0].Key != "build" || home.Services[0].IconKey != "crane" {
		t.Fatalf("services = %+v", home.Services)
	}
	if home.Services[2].Key != "mep" || home.Services[2].IconKey != "" {
		t.Fatalf("service without icon = %+v", home.Services[2])
	}
	if len(home.Projects) != 3 {
		t.Fatalf("projects = %d, want 3", len(home.Projects))
	}
	if len(home.TeamMembers) != 2 || home.TeamMembers[0].Name != "A" || home.TeamMembers[1].Resolved {
		t.Fatalf("team members = %+v", home.TeamMembers)
	}
}

func TestHomeProjectsAreCopies(t *testing.T) {
	t.Parallel()

	pages, store := newPageFixture(t, sampleDocument())
	home, err := pages.Home(content.LangEN)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	home.Projects[0].ImageURLs[0] = "changed.jpg"
	if store.Current().Document.Global.GalleryProjects[0].ImageURLs[0] != "t1.jpg" {
		t.Fatal("page view shares slices with the published document")
	}
}

func TestGalleryFilter(t *testing.T) {
	t.Parallel()

	pages, _ := newPageFixture(t, sampleDocument())

	cases := []struct {
		filter string
		want   int
	}{
		{"", 4},
		{"All", 4},
		{"buildings", 2},
		{"Villas", 1},
		{"Castles", 4},
	}
	for _, tc := range cases {
		view, err := pages.Gallery(content.LangEN, tc.filter)
		if err != nil {
			t.Fatalf("Gallery(%q): %v", tc.filter, err)
		}
		if len(view.Projects) != tc.want {
			t.Fatalf("Gallery(%q) = %d projects, want %d", tc.filter, len(view.Projects), tc.want)
		}
	}

	view, err := pages.Gallery(content.LangAR, "All")
	if err != nil {
		t.Fatalf("Gallery: %v", err)
	}
	if view.Projects[1].CategoryLabel != "فلل" {
		t.Fatalf("villa label = %q", view.Projects[1].CategoryLabel)
	}
	if view.Projects[2].CategoryLabel != "Warehouses" {
		t.Fatalf("unknown category label = %q", view.Projects[2].CategoryLabel)
	}
	if !view.Filters[0].Selected || view.Filters[1].Selected {
		t.Fatalf("filters = %+v", view.Filters)
	}
}

func TestGalleryEmptyState(t *testing.T) {
	t.Parallel()

	pages, _ := newPageFixture(t, content.EmptyDocument())
	view, err := pages.Gallery(content.LangEN, "Villas")
	if err != nil {
		t.Fatalf("Gallery: %v", err)
	}
	if view.EmptyState != "No projects found in this category." {
		t.Fatalf("empty state = %q", view.EmptyState)
	}
}

func TestProfileFallsBackToMessage(t *testing.T) {
	t.Parallel()

	pages, _ := newPageFixture(t, content.EmptyDocument())
	view, err := pages.Profile(content.LangEN)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if view.PDFURL != "" || view.NotFound != "PDF not available. Please contact administration." {
		t.Fatalf("profile = %+v", view)
	}

	doc := content.EmptyDocument()
	doc.Global.CompanyProfilePDFURL = "profile.pdf"
	pages, _ = newPageFixture(t, doc)
	view, err = pages.Profile(content.LangEN)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if view.PDFURL != "profile.pdf" || view.NotFound != "" {
		t.Fatalf("profile = %+v", view)
	}
}

func TestContactCarriesHoursAndMap(t *testing.T) {
	t.Parallel()

	pages, _ := newPageFixture(t, sampleDocument())
	view, err := pages.Contact(content.LangEN)
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	if len(view.WorkingHours) != 1 || view.Map.Lat != 25.2 || view.Form.Submit != "Send" {
		t.Fatalf("contact = %+v", view)
	}
}
