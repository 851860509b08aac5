package services

import (
	"strings"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
)

const (
	homeServiceCount   = 3
	homeProjectCount   = 3
	homeCoreValueCount = 4
)

// GalleryFilterAll selects every gallery project.
const GalleryFilterAll = "All"

// PageMeta is common to every page view.
type PageMeta struct {
	Lang    content.Language `json:"lang"`
	Dir     i18n.Direction   `json:"dir"`
	Title   string           `json:"title"`
	Version uint64           `json:"version"`
}

type NavItem struct {
	Key   string `json:"key"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

type SocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Aria    string `json:"aria"`
}

type FooterView struct {
	Tagline   string       `json:"tagline"`
	Address   string       `json:"address"`
	Phone1    string       `json:"phone1"`
	Phone2    string       `json:"phone2"`
	Email     string       `json:"email"`
	ContactUs string       `json:"contactUs"`
	FollowUs  string       `json:"followUs"`
	Copyright string       `json:"copyright"`
	Social    []SocialLink `json:"social"`
}

// ShellView is the layout shared by all pages: header, navigation and footer.
type ShellView struct {
	PageMeta
	LogoURL        string             `json:"logoUrl"`
	LogoText       [2]string          `json:"logoText"`
	ToggleLanguage string             `json:"toggleLanguageAria"`
	OpenMenu       string             `json:"openMenuAria"`
	Nav            []NavItem          `json:"nav"`
	Footer         FooterView         `json:"footer"`
	Languages      []content.Language `json:"languages"`
}

type HeroView struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	AriaLabel   string `json:"ariaLabel"`
	ProfileCTA  string `json:"profileCta"`
	ProjectsCTA string `json:"projectsCta"`
}

type CounterView struct {
	Projects   string `json:"projects"`
	Clients    string `json:"clients"`
	Experience string `json:"experience"`
}

type SectionText struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type HomeView struct {
	PageMeta
	Hero         HeroView                     `json:"hero"`
	AboutTitle   string                       `json:"aboutTitle"`
	AboutDesc    string                       `json:"aboutDesc"`
	Counters     CounterView                  `json:"counters"`
	ServicesText SectionText                  `json:"servicesText"`
	Services     []content.ResolvedService    `json:"services"`
	ProjectsCTA  string                       `json:"projectsCta"`
	Projects     []content.GalleryProject     `json:"projects"`
	ValuesText   SectionText                  `json:"valuesText"`
	CoreValues   []content.ResolvedCoreValue  `json:"coreValues"`
	TeamText     SectionText                  `json:"teamText"`
	TeamMembers  []content.ResolvedTeamMember `json:"teamMembers"`
	CTA          CTAView                      `json:"cta"`
}

type CTAView struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Button   string `json:"button"`
}

type ServicesView struct {
	PageMeta
	Heading  SectionText               `json:"heading"`
	Services []content.ResolvedService `json:"services"`
}

type titledText struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type ChairmanView struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

type AboutView struct {
	PageMeta
	Heading      SectionText                  `json:"heading"`
	HeroAria     string                       `json:"heroAria"`
	Intro        titledText                   `json:"intro"`
	Vision       titledText                   `json:"vision"`
	MissionTitle string                       `json:"missionTitle"`
	Mission      []string                     `json:"mission"`
	Chairman     ChairmanView                 `json:"chairman"`
	CoreValues   []content.ResolvedCoreValue  `json:"coreValues"`
	TeamText     SectionText                  `json:"teamText"`
	TeamMembers  []content.ResolvedTeamMember `json:"teamMembers"`
	QHSE         QHSEView                     `json:"qhse"`
}

type QHSEView struct {
	SectionText
	Health      titledText `json:"health"`
	Environment titledText `json:"environment"`
	Quality     titledText `json:"quality"`
}

type GalleryFilter struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type GalleryView struct {
	PageMeta
	Heading    SectionText          `json:"heading"`
	Filters    []GalleryFilter      `json:"filters"`
	Projects   []GalleryProjectView `json:"projects"`
	EmptyState string               `json:"emptyState,omitempty"`
	CloseAria  string               `json:"closeViewerAria"`
}

// GalleryProjectView is a project with its translated category label.
type GalleryProjectView struct {
	content.GalleryProject
	CategoryLabel string `json:"categoryLabel"`
}

type TeamView struct {
	PageMeta
	Heading    SectionText         `json:"heading"`
	Photos     []content.TeamPhoto `json:"photos"`
	EmptyState string              `json:"emptyState,omitempty"`
}

type ContactFormLabels struct {
	Title   string `json:"title"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Submit  string `json:"submit"`
}

type ContactView struct {
	PageMeta
	Heading           SectionText            `json:"heading"`
	InfoTitle         string                 `json:"infoTitle"`
	Phone1            string                 `json:"phone1"`
	Phone2            string                 `json:"phone2"`
	Email             string                 `json:"email"`
	Address           string                 `json:"address"`
	WorkingHoursTitle string                 `json:"workingHoursTitle"`
	WorkingHours      []content.WorkingHour  `json:"workingHours"`
	Map               content.MapCoordinates `json:"map"`
	Social            []SocialLink           `json:"social"`
	Form              ContactFormLabels      `json:"form"`
}

type ProfileView struct {
	PageMeta
	Heading       SectionText `json:"heading"`
	PDFURL        string      `json:"pdfUrl,omitempty"`
	DownloadLabel string      `json:"downloadLabel,omitempty"`
	NotFound      string      `json:"notFound,omitempty"`
}

// PageService builds the read-only page views from the published document.
type PageService struct {
	store   *stores.DocumentStore
	catalog *i18n.Catalog
}

// NewPageService creates a page service.
func NewPageService(store *stores.DocumentStore, catalog *i18n.Catalog) *PageService {
	return &PageService{store: store, catalog: catalog}
}

// LoadingMessage returns the text shown while content is unavailable.
func (s *PageService) LoadingMessage(lang content.Language) string {
	if s.store.Status().State == stores.StateFailed {
		return s.catalog.T(lang, "content_load_failed")
	}
	return s.catalog.T(lang, "content_loading")
}

// TranslationsView is the UI string table of one language.
type TranslationsView struct {
	Lang     content.Language  `json:"lang"`
	Dir      i18n.Direction    `json:"dir"`
	Messages map[string]string `json:"messages"`
}

// Translations returns the UI strings of lang. They do not depend on the
// loaded document, so they are served while content is still loading.
func (s *PageService) Translations(lang content.Language) *TranslationsView {
	return &TranslationsView{
		Lang:     lang,
		Dir:      s.catalog.Direction(lang),
		Messages: s.catalog.Messages(lang),
	}
}

type pageContext struct {
	snap *stores.DocumentSnapshot
	doc  *content.Document
	text content.GeneralText
	lang content.Language
	t    func(string) string
}

func (s *PageService) begin(lang content.Language) (*pageContext, error) {
	snap, err := currentSnapshot(s.store)
	if err != nil {
		return nil, err
	}
	l := snap.Document.Lang(lang)
	if l == nil {
		lang = i18n.DefaultLanguage
		l = snap.Document.Lang(lang)
	}
	return &pageContext{
		snap: snap,
		doc:  snap.Document,
		text: l.General,
		lang: lang,
		t:    func(key string) string { return s.catalog.T(lang, key) },
	}, nil
}

func (s *PageService) meta(pc *pageContext, titleKey string) PageMeta {
	return PageMeta{
		Lang:    pc.lang,
		Dir:     s.catalog.Direction(pc.lang),
		Title:   pc.t(titleKey),
		Version: pc.snap.Version,
	}
}

func socialLinks(pc *pageContext) []SocialLink {
	links := pc.doc.Global.SocialMediaLinks
	return []SocialLink{
		{Network: "whatsapp", URL: links.WhatsApp, Aria: pc.t("whatsapp_aria")},
		{Network: "instagram", URL: links.Instagram, Aria: pc.t("instagram_aria")},
		{Network: "facebook", URL: links.Facebook, Aria: pc.t("facebook_aria")},
	}
}

var navPages = []struct{ key, path string }{
	{"home", "/"},
	{"services", "/services"},
	{"about", "/about"},
	{"team", "/team"},
	{"gallery", "/gallery"},
	{"contact", "/contact"},
}

// Shell returns the layout view for lang.
func (s *PageService) Shell(lang content.Language) (*ShellView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}

	nav := make([]NavItem, 0, len(navPages))
	for _, p := range navPages {
		nav = append(nav, NavItem{Key: p.key, Path: p.path, Label: pc.t("nav_" + p.key)})
	}

	return &ShellView{
		PageMeta:       s.meta(pc, "title_home"),
		LogoURL:        pc.doc.Global.CompanyLogoURL,
		LogoText:       [2]string{pc.t("logo_text_part1"), pc.t("logo_text_part2")},
		ToggleLanguage: pc.t("toggle_language_aria"),
		OpenMenu:       pc.t("open_main_menu"),
		Nav:            nav,
		Footer: FooterView{
			Tagline:   pc.text.Get("footerTagline"),
			Address:   pc.text.Get("footerAddress"),
			Phone1:    pc.text.Get("contactPhone1"),
			Phone2:    pc.text.Get("contactPhone2"),
			Email:     pc.text.Get("contactEmail"),
			ContactUs: pc.t("footer_contact_us"),
			FollowUs:  pc.t("footer_follow_us"),
			Copyright: pc.t("footer_copyright"),
			Social:    socialLinks(pc),
		},
		Languages: content.Languages,
	}, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Home returns the landing page view for lang.
func (s *PageService) Home(lang content.Language) (*HomeView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	g := pc.text.Get

	projects := firstN(pc.doc.Global.GalleryProjects, homeProjectCount)
	for i := range projects {
		projects[i] = projects[i].Clone()
	}

	return &HomeView{
		PageMeta: s.meta(pc, "title_home"),
		Hero: HeroView{
			Title:       g("heroTitle"),
			Subtitle:    g("heroSubtitle"),
			AriaLabel:   pc.t("hero_aria_label"),
			ProfileCTA:  pc.t("hero_cta_profile"),
			ProjectsCTA: pc.t("hero_cta_projects"),
		},
		AboutTitle: g("homeAboutTitle"),
		AboutDesc:  g("homeAboutDesc"),
		Counters: CounterView{
			Projects:   g("counterProjects"),
			Clients:    g("counterClients"),
			Experience: g("counterExperience"),
		},
		ServicesText: SectionText{Title: g("homeServicesTitle"), Subtitle: g("homeServicesSubtitle")},
		Services:     firstN(pc.doc.Services(pc.lang), homeServiceCount),
		ProjectsCTA:  g("homeProjectsCta"),
		Projects:     projects,
		ValuesText:   SectionText{Title: g("homeValuesTitle"), Subtitle: g("homeValuesSubtitle")},
		CoreValues:   firstN(pc.doc.CoreValues(pc.lang), homeCoreValueCount),
		TeamText:     SectionText{Title: g("homeTeamTitle"), Subtitle: g("homeTeamSubtitle")},
		TeamMembers:  pc.doc.TeamMembers(pc.lang),
		CTA: CTAView{
			Title:    g("homeCtaTitle"),
			Subtitle: g("homeCtaSubtitle"),
			Button:   g("homeCtaButton"),
		},
	}, nil
}

// Services returns the services page view for lang.
func (s *PageService) Services(lang content.Language) (*ServicesView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	return &ServicesView{
		PageMeta: s.meta(pc, "title_services"),
		Heading:  SectionText{Title: pc.t("services_page_title"), Subtitle: pc.t("services_page_subtitle")},
		Services: pc.doc.Services(pc.lang),
	}, nil
}

// About returns the about page view for lang.
func (s *PageService) About(lang content.Language) (*AboutView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	g := pc.text.Get

	mission := make([]string, 0, 3)
	for _, field := range []string{"aboutMission1", "aboutMission2", "aboutMission3"} {
		if v := g(field); v != "" {
			mission = append(mission, v)
		}
	}

	return &AboutView{
		PageMeta:     s.meta(pc, "title_about"),
		Heading:      SectionText{Title: g("aboutPageTitle"), Subtitle: g("aboutPageSubtitle")},
		HeroAria:     pc.t("about_hero_aria"),
		Intro:        titledText{Title: g("aboutIntroTitle"), Desc: g("aboutIntroDesc")},
		Vision:       titledText{Title: g("aboutVisionTitle"), Desc: g("aboutVisionDesc")},
		MissionTitle: g("aboutMissionTitle"),
		Mission:      mission,
		Chairman: ChairmanView{
			Title:    g("aboutChairmanTitle"),
			Name:     g("aboutChairmanName"),
			Position: g("aboutChairmanPosition"),
			Message:  g("aboutChairmanMessage"),
		},
		CoreValues:  pc.doc.CoreValues(pc.lang),
		TeamText:    SectionText{Title: g("aboutTeamTitle"), Subtitle: g("aboutTeamSubtitle")},
		TeamMembers: pc.doc.TeamMembers(pc.lang),
		QHSE: QHSEView{
			SectionText: SectionText{Title: g("aboutQhseTitle"), Subtitle: g("aboutQhseSubtitle")},
			Health:      titledText{Title: g("aboutQhseHealthTitle"), Desc: g("aboutQhseHealthDesc")},
			Environment: titledText{Title: g("aboutQhseEnvTitle"), Desc: g("aboutQhseEnvDesc")},
			Quality:     titledText{Title: g("aboutQhseQualityTitle"), Desc: g("aboutQhseQualityDesc")},
		},
	}, nil
}

// NormalizeGalleryFilter maps a raw filter to All or a known category.
// Unknown values select All.
func NormalizeGalleryFilter(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, c := range []content.Category{content.CategoryBuildings, content.CategoryVillas} {
		if strings.EqualFold(raw, string(c)) {
			return string(c)
		}
	}
	return GalleryFilterAll
}

// Gallery returns the gallery view for lang filtered by category.
func (s *PageService) Gallery(lang content.Language, filter string) (*GalleryView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	filter = NormalizeGalleryFilter(filter)

	options := []string{GalleryFilterAll, string(content.CategoryBuildings), string(content.CategoryVillas)}
	filters := make([]GalleryFilter, 0, len(options))
	for _, opt := range options {
		filters = append(filters, GalleryFilter{
			Value:    opt,
			Label:    s.catalog.GalleryFilterLabel(pc.lang, opt),
			Selected: opt == filter,
		})
	}

	projects := make([]GalleryProjectView, 0, len(pc.doc.Global.GalleryProjects))
	for _, p := range pc.doc.Global.GalleryProjects {
		if filter != GalleryFilterAll && string(p.Category) != filter {
			continue
		}
		projects = append(projects, GalleryProjectView{
			GalleryProject: p.Clone(),
			CategoryLabel:  s.catalog.GalleryFilterLabel(pc.lang, string(p.Category)),
		})
	}

	view := &GalleryView{
		PageMeta:  s.meta(pc, "title_gallery"),
		Heading:   SectionText{Title: pc.t("gallery_page_title"), Subtitle: pc.t("gallery_page_subtitle")},
		Filters:   filters,
		Projects:  projects,
		CloseAria: pc.t("close_image_viewer"),
	}
	if len(projects) == 0 {
		view.EmptyState = pc.t("gallery_no_projects")
	}
	return view, nil
}

// Team returns the on-site team photos view for lang.
func (s *PageService) Team(lang content.Language) (*TeamView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	view := &TeamView{
		PageMeta: s.meta(pc, "title_team"),
		Heading:  SectionText{Title: pc.t("team_page_title"), Subtitle: pc.t("team_page_subtitle")},
		Photos:   append([]content.TeamPhoto{}, pc.doc.Global.TeamPhotos...),
	}
	if len(view.Photos) == 0 {
		view.EmptyState = pc.t("team_no_photos")
	}
	return view, nil
}

// Contact returns the contact page view for lang.
func (s *PageService) Contact(lang content.Language) (*ContactView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	g := pc.text.Get
	l := pc.doc.Lang(pc.lang)

	return &ContactView{
		PageMeta:          s.meta(pc, "title_contact"),
		Heading:           SectionText{Title: g("contactPageTitle"), Subtitle: g("contactPageSubtitle")},
		InfoTitle:         g("contactInfoTitle"),
		Phone1:            g("contactPhone1"),
		Phone2:            g("contactPhone2"),
		Email:             g("contactEmail"),
		Address:           g("footerAddress"),
		WorkingHoursTitle: g("contactWorkingHoursTitle"),
		WorkingHours:      append([]content.WorkingHour{}, l.WorkingHours...),
		Map:               pc.doc.Global.MapCoordinates,
		Social:            socialLinks(pc),
		Form: ContactFormLabels{
			Title:   pc.t("contact_form_title"),
			Name:    pc.t("contact_form_name"),
			Email:   pc.t("contact_form_email"),
			Subject: pc.t("contact_form_subject"),
			Message: pc.t("contact_form_message"),
			Submit:  pc.t("contact_form_submit"),
		},
	}, nil
}

// Profile returns the company profile view for lang.
func (s *PageService) Profile(lang content.Language) (*ProfileView, error) {
	pc, err := s.begin(lang)
	if err != nil {
		return nil, err
	}
	view := &ProfileView{
		PageMeta: s.meta(pc, "title_profile"),
		Heading:  SectionText{Title: pc.text.Get("profilePageTitle"), Subtitle: pc.text.Get("profilePageSubtitle")},
	}
	if url := strings.TrimSpace(pc.doc.Global.CompanyProfilePDFURL); url != "" {
		view.PDFURL = url
		view.DownloadLabel = pc.t("profile_download_button")
	} else {
		view.NotFound = pc.t("profile_pdf_not_found")
	}
	return view, nil
}
