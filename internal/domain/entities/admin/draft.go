// Package admin implements the editable draft of the site document: field and
// list mutations, staged edits of gallery projects and team photos, and the
// snapshot that is committed back on save.
package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
)

const defaultMemberImageURL = "https://picsum.photos/400/400?random="

var memberPlaceholders = map[content.Language]content.TeamMemberText{
	content.LangEN: {Name: "New Member", Title: "Title", Bio: "Bio"},
	content.LangAR: {Name: "عضو جديد", Title: "المنصب", Bio: "السيرة الذاتية"},
}

// ListName names the per-language lists that accept index-addressed updates.
type ListName string

const (
	ListServices     ListName = "services"
	ListWorkingHours ListName = "workingHours"
	ListTeamMembers  ListName = "teamMembers"
)

// Draft is a private copy of the document. Nothing it does is visible to
// readers of the shared document until Snapshot is committed.
type Draft struct {
	doc   *content.Document
	ids   *IDAllocator
	edits editState
}

// NewDraft deep-copies source into a new draft.
func NewDraft(source *content.Document) *Draft {
	doc := source.Clone()
	if doc == nil {
		doc = content.EmptyDocument()
	}
	doc.Normalize()
	return &Draft{doc: doc, ids: NewIDAllocator(doc)}
}

// Snapshot returns an independent copy of the draft document.
func (d *Draft) Snapshot() *content.Document {
	return d.doc.Clone()
}

func (d *Draft) lang(lang content.Language) (*content.LangContent, error) {
	l := d.doc.Lang(lang)
	if l == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return l, nil
}

// SetGlobalField replaces one scalar of the global record. Paths are
// companyLogoUrl, companyProfilePdfUrl, mapCoordinates.lat|lng and
// socialMediaLinks.whatsapp|instagram|facebook. Coordinates that do not
// parse are stored as 0.
func (d *Draft) SetGlobalField(path, value string) error {
	g := &d.doc.Global
	switch path {
	case "companyLogoUrl":
		g.CompanyLogoURL = value
	case "companyProfilePdfUrl":
		g.CompanyProfilePDFURL = value
	case "mapCoordinates.lat":
		g.MapCoordinates.Lat = parseCoordinate(value)
	case "mapCoordinates.lng":
		g.MapCoordinates.Lng = parseCoordinate(value)
	case "socialMediaLinks.whatsapp":
		g.SocialMediaLinks.WhatsApp = value
	case "socialMediaLinks.instagram":
		g.SocialMediaLinks.Instagram = value
	case "socialMediaLinks.facebook":
		g.SocialMediaLinks.Facebook = value
	default:
		return fmt.Errorf("%w: global %q", ErrUnknownField, path)
	}
	return nil
}

func parseCoordinate(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

// SetGeneralField replaces one general text value for lang.
func (d *Draft) SetGeneralField(lang content.Language, field, value string) error {
	l, err := d.lang(lang)
	if err != nil {
		return err
	}
	if !content.IsGeneralField(field) {
		return fmt.Errorf("%w: general %q", ErrUnknownField, field)
	}
	l.General[field] = value
	return nil
}

// UpdateService replaces the title or description of the service with key.
func (d *Draft) UpdateService(lang content.Language, key, field, value string) error {
	l, err := d.lang(lang)
	if err != nil {
		return err
	}
	for i := range l.Services {
		if l.Services[i].Key == key {
			return setServiceField(&l.Services[i], field, value)
		}
	}
	return fmt.Errorf("%w: service %q", ErrNotFound, key)
}

func setServiceField(s *content.Service, field, value string) error {
	switch field {
	case "title":
		s.Title = value
	case "description":
		s.Description = value
	default:
		return fmt.Errorf("%w: service %q", ErrUnknownField, field)
	}
	return nil
}

// UpdateWorkingHour replaces the day or time of the working hour with id.
func (d *Draft) UpdateWorkingHour(lang content.Language, id int64, field, value string) error {
	l, err := d.lang(lang)
	if err != nil {
		return err
	}
	for i := range l.WorkingHours {
		if l.WorkingHours[i].ID == id {
			return setWorkingHourField(&l.WorkingHours[i], field, value)
		}
	}
	return fmt.Errorf("%w: working hour %d", ErrNotFound, id)
}

func setWorkingHourField(h *content.WorkingHour, field, value string) error {
	switch field {
	case "day":
		h.Day = value
	case "time":
		h.Time = value
	default:
		return fmt.Errorf("%w: working hour %q", ErrUnknownField, field)
	}
	return nil
}

// UpdateTeamMemberText replaces the name, title or bio of member id in lang.
func (d *Draft) UpdateTeamMemberText(lang content.Language, id int64, field, value string) error {
	l, err := d.lang(lang)
	if err != nil {
		return err
	}
	for i := range l.TeamMembers {
		if l.TeamMembers[i].ID == id {
			return setTeamMemberField(&l.TeamMembers[i], field, value)
		}
	}
	return fmt.Errorf("%w: team member %d", ErrNotFound, id)
}

func setTeamMemberField(m *content.TeamMemberText, field, value string) error {
	switch field {
	case "name":
		m.Name = value
	case "title":
		m.Title = value
	case "bio":
		m.Bio = value
	default:
		return fmt.Errorf("%w: team member %q", ErrUnknownField, field)
	}
	return nil
}

// UpdateTeamMemberImage replaces the image of member id.
func (d *Draft) UpdateTeamMemberImage(id int64, imageURL string) error {
	members := d.doc.Global.TeamMembers
	for i := range members {
		if members[i].ID == id {
			members[i].ImageURL = imageURL
			return nil
		}
	}
	return fmt.Errorf("%w: team member %d", ErrNotFound, id)
}

// UpdateListItemAt updates one field of the element at position index of
// list in lang, after a bounds check. Field imageUrl on teamMembers writes the
// global image list at the same index instead of the language list.
func (d *Draft) UpdateListItemAt(lang content.Language, list ListName, index int, field, value string) error {
	l, err := d.lang(lang)
	if err != nil {
		return err
	}
	outOfRange := func(n int) error {
		return fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, list, index, n)
	}

	switch list {
	case ListServices:
		if index < 0 || index >= len(l.Services) {
			return outOfRange(len(l.Services))
		}
		return setServiceField(&l.Services[index], field, value)
	case ListWorkingHours:
		if index < 0 || index >= len(l.WorkingHours) {
			return outOfRange(len(l.WorkingHours))
		}
		return setWorkingHourField(&l.WorkingHours[index], field, value)
	case ListTeamMembers:
		if field == "imageUrl" {
			global := d.doc.Global.TeamMembers
			if index < 0 || index >= len(global) {
				return outOfRange(len(global))
			}
			global[index].ImageURL = value
			return nil
		}
		if index < 0 || index >= len(l.TeamMembers) {
			return outOfRange(len(l.TeamMembers))
		}
		return setTeamMemberField(&l.TeamMembers[index], field, value)
	default:
		return fmt.Errorf("%w: list %q", ErrUnknownField, list)
	}
}

// AddTeamMember appends one id-aligned record to the global, en and ar team
// lists and returns the new id.
func (d *Draft) AddTeamMember() int64 {
	id := d.ids.Next()
	d.doc.Global.TeamMembers = append(d.doc.Global.TeamMembers, content.TeamMemberImage{
		ID:       id,
		ImageURL: defaultMemberImageURL + strconv.FormatInt(id, 10),
	})
	for _, lang := range content.Languages {
		l := d.doc.Lang(lang)
		text := memberPlaceholders[lang]
		text.ID = id
		l.TeamMembers = append(l.TeamMembers, text)
	}
	return id
}

// DeleteTeamMember removes member id from all three team lists.
func (d *Draft) DeleteTeamMember(id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	var removed int
	d.doc.Global.TeamMembers, removed = removeByID(d.doc.Global.TeamMembers, id, func(m content.TeamMemberImage) int64 { return m.ID })
	for _, lang := range content.Languages {
		l := d.doc.Lang(lang)
		var n int
		l.TeamMembers, n = removeByID(l.TeamMembers, id, func(m content.TeamMemberText) int64 { return m.ID })
		removed += n
	}
	if removed == 0 {
		return fmt.Errorf("%w: team member %d", ErrNotFound, id)
	}
	return nil
}

func removeByID[T any](items []T, id int64, idOf func(T) int64) ([]T, int) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out, len(items) - len(out)
}

// NewProject is the add-project form.
type NewProject struct {
	Title         string           `json:"title"`
	Category      content.Category `json:"category"`
	Location      string           `json:"location"`
	CoverImageURL string           `json:"coverImageUrl"`
	ImageURLs     string           `json:"imageUrls"`
}

// AddGalleryProject validates form and appends it with a fresh id. An empty
// category defaults to Buildings.
func (d *Draft) AddGalleryProject(form NewProject) (content.GalleryProject, error) {
	if form.Category == "" {
		form.Category = content.CategoryBuildings
	}
	project := content.GalleryProject{
		Title:         strings.TrimSpace(form.Title),
		Category:      form.Category,
		Location:      strings.TrimSpace(form.Location),
		CoverImageURL: strings.TrimSpace(form.CoverImageURL),
		ImageURLs:     ParseImageURLs(form.ImageURLs),
	}
	if err := validateProject(project, true); err != nil {
		return content.GalleryProject{}, err
	}

	project.ID = d.ids.Next()
	d.doc.Global.GalleryProjects = append(d.doc.Global.GalleryProjects, project)
	return project.Clone(), nil
}

func validateProject(p content.GalleryProject, requireText bool) error {
	if requireText {
		switch {
		case p.Title == "":
			return fmt.Errorf("%w: title is required", ErrValidation)
		case p.Location == "":
			return fmt.Errorf("%w: location is required", ErrValidation)
		case p.CoverImageURL == "":
			return fmt.Errorf("%w: cover image is required", ErrValidation)
		}
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}
	if len(p.ImageURLs) == 0 {
		return fmt.Errorf("%w: at least one image url is required", ErrValidation)
	}
	return nil
}

// DeleteGalleryProject removes project id. A staged edit of the same project
// is discarded.
func (d *Draft) DeleteGalleryProject(id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	var removed int
	d.doc.Global.GalleryProjects, removed = removeByID(d.doc.Global.GalleryProjects, id, func(p content.GalleryProject) int64 { return p.ID })
	if removed == 0 {
		return fmt.Errorf("%w: gallery project %d", ErrNotFound, id)
	}
	if d.edits.project != nil && d.edits.project.Project.ID == id {
		d.edits.project = nil
	}
	return nil
}

// NewTeamPhoto is the add-photo form.
type NewTeamPhoto struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

// AddTeamPhoto validates form and appends it with a fresh id.
func (d *Draft) AddTeamPhoto(form NewTeamPhoto) (content.TeamPhoto, error) {
	photo := content.TeamPhoto{
		Title:    strings.TrimSpace(form.Title),
		ImageURL: strings.TrimSpace(form.ImageURL),
	}
	if err := validatePhoto(photo); err != nil {
		return content.TeamPhoto{}, err
	}
	photo.ID = d.ids.Next()
	d.doc.Global.TeamPhotos = append(d.doc.Global.TeamPhotos, photo)
	return photo, nil
}

func validatePhoto(p content.TeamPhoto) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if p.ImageURL == "" {
		return fmt.Errorf("%w: image url is required", ErrValidation)
	}
	return nil
}

// DeleteTeamPhoto removes photo id. A staged edit of the same photo is discarded.
func (d *Draft) DeleteTeamPhoto(id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	var removed int
	d.doc.Global.TeamPhotos, removed = removeByID(d.doc.Global.TeamPhotos, id, func(p content.TeamPhoto) int64 { return p.ID })
	if removed == 0 {
		return fmt.Errorf("%w: team photo %d", ErrNotFound, id)
	}
	if d.edits.photo != nil && d.edits.photo.ID == id {
		d.edits.photo = nil
	}
	return nil
}
