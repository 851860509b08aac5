package admin

import (
	"fmt"
	"strings"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
)

// EditMode is the state of a staged-edit collection.
type EditMode string

const (
	Browsing EditMode = "browsing"
	Editing  EditMode = "editing"
)

// ProjectEdit is a staged copy of one gallery project. Its image list is held
// as editable text until the edit is committed.
type ProjectEdit struct {
	Project   content.GalleryProject `json:"project"`
	ImageURLs string                 `json:"imageUrls"`
}

// EditStatus reports the state of one staged-edit collection.
type EditStatus struct {
	Mode EditMode `json:"mode"`
	ID   int64    `json:"id,omitempty"`
}

type editState struct {
	project *ProjectEdit
	photo   *content.TeamPhoto
}

// ProjectEditStatus reports whether a gallery project edit is staged.
func (d *Draft) ProjectEditStatus() EditStatus {
	if d.edits.project == nil {
		return EditStatus{Mode: Browsing}
	}
	return EditStatus{Mode: Editing, ID: d.edits.project.Project.ID}
}

// PhotoEditStatus reports whether a team photo edit is staged.
func (d *Draft) PhotoEditStatus() EditStatus {
	if d.edits.photo == nil {
		return EditStatus{Mode: Browsing}
	}
	return EditStatus{Mode: Editing, ID: d.edits.photo.ID}
}

// BeginProjectEdit stages a copy of project id. Any previously staged project
// edit is replaced.
func (d *Draft) BeginProjectEdit(id int64) (ProjectEdit, error) {
	for _, p := range d.doc.Global.GalleryProjects {
		if p.ID == id {
			staged := &ProjectEdit{Project: p.Clone(), ImageURLs: FormatImageURLs(p.ImageURLs)}
			staged.Project.ImageURLs = nil
			d.edits.project = staged
			return *staged, nil
		}
	}
	return ProjectEdit{}, fmt.Errorf("%w: gallery project %d", ErrNotFound, id)
}

// StagedProject returns the staged project edit.
func (d *Draft) StagedProject() (ProjectEdit, error) {
	if d.edits.project == nil {
		return ProjectEdit{}, ErrNotEditing
	}
	return *d.edits.project, nil
}

// SetProjectEditField changes one field of the staged project.
func (d *Draft) SetProjectEditField(field, value string) error {
	staged := d.edits.project
	if staged == nil {
		return ErrNotEditing
	}
	switch field {
	case "title":
		staged.Project.Title = value
	case "category":
		staged.Project.Category = content.Category(value)
	case "location":
		staged.Project.Location = value
	case "coverImageUrl":
		staged.Project.CoverImageURL = value
	case "imageUrls":
		staged.ImageURLs = value
	default:
		return fmt.Errorf("%w: gallery project %q", ErrUnknownField, field)
	}
	return nil
}

// CommitProjectEdit validates the staged project and replaces the stored one
// by id. On validation failure the staged copy is kept so it can be corrected.
func (d *Draft) CommitProjectEdit() (content.GalleryProject, error) {
	staged := d.edits.project
	if staged == nil {
		return content.GalleryProject{}, ErrNotEditing
	}

	project := staged.Project.Clone()
	project.Title = strings.TrimSpace(project.Title)
	project.Location = strings.TrimSpace(project.Location)
	project.CoverImageURL = strings.TrimSpace(project.CoverImageURL)
	project.ImageURLs = ParseImageURLs(staged.ImageURLs)
	if err := validateProject(project, true); err != nil {
		return content.GalleryProject{}, err
	}

	projects := d.doc.Global.GalleryProjects
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			d.edits.project = nil
			return project.Clone(), nil
		}
	}
	d.edits.project = nil
	return content.GalleryProject{}, fmt.Errorf("%w: gallery project %d", ErrNotFound, project.ID)
}

// CancelProjectEdit discards the staged project without touching the draft.
func (d *Draft) CancelProjectEdit() {
	d.edits.project = nil
}

// BeginPhotoEdit stages a copy of photo id.
func (d *Draft) BeginPhotoEdit(id int64) (content.TeamPhoto, error) {
	for _, p := range d.doc.Global.TeamPhotos {
		if p.ID == id {
			staged := p
			d.edits.photo = &staged
			return staged, nil
		}
	}
	return content.TeamPhoto{}, fmt.Errorf("%w: team photo %d", ErrNotFound, id)
}

// StagedPhoto returns the staged team photo edit.
func (d *Draft) StagedPhoto() (content.TeamPhoto, error) {
	if d.edits.photo == nil {
		return content.TeamPhoto{}, ErrNotEditing
	}
	return *d.edits.photo, nil
}

// SetPhotoEditField changes one field of the staged photo.
func (d *Draft) SetPhotoEditField(field, value string) error {
	staged := d.edits.photo
	if staged == nil {
		return ErrNotEditing
	}
	switch field {
	case "title":
		staged.Title = value
	case "imageUrl":
		staged.ImageURL = value
	default:
		return fmt.Errorf("%w: team photo %q", ErrUnknownField, field)
	}
	return nil
}

// CommitPhotoEdit validates the staged photo and replaces the stored one by id.
func (d *Draft) CommitPhotoEdit() (content.TeamPhoto, error) {
	staged := d.edits.photo
	if staged == nil {
		return content.TeamPhoto{}, ErrNotEditing
	}

	photo := content.TeamPhoto{
		ID:       staged.ID,
		Title:    strings.TrimSpace(staged.Title),
		ImageURL: strings.TrimSpace(staged.ImageURL),
	}
	if err := validatePhoto(photo); err != nil {
		return content.TeamPhoto{}, err
	}

	photos := d.doc.Global.TeamPhotos
	for i := range photos {
		if photos[i].ID == photo.ID {
			photos[i] = photo
			d.edits.photo = nil
			return photo, nil
		}
	}
	d.edits.photo = nil
	return content.TeamPhoto{}, fmt.Errorf("%w: team photo %d", ErrNotFound, photo.ID)
}

// CancelPhotoEdit discards the staged photo without touching the draft.
func (d *Draft) CancelPhotoEdit() {
	d.edits.photo = nil
}
