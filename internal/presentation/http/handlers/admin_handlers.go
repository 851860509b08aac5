package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// FieldUpdateRequest sets one field to a string value
type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// GlobalUpdateRequest sets one language-invariant value by path
type GlobalUpdateRequest struct {
	Path  string `json:"path" binding:"required"`
	Value string `json:"value"`
}

// ImageUpdateRequest replaces a team member image
type ImageUpdateRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// AdminHandlers exposes the draft editor of an admin session
type AdminHandlers struct {
	adminService *services.AdminService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewAdminHandlers creates admin handlers with injected dependencies
func NewAdminHandlers(adminService *services.AdminService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AdminHandlers {
	return &AdminHandlers{
		adminService: adminService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

func (h *AdminHandlers) sessionID(c *gin.Context) string {
	if session, ok := middleware.GetAdminSession(c); ok {
		return session.ID
	}
	return middleware.SessionID(c)
}

// mutate applies fn to the session draft and answers with the editor state.
func (h *AdminHandlers) mutate(c *gin.Context, operation string, fn func(d *admin.Draft) error) {
	start := time.Now()
	h.logger.Admin().Debug("Received draft request", "operation", operation, "method", c.Request.Method, "path", c.Request.URL.Path)

	id := h.sessionID(c)
	if err := h.adminService.Mutate(id, middleware.GetLanguage(c), operation, fn); err != nil {
		status := statusFor(err)
		body := gin.H{"error": err.Error()}
		if view, viewErr := h.adminService.View(id); viewErr == nil && view.Notice != nil {
			body["notice"] = view.Notice
		}
		c.JSON(status, body)
		return
	}

	h.respondView(c, id, operation, start)
}

func (h *AdminHandlers) respondView(c *gin.Context, id, operation string, start time.Time) {
	view, err := h.adminService.View(id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.logger.Admin().Info("Draft request completed", "operation", operation, "duration", time.Since(start))
	c.JSON(http.StatusOK, view)
}

func bindField(c *gin.Context) (FieldUpdateRequest, bool) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return req, false
	}
	return req, true
}

func pathLanguage(c *gin.Context) content.Language {
	return content.Language(c.Param("lang"))
}

// GetDraft returns the editor state of the session
func (h *AdminHandlers) GetDraft(c *gin.Context) {
	h.respondView(c, h.sessionID(c), "get_draft", time.Now())
}

// UpdateGlobal sets a logo, PDF, coordinate or social link value
func (h *AdminHandlers) UpdateGlobal(c *gin.Context) {
	var req GlobalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	h.mutate(c, "update_global", func(d *admin.Draft) error {
		return d.SetGlobalField(req.Path, req.Value)
	})
}

// UpdateGeneral sets one general text field of a language
func (h *AdminHandlers) UpdateGeneral(c *gin.Context) {
	req, ok := bindField(c)
	if !ok {
		return
	}
	lang := pathLanguage(c)
	h.mutate(c, "update_general", func(d *admin.Draft) error {
		return d.SetGeneralField(lang, req.Field, req.Value)
	})
}

// UpdateService sets one field of the service with :key
func (h *AdminHandlers) UpdateService(c *gin.Context) {
	req, ok := bindField(c)
	if !ok {
		return
	}
	lang, key := pathLanguage(c), c.Param("key")
	h.mutate(c, "update_service", func(d *admin.Draft) error {
		return d.UpdateService(lang, key, req.Field, req.Value)
	})
}

// UpdateWorkingHour sets one field of the working hour with :id
func (h *AdminHandlers) UpdateWorkingHour(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req, ok := bindField(c)
	if !ok {
		return
	}
	lang := pathLanguage(c)
	h.mutate(c, "update_working_hour", func(d *admin.Draft) error {
		return d.UpdateWorkingHour(lang, id, req.Field, req.Value)
	})
}

// UpdateTeamMemberText sets the name, title or bio of team member :id
func (h *AdminHandlers) UpdateTeamMemberText(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req, ok := bindField(c)
	if !ok {
		return
	}
	lang := pathLanguage(c)
	h.mutate(c, "update_team_member", func(d *admin.Draft) error {
		return d.UpdateTeamMemberText(lang, id, req.Field, req.Value)
	})
}

// UpdateListItem sets one field of the element at :index of :list
func (h *AdminHandlers) UpdateListItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	req, ok := bindField(c)
	if !ok {
		return
	}
	lang, list := pathLanguage(c), admin.ListName(c.Param("list"))
	h.mutate(c, "update_list_item", func(d *admin.Draft) error {
		return d.UpdateListItemAt(lang, list, index, req.Field, req.Value)
	})
}

// UpdateTeamMemberImage replaces the image of team member :id
func (h *AdminHandlers) UpdateTeamMemberImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ImageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	h.mutate(c, "update_team_member_image", func(d *admin.Draft) error {
		return d.UpdateTeamMemberImage(id, req.ImageURL)
	})
}

// AddTeamMember appends a placeholder member to all three team lists
func (h *AdminHandlers) AddTeamMember(c *gin.Context) {
	h.mutate(c, "add_team_member", func(d *admin.Draft) error {
		d.AddTeamMember()
		return nil
	})
}

// DeleteTeamMember removes team member :id; requires confirm=true
func (h *AdminHandlers) DeleteTeamMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	confirm := confirmed(c)
	h.mutate(c, "delete_team_member", func(d *admin.Draft) error {
		return d.DeleteTeamMember(id, confirm)
	})
}

// AddGalleryProject validates and appends a gallery project
func (h *AdminHandlers) AddGalleryProject(c *gin.Context) {
	var form admin.NewProject
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	h.mutate(c, "add_gallery_project", func(d *admin.Draft) error {
		_, err := d.AddGalleryProject(form)
		return err
	})
}

// BeginProjectEdit stages gallery project :id for editing
func (h *AdminHandlers) BeginProjectEdit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.mutate(c, "begin_project_edit", func(d *admin.Draft) error {
		_, err := d.BeginProjectEdit(id)
		return err
	})
}

// UpdateStagedProject sets one field of the staged gallery project
func (h *AdminHandlers) UpdateStagedProject(c *gin.Context) {
	req, ok := bindField(c)
	if !ok {
		return
	}
	h.mutate(c, "update_staged_project", func(d *admin.Draft) error {
		return d.SetProjectEditField(req.Field, req.Value)
	})
}

// CommitProjectEdit validates the staged project and stores it
func (h *AdminHandlers) CommitProjectEdit(c *gin.Context) {
	h.mutate(c, "commit_project_edit", func(d *admin.Draft) error {
		_, err := d.CommitProjectEdit()
		return err
	})
}

// CancelProjectEdit discards the staged project
func (h *AdminHandlers) CancelProjectEdit(c *gin.Context) {
	h.mutate(c, "cancel_project_edit", func(d *admin.Draft) error {
		d.CancelProjectEdit()
		return nil
	})
}

// DeleteGalleryProject removes gallery project :id; requires confirm=true
func (h *AdminHandlers) DeleteGalleryProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	confirm := confirmed(c)
	h.mutate(c, "delete_gallery_project", func(d *admin.Draft) error {
		return d.DeleteGalleryProject(id, confirm)
	})
}

// AddTeamPhoto validates and appends a team photo
func (h *AdminHandlers) AddTeamPhoto(c *gin.Context) {
	var form admin.NewTeamPhoto
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	h.mutate(c, "add_team_photo", func(d *admin.Draft) error {
		_, err := d.AddTeamPhoto(form)
		return err
	})
}

// BeginPhotoEdit stages team photo :id for editing
func (h *AdminHandlers) BeginPhotoEdit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.mutate(c, "begin_photo_edit", func(d *admin.Draft) error {
		_, err := d.BeginPhotoEdit(id)
		return err
	})
}

// UpdateStagedPhoto sets one field of the staged team photo
func (h *AdminHandlers) UpdateStagedPhoto(c *gin.Context) {
	req, ok := bindField(c)
	if !ok {
		return
	}
	h.mutate(c, "update_staged_photo", func(d *admin.Draft) error {
		return d.SetPhotoEditField(req.Field, req.Value)
	})
}

// CommitPhotoEdit validates the staged photo and stores it
func (h *AdminHandlers) CommitPhotoEdit(c *gin.Context) {
	h.mutate(c, "commit_photo_edit", func(d *admin.Draft) error {
		_, err := d.CommitPhotoEdit()
		return err
	})
}

// CancelPhotoEdit discards the staged photo
func (h *AdminHandlers) CancelPhotoEdit(c *gin.Context) {
	h.mutate(c, "cancel_photo_edit", func(d *admin.Draft) error {
		d.CancelPhotoEdit()
		return nil
	})
}

// DeleteTeamPhoto removes team photo :id; requires confirm=true
func (h *AdminHandlers) DeleteTeamPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	confirm := confirmed(c)
	h.mutate(c, "delete_team_photo", func(d *admin.Draft) error {
		return d.DeleteTeamPhoto(id, confirm)
	})
}

// Save commits the draft into the shared document
func (h *AdminHandlers) Save(c *gin.Context) {
	start := time.Now()
	h.logger.Admin().Debug("Received save request", "method", c.Request.Method, "path", c.Request.URL.Path)
	id := h.sessionID(c)

	if _, err := h.adminService.Save(id, middleware.GetLanguage(c)); err != nil {
		respondError(c, err)
		return
	}
	h.respondView(c, id, "save", start)
}

// Publish writes the shared document back to the content store
func (h *AdminHandlers) Publish(c *gin.Context) {
	start := time.Now()
	h.logger.Admin().Debug("Received publish request", "method", c.Request.Method, "path", c.Request.URL.Path)
	id := h.sessionID(c)

	if _, err := h.adminService.Publish(c.Request.Context(), id, middleware.GetLanguage(c)); err != nil {
		respondError(c, err)
		return
	}
	h.respondView(c, id, "publish", start)
}

// Discard re-clones the draft from the shared document
func (h *AdminHandlers) Discard(c *gin.Context) {
	start := time.Now()
	id := h.sessionID(c)

	if err := h.adminService.Discard(id); err != nil {
		respondError(c, err)
		return
	}
	h.respondView(c, id, "discard", start)
}
