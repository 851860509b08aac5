package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// PageHandlers serves the read-only page views
type PageHandlers struct {
	pageService *services.PageService
	documents   *stores.DocumentStore
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(pageService *services.PageService, documents *stores.DocumentStore, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		pageService: pageService,
		documents:   documents,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

type pageBuilder func(lang content.Language) (any, error)

func (h *PageHandlers) serve(c *gin.Context, page string, build pageBuilder) {
	start := time.Now()
	lang := middleware.GetLanguage(c)
	h.logger.Content().Debug("Received page request", "page", page, "lang", lang, "path", c.Request.URL.Path)

	marker := h.perfTracker.StartOperation("get_page_"+page, string(lang))
	defer marker.Complete()

	view, err := build(lang)
	if err != nil {
		marker.SetError(err)
		if errors.Is(err, services.ErrContentUnavailable) {
			status := h.documents.Status()
			c.Header("Retry-After", "5")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"loading": status.State == stores.StateLoading,
				"error":   h.pageService.LoadingMessage(lang),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Info("Page request completed", "page", page, "lang", lang, "duration", time.Since(start))
	c.JSON(http.StatusOK, view)
}

// GetShell returns the header, navigation and footer
func (h *PageHandlers) GetShell(c *gin.Context) {
	h.serve(c, "shell", func(lang content.Language) (any, error) { return h.pageService.Shell(lang) })
}

// GetHome returns the landing page
func (h *PageHandlers) GetHome(c *gin.Context) {
	h.serve(c, "home", func(lang content.Language) (any, error) { return h.pageService.Home(lang) })
}

// GetServices returns the services page
func (h *PageHandlers) GetServices(c *gin.Context) {
	h.serve(c, "services", func(lang content.Language) (any, error) { return h.pageService.Services(lang) })
}

// GetAbout returns the about page
func (h *PageHandlers) GetAbout(c *gin.Context) {
	h.serve(c, "about", func(lang content.Language) (any, error) { return h.pageService.About(lang) })
}

// GetGallery returns the gallery filtered by ?category=
func (h *PageHandlers) GetGallery(c *gin.Context) {
	filter := c.Query("category")
	h.serve(c, "gallery", func(lang content.Language) (any, error) { return h.pageService.Gallery(lang, filter) })
}

// GetTeam returns the on-site team photos
func (h *PageHandlers) GetTeam(c *gin.Context) {
	h.serve(c, "team", func(lang content.Language) (any, error) { return h.pageService.Team(lang) })
}

// GetContact returns the contact page
func (h *PageHandlers) GetContact(c *gin.Context) {
	h.serve(c, "contact", func(lang content.Language) (any, error) { return h.pageService.Contact(lang) })
}

// GetProfile returns the company profile page
func (h *PageHandlers) GetProfile(c *gin.Context) {
	h.serve(c, "profile", func(lang content.Language) (any, error) { return h.pageService.Profile(lang) })
}

// GetTranslations returns the UI strings of the request language
func (h *PageHandlers) GetTranslations(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, h.pageService.Translations(lang))
}
