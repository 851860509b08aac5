package handlers

import (
	"net/http"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ContactHandlers accepts contact form submissions
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

// NewContactHandlers creates contact handlers with injected dependencies
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger) *ContactHandlers {
	return &ContactHandlers{contactService: contactService, logger: logger}
}

// Submit validates and delivers a contact inquiry
func (h *ContactHandlers) Submit(c *gin.Context) {
	start := time.Now()
	h.logger.Email().Debug("Received contact request", "method", c.Request.Method, "path", c.Request.URL.Path, "requestId", middleware.GetRequestID(c))

	var form services.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := h.contactService.Submit(form, middleware.GetLanguage(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Email().Info("Contact request completed", "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
