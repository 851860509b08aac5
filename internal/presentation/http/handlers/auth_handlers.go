package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin password form
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthHandlers opens and closes admin sessions
type AuthHandlers struct {
	authService *services.AuthService
	catalog     *i18n.Catalog
	sessionTTL  time.Duration
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, catalog *i18n.Catalog, sessionTTL time.Duration, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		catalog:     catalog,
		sessionTTL:  sessionTTL,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Login checks the admin password and returns a session id. The session id
// is also set as an HTTP-only cookie.
func (h *AuthHandlers) Login(c *gin.Context) {
	start := time.Now()
	h.logger.Auth().Debug("Received admin login request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": h.catalog.T(middleware.GetLanguage(c), "admin_login_error")})
			return
		}
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AdminSessionCookie, session.ID, int(h.sessionTTL.Seconds()), "/", "", false, true)

	h.logger.Auth().Info("Admin login request completed", "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"expiresAt": session.ExpiresAt(),
	})
}

// Logout closes the session and clears the cookie
func (h *AuthHandlers) Logout(c *gin.Context) {
	if id := middleware.SessionID(c); id != "" {
		h.authService.Logout(id)
	}
	c.SetCookie(middleware.AdminSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
