package services

import (
	"errors"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/security"
)

var (
	// ErrInvalidPassword is returned when the submitted password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAdminDisabled is returned when no admin password is configured.
	ErrAdminDisabled = errors.New("admin editing is disabled")
)

// AuthService gates the admin editor behind the configured password. The
// gate is a convenience for the editor UI and is not access control.
type AuthService struct {
	password    string
	admin       *AdminService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthService creates an auth service. password may be a bcrypt hash or
// a plain string; an empty password disables login.
func NewAuthService(password string, adminService *AdminService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthService {
	if password != "" && !security.IsBcryptHash(password) {
		logger.Auth().Warn("ADMIN_PASSWORD is stored in plain text; a bcrypt hash is preferred")
	}
	return &AuthService{
		password:    password,
		admin:       adminService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Login checks password and opens an admin session.
func (a *AuthService) Login(password string) (*admin.Session, error) {
	start := time.Now()
	marker := a.perfTracker.StartOperation("admin_login", "auth")
	defer marker.Complete()

	if a.password == "" {
		marker.SetError(ErrAdminDisabled)
		a.logger.LogAuthOperation("login", "", false)
		return nil, ErrAdminDisabled
	}
	if !security.ComparePassword(a.password, password) {
		marker.SetError(ErrInvalidPassword)
		a.logger.LogAuthOperation("login", "", false)
		return nil, ErrInvalidPassword
	}

	session, err := a.admin.OpenSession()
	if err != nil {
		marker.SetError(err)
		a.logger.LogAuthOperation("login", "", false)
		return nil, err
	}

	marker.SetSuccess(true)
	a.logger.LogAuthOperation("login", session.ID, true)
	a.logger.Auth().Info("Admin login completed", "duration", time.Since(start))
	return session, nil
}

// Logout closes the session.
func (a *AuthService) Logout(sessionID string) {
	a.admin.CloseSession(sessionID)
	a.logger.LogAuthOperation("logout", sessionID, true)
}
