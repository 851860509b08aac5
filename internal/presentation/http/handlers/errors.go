// Package handlers provides the HTTP handlers of the site API and the content
// store.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/remote"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain and service errors onto HTTP statuses.
func statusFor(err error) int {
	var remoteErr *remote.StatusError
	switch {
	case errors.Is(err, admin.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, admin.ErrIndexOutOfRange),
		errors.Is(err, admin.ErrUnknownField),
		errors.Is(err, admin.ErrUnsupportedLanguage),
		errors.Is(err, services.ErrInvalidInquiry),
		errors.Is(err, services.ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, admin.ErrNotFound),
		errors.Is(err, services.ErrUnknownRecord),
		errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, admin.ErrNotEditing),
		errors.Is(err, admin.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAdminDisabled):
		return http.StatusForbidden
	case errors.Is(err, services.ErrContentUnavailable),
		errors.Is(err, services.ErrPublishDisabled):
		return http.StatusServiceUnavailable
	case errors.As(err, &remoteErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}
