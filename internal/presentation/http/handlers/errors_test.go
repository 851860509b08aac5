package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/remote"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: title is required", admin.ErrValidation), http.StatusUnprocessableEntity},
		{admin.ErrIndexOutOfRange, http.StatusBadRequest},
		{services.ErrInvalidInquiry, http.StatusBadRequest},
		{fmt.Errorf("%w: team member 9", admin.ErrNotFound), http.StatusNotFound},
		{admin.ErrConfirmationRequired, http.StatusConflict},
		{admin.ErrNotEditing, http.StatusConflict},
		{services.ErrSessionNotFound, http.StatusUnauthorized},
		{services.ErrAdminDisabled, http.StatusForbidden},
		{fmt.Errorf("%w: timeout", services.ErrContentUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("failed to publish: %w", &remote.StatusError{Key: "en", Status: http.StatusBadRequest}), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
