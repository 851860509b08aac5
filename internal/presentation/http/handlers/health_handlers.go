package handlers

import (
	"net/http"

	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/messaging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// HealthHandlers reports loader state and performance counters
type HealthHandlers struct {
	documents   *stores.DocumentStore
	sessions    *stores.SessionsStore
	broadcaster messaging.Broadcaster
	perfTracker *performance.Tracker
}

// NewHealthHandlers creates health handlers. documents, sessions and
// broadcaster may be nil for the content store service.
func NewHealthHandlers(documents *stores.DocumentStore, sessions *stores.SessionsStore, broadcaster messaging.Broadcaster, perfTracker *performance.Tracker) *HealthHandlers {
	return &HealthHandlers{documents: documents, sessions: sessions, broadcaster: broadcaster, perfTracker: perfTracker}
}

// GetHealth answers 200 with the current state. The status field is "ok"
// once content is loaded, "loading" before and "degraded" after a failure.
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	body := gin.H{
		"status":      "ok",
		"performance": h.perfTracker.Snapshot(),
	}

	if h.documents != nil {
		status := h.documents.Status()
		body["content"] = gin.H{
			"loading":  status.State == stores.StateLoading,
			"state":    status.State,
			"error":    status.LastError,
			"version":  status.Version,
			"loadedAt": status.UpdatedAt,
		}
		switch {
		case status.State == stores.StateLoading:
			body["status"] = "loading"
		case status.State == stores.StateFailed || status.LastError != "":
			body["status"] = "degraded"
		}
	}
	if h.sessions != nil {
		body["adminSessions"] = h.sessions.Count()
	}
	if h.broadcaster != nil {
		body["eventClients"] = h.broadcaster.ConnectionCount()
	}

	c.JSON(http.StatusOK, body)
}
