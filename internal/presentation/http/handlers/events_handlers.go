package handlers

import (
	"fmt"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/messaging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/server"
	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 30 * time.Second

// EventsHandlers streams content version changes to page viewers
type EventsHandlers struct {
	broadcaster messaging.Broadcaster
	documents   *stores.DocumentStore
	logger      *logging.ChanneledLogger
	heartbeat   time.Duration
}

// NewEventsHandlers creates events handlers with injected dependencies
func NewEventsHandlers(broadcaster messaging.Broadcaster, documents *stores.DocumentStore, logger *logging.ChanneledLogger) *EventsHandlers {
	return &EventsHandlers{
		broadcaster: broadcaster,
		documents:   documents,
		logger:      logger,
		heartbeat:   heartbeatInterval,
	}
}

// GetEvents holds an SSE stream open. The first message carries the current
// version; a content_updated event follows every replacement of the document.
// The stream outlives the server write timeout.
func (h *EventsHandlers) GetEvents(c *gin.Context) {
	if err := server.ClearWriteDeadline(c.Request); err != nil {
		h.logger.Content().Warn("SSE stream keeps server write timeout", "error", err.Error())
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ch := h.broadcaster.AddClient()
	defer h.broadcaster.RemoveClient(ch)

	status := h.documents.Status()
	connected := fmt.Sprintf("event: connected\ndata: {\"version\":%d,\"state\":%q}\n\n", status.Version, status.State)
	if _, err := c.Writer.WriteString(connected); err != nil {
		return
	}
	c.Writer.Flush()

	clientCtx := c.Request.Context()
	h.logger.Content().Info("SSE connection established", "totalConnections", h.broadcaster.ConnectionCount())

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	connectionStart := time.Now()
	for {
		select {
		case <-clientCtx.Done():
			h.logger.Content().Info("SSE client disconnected", "connectionDuration", time.Since(connectionStart))
			return

		case message, ok := <-ch:
			if !ok {
				return
			}
			if _, err := c.Writer.WriteString(message); err != nil {
				h.logger.Content().Error("SSE write failed", "error", err.Error())
				return
			}
			c.Writer.Flush()

		case <-ticker.C:
			heartbeat := fmt.Sprintf("data: {\"type\":\"heartbeat\",\"timestamp\":\"%s\"}\n\n", time.Now().UTC().Format(time.RFC3339))
			if _, err := c.Writer.WriteString(heartbeat); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
