package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

const maxRecordBytes = 8 << 20

// RecordHandlers serves the content store records
type RecordHandlers struct {
	recordService *services.RecordService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewRecordHandlers creates record handlers with injected dependencies
func NewRecordHandlers(recordService *services.RecordService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *RecordHandlers {
	return &RecordHandlers{recordService: recordService, logger: logger, perfTracker: perfTracker}
}

// GetRecord returns the raw JSON body of record :key
func (h *RecordHandlers) GetRecord(c *gin.Context) {
	start := time.Now()
	key := c.Param("key")
	h.logger.Database().Debug("Received get record request", "key", key)

	marker := h.perfTracker.StartOperation("get_record_request", key)
	defer marker.Complete()

	record, err := h.recordService.Get(c.Request.Context(), key)
	if err != nil {
		marker.SetError(err)
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Database().Info("Get record request completed", "key", key, "duration", time.Since(start))
	c.Header("Last-Modified", record.UpdatedAt.UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, "application/json; charset=utf-8", record.Body)
}

// ListRecords returns the stored keys and their update times
func (h *RecordHandlers) ListRecords(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]gin.H, 0, len(records))
	for _, r := range records {
		items = append(items, gin.H{"key": r.Key, "updatedAt": r.UpdatedAt, "bytes": len(r.Body)})
	}
	c.JSON(http.StatusOK, gin.H{"records": items, "count": len(items)})
}

// PutRecord replaces record :key with the request body
func (h *RecordHandlers) PutRecord(c *gin.Context) {
	start := time.Now()
	key := c.Param("key")
	h.logger.Database().Debug("Received put record request", "key", key)

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRecordBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "record body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	record, err := h.recordService.Put(c.Request.Context(), key, body)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Database().Info("Put record request completed", "key", key, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"key": record.Key, "updatedAt": record.UpdatedAt})
}
