package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
)

// RecordsHandler is a thin passthrough from the dashboard's record screens
// to the configured store backend.
type RecordsHandler struct {
	store  recordstore.Store
	logger *zap.Logger
}

// NewRecordsHandler constructs the HTTP handler adapter.
func NewRecordsHandler(store recordstore.Store, logger *zap.Logger) *RecordsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordsHandler{store: store, logger: logger}
}

// List returns every record of one collection.
func (h *RecordsHandler) List(c *gin.Context) {
	collection := models.Collection(c.Param("collection"))

	records, err := h.store.ListAll(c.Request.Context(), collection)
	if err != nil {
		if errors.Is(err, recordstore.ErrUnknownCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
			return
		}
		h.logger.Error("list records failed", zap.String("collection", string(collection)), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to list records"})
		return
	}

	if records == nil {
		records = []models.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"items": records, "total": len(records)})
}

// Create validates one record against the collection's typed model and
// inserts it.
func (h *RecordsHandler) Create(c *gin.Context) {
	collection := models.Collection(c.Param("collection"))

	target := models.BindTarget(collection)
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
		return
	}
	if err := c.ShouldBindJSON(target); err != nil {
		h.logger.Warn("invalid record payload", zap.String("collection", string(collection)), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record body"})
		return
	}

	fields, err := toRecord(target)
	if err != nil {
		h.logger.Error("failed to normalize record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create record"})
		return
	}

	record, err := h.store.Create(c.Request.Context(), collection, fields)
	if err != nil {
		if errors.Is(err, recordstore.ErrUnknownCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
			return
		}
		h.logger.Error("create record failed", zap.String("collection", string(collection)), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to create record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// toRecord converts a validated typed row into the untyped shape the store
// accepts, dropping empty optional fields the same way the json tags do.
func toRecord(v any) (models.Record, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal typed record: %w", err)
	}
	var fields models.Record
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal typed record: %w", err)
	}
	return fields, nil
}
