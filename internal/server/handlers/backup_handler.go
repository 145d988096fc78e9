package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/service/backup"
)

// BackupHandler exposes the backup/restore exchange protocol over HTTP.
type BackupHandler struct {
	svc    *backup.Service
	logger *zap.Logger
}

// NewBackupHandler constructs the HTTP handler adapter.
func NewBackupHandler(svc *backup.Service, logger *zap.Logger) *BackupHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupHandler{svc: svc, logger: logger}
}

// Export runs a full export and returns the backup document as a JSON
// attachment using the conventional file name.
func (h *BackupHandler) Export(c *gin.Context) {
	user := c.DefaultQuery("user", "dashboard")

	doc, err := h.svc.Export(c.Request.Context(), user)
	if err != nil {
		var collErr *backup.CollectionError
		if errors.As(err, &collErr) {
			h.logger.Error("export failed",
				zap.String("collection", string(collErr.Collection)),
				zap.Error(collErr.Err))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":      "export failed",
				"collection": string(collErr.Collection),
			})
			return
		}
		h.logger.Error("export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := backup.Filename(doc.Meta.Date)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// Restore ingests a backup document from the request body and answers with
// the per-collection created counts. A document failing the application tag
// gate answers 422 and writes nothing.
func (h *BackupHandler) Restore(c *gin.Context) {
	var doc models.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.logger.Warn("malformed restore payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed backup document"})
		return
	}

	report, err := h.svc.Restore(c.Request.Context(), &doc)
	if err != nil {
		if errors.Is(err, backup.ErrInvalidDocument) {
			h.logger.Warn("restore rejected", zap.String("app", doc.Meta.App))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not a recognized backup document"})
			return
		}
		h.logger.Error("restore failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "restore failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}
