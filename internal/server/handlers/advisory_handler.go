package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/service/agronomy"
)

// AdvisoryHandler serves the agronomy advisory endpoints backing the
// dashboard's warning banners.
type AdvisoryHandler struct {
	logger *zap.Logger
}

// NewAdvisoryHandler constructs the HTTP handler adapter.
func NewAdvisoryHandler(logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{logger: logger}
}

// CheckPesticide reports whether a pesticide name is GCP compliant.
func (h *AdvisoryHandler) CheckPesticide(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, gin.H{
		"name":      name,
		"compliant": agronomy.IsCompliant(name),
	})
}

// SoilPH classifies a soil pH reading. A reading that yields no advisory
// (empty, zero, unreadable) answers 204.
func (h *AdvisoryHandler) SoilPH(c *gin.Context) {
	value := c.Query("value")
	locale := agronomy.Locale(c.DefaultQuery("locale", string(agronomy.LocaleVI)))

	advisory := agronomy.PHAdvisory(value, locale)
	if advisory == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, advisory)
}
