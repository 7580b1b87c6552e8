package http

import (
	"errors"
	"net/http"

	"github.com/bomlens/bomlens/internal/domain"
	"github.com/bomlens/bomlens/internal/infrastructure/csvio"
	"github.com/bomlens/bomlens/internal/logger"
	"github.com/bomlens/bomlens/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	enricher *usecase.Enricher
	log      logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(enricher *usecase.Enricher, log logger.Logger) *Handler {
	return &Handler{enricher: enricher, log: log}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "bomlens",
		"version": "1.0.0",
	})
}

// EnrichBOM accepts a BOM CSV as multipart field "bom", runs the enrichment
// pipeline, and streams the enriched CSV back.
func (h *Handler) EnrichBOM(c *gin.Context) {
	file, _, err := c.Request.FormFile("bom")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "multipart field 'bom' with a CSV file is required",
		})
		return
	}
	defer file.Close()

	table, err := csvio.ReadFrom(file)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, domain.ErrNoValueColumn) && !errors.Is(err, domain.ErrEmptyInput) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.enricher.Enrich(c.Request.Context(), table.Schema, table.Rows)
	if err != nil {
		// Only context cancellation reaches here; row failures degrade rows.
		h.log.WithError(err).Warn("enrichment aborted", map[string]interface{}{
			"rows": len(table.Rows),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="bom_with_prices.csv"`)
	c.Status(http.StatusOK)
	if err := csvio.WriteTo(c.Writer, table.Header, rows); err != nil {
		h.log.WithError(err).Error("writing response", nil)
	}
}
