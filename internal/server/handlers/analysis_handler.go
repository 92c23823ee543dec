package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/domain/models"
	analysissvc "github.com/rendite-app/rendite/internal/service/analysis"
	insightsvc "github.com/rendite-app/rendite/internal/service/insight"
)

// AnalysisHandler handles the analysis CRUD, summary and export endpoints.
type AnalysisHandler struct {
	svc     *analysissvc.Service
	insight *insightsvc.Service
	logger  *zap.Logger
}

// NewAnalysisHandler constructs the HTTP handler adapter.
func NewAnalysisHandler(svc *analysissvc.Service, insight *insightsvc.Service, logger *zap.Logger) *AnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{svc: svc, insight: insight, logger: logger}
}

// Create stores a new analysis from a baseline record.
func (h *AnalysisHandler) Create(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analysis payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, warnings, err := h.svc.Create(c.Request.Context(), req.Name, req.Baseline)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"analysis": created, "warnings": warnings})
}

// List returns all stored analyses.
func (h *AnalysisHandler) List(c *gin.Context) {
	analyses, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

// Get returns one analysis by id.
func (h *AnalysisHandler) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": found})
}

// Update replaces the baseline of an analysis and re-derives atomically.
func (h *AnalysisHandler) Update(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analysis payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, warnings, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Baseline)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": updated, "warnings": warnings})
}

// Delete removes an analysis with its scenario history.
func (h *AnalysisHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary returns the four-number metric shape, with AI commentary when the
// client asks for it and the integration is configured.
func (h *AnalysisHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := gin.H{"summary": summary}
	if c.Query("commentary") == "true" {
		commentary, err := h.insight.Commentary(c.Request.Context(), summary)
		if err != nil {
			// Commentary is best effort; the numbers still go out.
			h.logger.Warn("commentary unavailable", zap.Error(err))
		} else {
			response["commentary"] = commentary
		}
	}

	c.JSON(http.StatusOK, response)
}

// Export appends the analysis snapshot to the configured spreadsheet.
func (h *AnalysisHandler) Export(c *gin.Context) {
	if err := h.svc.Export(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// Extract turns free-form listing text into a baseline draft.
func (h *AnalysisHandler) Extract(c *gin.Context) {
	var req models.ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid extraction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	baseline, notes, err := h.insight.ExtractBaseline(c.Request.Context(), req.Listing)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"baseline": baseline, "notes": notes})
}
