package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/domain/models"
	scenariosvc "github.com/rendite-app/rendite/internal/service/scenario"
)

// ScenarioHandler handles scenario persistence, previews and projections.
type ScenarioHandler struct {
	svc    *scenariosvc.Service
	logger *zap.Logger
}

// NewScenarioHandler constructs the HTTP handler adapter.
func NewScenarioHandler(svc *scenariosvc.Service, logger *zap.Logger) *ScenarioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioHandler{svc: svc, logger: logger}
}

// bindScenarioRequest decodes the body on top of the documented defaults so
// absent adjustment fields keep them.
func (h *ScenarioHandler) bindScenarioRequest(c *gin.Context) (models.ScenarioRequest, bool) {
	req := models.ScenarioRequest{Adjustment: models.DefaultScenarioAdjustment()}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid scenario payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return models.ScenarioRequest{}, false
	}
	return req, true
}

// Create stores a new scenario for an analysis.
func (h *ScenarioHandler) Create(c *gin.Context) {
	req, ok := h.bindScenarioRequest(c)
	if !ok {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), c.Param("id"), req.Name, req.Adjustment, req.HorizonYears)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scenario": created})
}

// Update appends a new revision of a scenario.
func (h *ScenarioHandler) Update(c *gin.Context) {
	req, ok := h.bindScenarioRequest(c)
	if !ok {
		return
	}

	revised, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.Param("scenarioID"), req.Name, req.Adjustment, req.HorizonYears)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": revised})
}

// List returns the latest revision of every scenario for an analysis.
func (h *ScenarioHandler) List(c *gin.Context) {
	scenarios, err := h.svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

// Get returns the latest revision of one scenario.
func (h *ScenarioHandler) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"), c.Param("scenarioID"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenario": found})
}

// Projection re-runs the stored adjustment over the requested horizon.
func (h *ScenarioHandler) Projection(c *gin.Context) {
	years, err := strconv.Atoi(c.DefaultQuery("years", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "years must be an integer"})
		return
	}

	result, err := h.svc.Projection(c.Request.Context(), c.Param("id"), c.Param("scenarioID"), years)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Preview computes a scenario against an inline baseline without persisting
// anything.
func (h *ScenarioHandler) Preview(c *gin.Context) {
	req := models.PreviewRequest{Adjustment: models.DefaultScenarioAdjustment()}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid preview payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Preview(req.Baseline, req.Adjustment, req.HorizonYears)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
