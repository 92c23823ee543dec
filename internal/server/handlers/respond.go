package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/finance"
	"github.com/rendite-app/rendite/internal/repository/mongodb"
	"github.com/rendite-app/rendite/internal/service/analysis"
	"github.com/rendite-app/rendite/internal/service/insight"
)

// respondError maps service errors onto HTTP status codes. Calculation errors
// fail a single request only; nothing here is fatal to the process.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case finance.IsInvalidInput(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, insight.ErrDisabled), errors.Is(err, analysis.ErrExportDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
