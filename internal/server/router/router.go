package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(analysisHandler *handlers.AnalysisHandler, scenarioHandler *handlers.ScenarioHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/analyses", analysisHandler.Create)
		api.GET("/analyses", analysisHandler.List)
		api.GET("/analyses/:id", analysisHandler.Get)
		api.PUT("/analyses/:id", analysisHandler.Update)
		api.DELETE("/analyses/:id", analysisHandler.Delete)
		api.GET("/analyses/:id/summary", analysisHandler.Summary)
		api.POST("/analyses/:id/export", analysisHandler.Export)

		api.POST("/analyses/:id/scenarios", scenarioHandler.Create)
		api.GET("/analyses/:id/scenarios", scenarioHandler.List)
		api.GET("/analyses/:id/scenarios/:scenarioID", scenarioHandler.Get)
		api.PUT("/analyses/:id/scenarios/:scenarioID", scenarioHandler.Update)
		api.GET("/analyses/:id/scenarios/:scenarioID/projection", scenarioHandler.Projection)

		api.POST("/scenarios/preview", scenarioHandler.Preview)
		api.POST("/extract", analysisHandler.Extract)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
