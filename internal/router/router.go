package router

import (
	"github.com/gin-gonic/gin"

	"crediscope/internal/config"
	"crediscope/internal/handler"
	"crediscope/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	reports := v1.Group("/reports")
	reports.POST("/parse", reportH.ParseReport)
	reports.POST("/analyze", reportH.AnalyzeReport)

	v1.POST("/strategies", reportH.GenerateStrategy)

	analyses := v1.Group("/analyses")
	analyses.GET("", reportH.ListAnalyses)
	analyses.GET("/:id", reportH.GetAnalysis)

	return r
}
