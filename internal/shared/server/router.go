package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvanaliz-backend/internal/analyses"
	"cvanaliz-backend/internal/analyzer"
	"cvanaliz-backend/internal/extract"
	"cvanaliz-backend/internal/shared/config"
	"cvanaliz-backend/internal/shared/server/middleware"
	"cvanaliz-backend/internal/shared/server/respond"
	"cvanaliz-backend/internal/skills"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(ginMode(cfg.Env))
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	analyzerSvc := analyzer.New(skills.Default())
	analysisHandler := analyses.NewHandler(analyzerSvc)
	extractHandler := extract.NewHandler(cfg.MaxUploadBytes)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	limiter := middleware.NewRateLimiter(nil)
	limited := api.Group("", middleware.RateLimit(limiter, middleware.RateLimitRule{
		Rate:  cfg.AnalyzeRate,
		Burst: cfg.AnalyzeBurst,
	}))
	analysisHandler.RegisterRoutes(limited)
	extractHandler.RegisterRoutes(limited)

	return r
}

func ginMode(env string) string {
	switch env {
	case "production", "staging":
		return gin.ReleaseMode
	default:
		return gin.DebugMode
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
