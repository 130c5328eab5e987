package server

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"runwear/internal/clothing"
	"runwear/internal/lookups"
	"runwear/internal/pages"
	"runwear/internal/services/health"
	"runwear/internal/shared/config"
	"runwear/internal/shared/metrics"
	"runwear/internal/shared/server/middleware"
	"runwear/internal/weather"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	Templates       *template.Template
	ClothingHandler *clothing.Handler
	WeatherHandler  *weather.Handler
	LookupsHandler  *lookups.Handler
	HealthHandler   *health.Handler
	PagesHandler    *pages.Handler
	AssetHandler    *pages.AssetHandler
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !config.IsDevLike(deps.Config.Env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Templates != nil {
		r.SetHTMLTemplate(deps.Templates)
	}

	limit := middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: deps.Config.RateLimit.RPS, Burst: deps.Config.RateLimit.Burst},
		},
		Limiter: deps.RateLimiter,
	})

	if deps.PagesHandler != nil {
		deps.PagesHandler.RegisterRoutes(r)
	}
	if deps.AssetHandler != nil {
		deps.AssetHandler.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	if deps.ClothingHandler != nil {
		deps.ClothingHandler.RegisterRoutes(r.Group("", limit))
	}

	api := r.Group("/api/v1", limit)
	if deps.HealthHandler != nil {
		deps.HealthHandler.RegisterRoutes(api)
	}
	if deps.WeatherHandler != nil {
		deps.WeatherHandler.RegisterRoutes(api)
	}
	if deps.LookupsHandler != nil {
		deps.LookupsHandler.RegisterRoutes(api)
	}

	return r
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
