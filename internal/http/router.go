// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging with credential redaction, panic
// recovery, metrics, compression, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/shambhvi2006/cafe-curator/internal/cache"
	"github.com/shambhvi2006/cafe-curator/internal/config"
	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/geo"
	"github.com/shambhvi2006/cafe-curator/internal/http/handlers"
	"github.com/shambhvi2006/cafe-curator/internal/http/middleware"
	"github.com/shambhvi2006/cafe-curator/internal/places"
	"github.com/shambhvi2006/cafe-curator/internal/repo"
	"github.com/shambhvi2006/cafe-curator/internal/services"
)

// savedRepoShim adapts the repository free functions to the services.SavedRepo
// interface expected by the SavedService. This keeps services decoupled from
// the concrete repo package while reusing existing functions.
type savedRepoShim struct{}

// ListSaved proxies repo.ListSaved.
func (savedRepoShim) ListSaved(ctx context.Context, db *gorm.DB, category string) ([]domain.SavedPlace, error) {
	return repo.ListSaved(ctx, db, category)
}

// InsertSaved proxies repo.InsertSaved.
func (savedRepoShim) InsertSaved(ctx context.Context, db *gorm.DB, sp *domain.SavedPlace) error {
	return repo.InsertSaved(ctx, db, sp)
}

// DeleteSaved proxies repo.DeleteSaved.
func (savedRepoShim) DeleteSaved(ctx context.Context, db *gorm.DB, category, placeID string) (int64, error) {
	return repo.DeleteSaved(ctx, db, category, placeID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting, CORS
// and security headers, health and metrics endpoints, and then mounts the
// public API under the configured base path.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured logs with credential redaction
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression (JSON responses; photo bytes are already compressed)
//  7. Metrics
//  8. Rate limiter (per IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, placesClient *places.Client, locator geo.Provider, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging (the upstream key never appears in query logs)
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress JSON responses; image bytes pass through uncompressed.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{cfg.APIBasePath + "/photo"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: controller ← kv store / places / locator
	kv := repo.NewKV(db)
	ctl := cache.NewController(kv, placesClient, locator,
		cache.WithRequestGap(cfg.Cache.RequestGap),
		cache.WithWatchdogTimeout(cfg.Cache.WatchdogTimeout),
		cache.WithLocationTTL(cfg.Cache.LocationTTL),
		cache.WithResultTTL(cfg.Cache.ResultTTL),
		cache.WithRadius(cfg.Cache.Radius),
	)

	discoverySvc := services.NewDiscoveryService(ctl)
	savedSvc := services.NewSavedService(db, savedRepoShim{})
	prefSvc := services.NewPreferenceService(kv)
	h := handlers.New(discoverySvc, placesClient, savedSvc, prefSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api"
	api := groupWithPrefix(r, apiBase)
	{
		// Discovery
		api.GET("/nearby", h.Nearby)
		api.GET("/location", h.Location)
		api.GET("/photo", h.Photo)

		// Saved places
		api.GET("/saved/:category", h.ListSaved)
		api.POST("/saved/:category", h.SavePlace)
		api.DELETE("/saved/:category/:placeID", h.RemoveSaved)

		// Preferences
		api.GET("/preferences", h.GetPreferences)
		api.PUT("/preferences", h.UpdatePreferences)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
