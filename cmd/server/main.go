// Command server runs the cafe-curator HTTP API: a thin proxy in front of the
// Places API with server-side caching, search gating, saved places, and
// persisted preferences.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/shambhvi2006/cafe-curator/docs"
	"github.com/shambhvi2006/cafe-curator/internal/config"
	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/geo"
	httpapi "github.com/shambhvi2006/cafe-curator/internal/http"
	"github.com/shambhvi2006/cafe-curator/internal/observability"
	"github.com/shambhvi2006/cafe-curator/internal/places"
	"github.com/shambhvi2006/cafe-curator/internal/repo"
	"github.com/shambhvi2006/cafe-curator/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        Cafe Curator API
// @version      1.0
// @description  Swipe-to-save place discovery backend. Proxies the Places API behind a server-side credential, caches results, and gates upstream searches.
// @BasePath     /api
// @schemes      http https
func main() {
	// Load .env file when present (local development convenience).
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if cfg.Places.APIKey == "" {
		log.Warn().Msg("PLACES_API_KEY not set; nearby and photo requests will fail with config_error")
	}

	// Tracing
	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Error().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Database
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Error().Err(err).Msg("gorm tracing plugin failed")
		}
	}

	// Upstream clients
	var placesOpts []places.ClientOption
	if cfg.Places.BaseURL != "" {
		placesOpts = append(placesOpts, places.WithBaseURL(cfg.Places.BaseURL))
	}
	placesOpts = append(placesOpts, places.WithPhotoProxyPath(cfg.APIBasePath+"/photo"))
	client := places.NewClient(cfg.Places.APIKey, placesOpts...)

	var locator geo.Provider
	if cfg.Geo.StaticLat != 0 || cfg.Geo.StaticLng != 0 {
		locator = geo.StaticProvider{Coords: domain.Coordinates{Lat: cfg.Geo.StaticLat, Lng: cfg.Geo.StaticLng}}
	} else {
		locator = geo.NewHTTPProvider(cfg.Geo.Endpoint)
	}

	// Router
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, client, locator, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("version", version).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
