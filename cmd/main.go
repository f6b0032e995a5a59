package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	database "github.com/hnh-zeal/petopia-frontend-sub000/internal/core"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/repository/memory"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/repository/psql"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
	v1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/web/v1"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

func main() {
	// Load configuration from environment variables (with .env file support for local dev)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic("Configuration validation failed: " + err.Error())
	}

	logger, err := middleware.NewLogger(cfg.Logging)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.Info("Console starting",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("env", cfg.Service.Env),
		zap.String("port", cfg.Service.Port),
		zap.String("api", cfg.API.BaseURL),
	)

	tracing := false
	if cfg.Tracing.Enabled {
		if _, err := middleware.InitTracing(cfg); err != nil {
			logger.Warn("Failed to initialize tracing", zap.Error(err))
		} else {
			tracing = true
			logger.Info("Tracing initialized",
				zap.String("endpoint", cfg.Tracing.Endpoint),
				zap.Float64("sample_rate", cfg.Tracing.SampleRate),
			)
		}
	} else {
		logger.Info("Tracing disabled (TRACING_ENABLED=false)")
	}

	if cfg.Profiling.Enabled {
		if err := middleware.InitProfiling(cfg); err != nil {
			logger.Warn("Failed to initialize profiling", zap.Error(err))
		} else {
			logger.Info("Profiling initialized", zap.String("endpoint", cfg.Profiling.Endpoint))
			defer middleware.StopProfiling()
		}
	} else {
		logger.Info("Profiling disabled (PROFILING_ENABLED=false)")
	}

	// Sessions survive restarts only with a database
	var (
		db    *sql.DB
		store domain.SessionRepository
	)
	if cfg.Database.Enabled() {
		db, err = database.Open(context.Background(), cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := database.Migrate(context.Background(), db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		store = psql.NewSessionRepository(db)
		logger.Info("Session store: postgres")
	} else {
		store = memory.NewSessionRepository()
		logger.Info("Session store: memory (DB_HOST not set)")
	}

	client, err := api.New(api.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout})
	if err != nil {
		logger.Fatal("Failed to create API client", zap.Error(err))
	}
	sessions := logicv1.NewSessionService(client, store, cfg.Session.MaxAge)
	handler := v1.NewHandler(client, sessions, cfg.Session)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	var isShuttingDown atomic.Bool

	// Tracing middleware (must be first for context propagation)
	r.Use(middleware.TracingMiddleware())

	// Logging middleware (must be before Prometheus middleware)
	r.Use(middleware.LoggingMiddleware(logger))

	r.Use(middleware.PrometheusMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Returns 503 once shutdown has started, to drain traffic before HTTP shutdown.
	r.GET("/ready", func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if err := v1.Setup(r, handler); err != nil {
		logger.Fatal("Failed to set up routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Service.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting console", zap.String("port", cfg.Service.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Expired sessions are purged in the background until shutdown.
	go func() {
		ticker := time.NewTicker(cfg.Session.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sessions.Sweep(ctx)
				if err != nil {
					logger.Warn("Failed to sweep expired sessions", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Info("Expired sessions swept", zap.Int64("count", n))
				}
			}
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	// Fail readiness first and wait for propagation.
	isShuttingDown.Store(true)
	drainDelay := cfg.GetReadinessDrainDelayDuration()
	if drainDelay > 0 {
		logger.Info("Readiness drain delay started", zap.Duration("delay", drainDelay))
		time.Sleep(drainDelay)
		logger.Info("Readiness drain delay completed", zap.Duration("delay", drainDelay))
	}

	shutdownTimeout := cfg.GetShutdownTimeoutDuration()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server...", zap.Duration("timeout", shutdownTimeout))

	// Cleanup order: HTTP server, database, tracer

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		logger.Info("HTTP server shutdown complete")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("Database close error", zap.Error(err))
		} else {
			logger.Info("Database closed")
		}
	}

	if tracing {
		if err := middleware.Shutdown(shutdownCtx); err != nil {
			logger.Error("Tracer shutdown error", zap.Error(err))
		} else {
			logger.Info("Tracer shutdown complete")
		}
	}

	logger.Info("Graceful shutdown complete")
}
