package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vidsum/internal/api/middleware"
	v1routes "vidsum/internal/api/v1/routes"
	"vidsum/internal/api/v1/services"
	"vidsum/internal/config"
)

// Server represents the API server.
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new API server.
func NewServer(
	cfg config.ServerConfig,
	summaryService services.SummaryService,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	serviceContainer := &v1routes.ServiceContainer{
		SummaryService: summaryService,
		MaxUploadBytes: cfg.MaxUploadSizeMB * 1024 * 1024,
	}

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, serviceContainer)
	}

	// Upload UI. Served only when the static dir exists so API-only
	// deployments work out of a bare binary.
	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
			router.Static("/static", cfg.StaticDir)
		}
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting API server",
		zap.String("host", s.config.Host),
		zap.String("port", s.config.Port),
		zap.String("environment", s.config.Environment),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router, useful for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
