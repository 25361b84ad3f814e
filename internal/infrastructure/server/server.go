package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/wardfs/wardfs/internal/api/http"
	"github.com/wardfs/wardfs/internal/api/middleware"
	"github.com/wardfs/wardfs/internal/infrastructure/config"
	"github.com/wardfs/wardfs/internal/infrastructure/logging"
	"github.com/wardfs/wardfs/internal/infrastructure/monitoring"
	"github.com/wardfs/wardfs/internal/providers/filesystem"
	"github.com/wardfs/wardfs/internal/providers/thinking"
	"github.com/wardfs/wardfs/internal/sandbox"
	"github.com/wardfs/wardfs/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	httpSrv  *http.Server
	registry *service.Registry
	sandbox  *sandbox.Sandbox
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance over an established sandbox
func NewServer(cfg *config.Config, sb *sandbox.Sandbox, logger *logging.Logger) (*Server, error) {
	logger.Info("Initializing WardFS server",
		zap.String("port", cfg.Server.Port),
		zap.Strings("roots", sb.Roots()),
	)

	metrics := monitoring.NewMetrics()

	registry := service.NewRegistry()
	if err := registry.Register(filesystem.NewProvider(sb, logger).WithMetrics(metrics)); err != nil {
		return nil, err
	}
	if err := registry.Register(thinking.NewProvider(logger)); err != nil {
		return nil, err
	}
	logger.Info("Service providers registered")

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	toolTimeout := time.Duration(cfg.Tools.TimeoutSeconds) * time.Second
	handlers := apihttp.NewHandlers(registry, sb, metrics, logger, toolTimeout)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		sandbox:  sb,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Router exposes the underlying engine for serving and tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close flushes buffered log entries
func (s *Server) Close() error {
	s.logger.Info("Shutting down server")
	s.logger.Sync()
	return nil
}
