package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/api/middleware"
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/workspace"
	apihttp "github.com/GriffinCanCode/MathCore/backend/internal/http"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/tracing"
	mathProvider "github.com/GriffinCanCode/MathCore/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/conversion"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	http      *http.Server
	registry  *service.Registry
	catalog   *formulas.Registry
	workspace *workspace.Store
	tracer    *tracing.Tracer
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
}

// Option configures a Server
type Option func(*options)

type options struct {
	logger   *logging.Logger
	registry prometheus.Registerer
	gatherer prometheus.Gatherer
}

// WithLogger overrides the logger built from config
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithPrometheus registers metrics on reg and serves them from gatherer
// instead of the default registry
func WithPrometheus(reg prometheus.Registerer, gatherer prometheus.Gatherer) Option {
	return func(o *options) {
		o.registry = reg
		o.gatherer = gatherer
	}
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	o := options{
		registry: prometheus.DefaultRegisterer,
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Initialize logger
	logger := o.logger
	if logger == nil {
		logger = logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
	}

	logger.Info("Initializing Math Core Server",
		zap.String("port", cfg.Server.Port),
		zap.String("catalog", cfg.Math.Catalog),
		zap.Int("evaluator_cache", cfg.Math.EvaluatorCache),
		zap.Duration("evaluator_timeout", cfg.Math.EvaluatorTimeout),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetricsWithRegistry(o.registry)
	logger.Info("Performance monitoring initialized")

	tracer := tracing.New("math", logger.Component("tracing"))
	logger.Info("Distributed tracing initialized")

	// Formula catalog, optionally extended from file
	catalog := formulas.NewRegistry(logger.Component("formulas"))
	if cfg.Math.Catalog != "" {
		if err := catalog.LoadFile(cfg.Math.Catalog); err != nil {
			tracer.Close()
			return nil, fmt.Errorf("failed to load formula catalog: %w", err)
		}
	}

	engine, err := conversion.NewEngine()
	if err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to build unit tables: %w", err)
	}

	eval := evaluator.WithTimeout(evaluator.NewWithCache(cfg.Math.EvaluatorCache), cfg.Math.EvaluatorTimeout)

	// Register service providers
	registry := service.NewRegistry()
	provider := mathProvider.NewProvider(engine, eval, catalog,
		mathProvider.WithLogger(logger.Component("math")),
		mathProvider.WithMetrics(metrics),
		mathProvider.WithTracer(tracer),
	)
	if err := registry.Register(provider); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register math provider: %w", err)
	}

	synth := solver.NewSynthesizer(eval, solver.WithLogger(logger.Component("solver")))
	store := workspace.NewStore(synth,
		workspace.WithRegistry(catalog),
		workspace.WithMetrics(metrics),
		workspace.WithLogger(logger.Component("workspace")),
	)

	// Create router
	if logging.IsProduction() || !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.Origins...)))
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

	// Register routes
	handlers := apihttp.NewHandlers(registry, catalog, store, metrics, logger.Component("http"))
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{})))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry:  registry,
		catalog:   catalog,
		workspace: store,
		tracer:    tracer,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops. Close ends it
// without an error.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	var shutdownErr error
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		shutdownErr = fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	// Flush pending spans
	s.tracer.Close()

	// Sync logger before exit
	_ = s.logger.Sync()

	return shutdownErr
}
