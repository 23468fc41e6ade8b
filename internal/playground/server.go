// Package playground serves the front end over HTTP: lex and parse
// endpoints, a health report and a WebSocket REPL.
package playground

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/internal/history"
	"github.com/msto63/rubic/internal/tui/repl"
	"github.com/msto63/rubic/pkg/core/cache"
	"github.com/msto63/rubic/pkg/core/config"
	"github.com/msto63/rubic/pkg/core/health"
	"github.com/msto63/rubic/pkg/core/logging"
	"github.com/msto63/rubic/pkg/core/version"
)

// GracefulShutdownTimeout bounds how long Start waits for open requests
const GracefulShutdownTimeout = 10 * time.Second

// ParseCacheSize bounds the number of memoized parse responses
const ParseCacheSize = 256

// HealthCheckTimeout bounds a single /healthz report
const HealthCheckTimeout = 5 * time.Second

// canary is parsed by the engine health check
const canary = "x = 1\nreturn x"

// Server is the playground HTTP server
type Server struct {
	echo    *echo.Echo
	engine  *rubic.Engine
	eval    *repl.Evaluator
	results *cache.Cache[ParseResponse]
	health  *health.Registry
	logger  *logging.Logger
	config  Config
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
	ExitWord     string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return ConfigFrom(config.Default())
}

// ConfigFrom derives the server configuration from the application config
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		CORSOrigins:  cfg.Server.CORSOrigins,
		ExitWord:     cfg.REPL.ExitWord,
	}
}

// Options holds the collaborators of a server
type Options struct {
	Engine *rubic.Engine
	Logger *logging.Logger
	Store  *history.Store // optional, enables the history health check
}

// New creates a playground server
func New(cfg Config, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.New("playground")
	}
	if opts.Engine == nil {
		opts.Engine = rubic.New(rubic.Options{Logger: opts.Logger.Logger})
	}
	if cfg.ExitWord == "" {
		cfg.ExitWord = DefaultConfig().ExitWord
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = GlobalErrorHandler(opts.Logger)

	replCfg := config.Default().REPL
	replCfg.ExitWord = cfg.ExitWord

	results := cache.New[ParseResponse](cache.Config{
		MaxItems:        ParseCacheSize,
		TTL:             cache.DefaultConfig().TTL,
		CleanupInterval: time.Minute,
	})

	s := &Server{
		echo:    e,
		engine:  opts.Engine,
		eval:    repl.NewEvaluator(opts.Engine, replCfg, nil, opts.Logger.Logger),
		results: results,
		health:  newHealthRegistry(opts.Engine, opts.Store, results),
		logger:  opts.Logger,
		config:  cfg,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func newHealthRegistry(engine *rubic.Engine, store *history.Store, results *cache.Cache[ParseResponse]) *health.Registry {
	registry := health.NewRegistry("rubic-playground", version.Playground)

	registry.Register(health.ProbeCheck("engine", 100*time.Millisecond, func(ctx context.Context) error {
		result, err := engine.Parse(canary)
		if err != nil {
			return err
		}
		return result.Err()
	}))

	registry.RegisterFunc("parse_cache", func(ctx context.Context) health.CheckResult {
		hits, misses, hitRate := results.Stats()
		return health.CheckResult{
			Status: health.StatusHealthy,
			Details: map[string]interface{}{
				"entries":  results.Size(),
				"hits":     hits,
				"misses":   misses,
				"hit_rate": hitRate,
			},
		}
	})

	if store != nil {
		registry.Register(health.PingCheck("history", store, time.Second))
	}

	return registry
}

// requestLimit sizes request bodies and WebSocket frames for a source
// limit. JSON escaping can double a source, the rest covers the envelope.
func requestLimit(maxSource int) int64 {
	return int64(2*maxSource + 4096)
}

func (s *Server) setupMiddlewares() {
	s.echo.Use(RequestLogger(s.logger))
	s.echo.Use(middleware.Recover())
	limit := requestLimit(s.engine.Options().MaxSourceLength)
	s.echo.Use(middleware.BodyLimit(strconv.FormatInt(limit, 10) + "B"))
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.config.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/healthz", s.handleHealth)

	api := s.echo.Group("/api/v1")
	api.GET("/version", s.handleVersion)
	api.POST("/lex", s.handleLex)
	api.POST("/parse", s.handleParse)
	api.GET("/repl/ws", s.handleWebSocket)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Address returns the server address
func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.echo.Server.ReadTimeout = s.config.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.WriteTimeout

	s.logger.Info("Starting playground", "address", s.Address())

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("HTTP server error", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	return s.Stop()
}

// Stop gracefully stops the server
func (s *Server) Stop() error {
	s.logger.Info("Stopping playground")

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()
	defer s.results.Close()

	return s.echo.Shutdown(ctx)
}
