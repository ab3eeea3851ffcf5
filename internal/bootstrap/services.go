package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/adapters/redisstore"
	"github.com/tcacomm/tca-server/internal/adapters/sweeper"
	"github.com/tcacomm/tca-server/internal/adapters/terminal"
	"github.com/tcacomm/tca-server/internal/data"
	"github.com/tcacomm/tca-server/internal/observability/statsd"
	"github.com/tcacomm/tca-server/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth          *service.AuthService
	Rooms         *service.RoomService
	Messages      *service.MessageService
	Retention     *service.RetentionService
	Gate          *service.Gate
	Engine        *service.Engine
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	sink, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Metrics.IsEnabled(),
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		// Metrics are best-effort; the app runs without them
		if logger != nil {
			logger.Warn("failed to initialize metrics sink", "error", err)
		}
		sink = nil
	}
	return ObservabilityContainer{
		MetricsSink:   sink,
		MetricsConfig: cfg.Metrics,
	}
}

// metricsSink returns the container's sink as the Sink interface, keeping a
// nil *statsd.Client from becoming a non-nil interface value.
func (o ObservabilityContainer) metricsSink() statsd.Sink {
	if o.MetricsSink == nil {
		return nil
	}
	return o.MetricsSink
}

// NewServices wires all application services from their repositories.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	if deps.DB == nil {
		return ServiceContainer{}, errors.New("database connection is required")
	}
	if deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	observability := buildObservability(logger, deps.Config.Observability)

	userRepo := data.NewUserRepo(deps.DB)
	roomRepo := data.NewRoomRepo(deps.DB)
	messageRepo := data.NewMessageRepo(deps.DB)
	dmRepo := data.NewDirectMessageRepo(deps.DB)
	retentionRepo := data.NewRetentionRepo(deps.DB)
	sessions := redisstore.NewSessionStore(deps.RedisClient)

	authSvc, err := service.NewAuthService(service.AuthServiceOptions{
		Users:    userRepo,
		Sessions: sessions,
		Config:   deps.Config.Auth,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("wire auth service: %w", err)
	}

	roomSvc, err := service.NewRoomService(service.RoomServiceOptions{
		Rooms:    roomRepo,
		Messages: messageRepo,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("wire room service: %w", err)
	}

	msgSvc, err := service.NewMessageService(service.MessageServiceOptions{
		Messages: messageRepo,
		Directs:  dmRepo,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("wire message service: %w", err)
	}

	retentionSvc, err := service.NewRetentionService(service.RetentionServiceOptions{
		Repo:    retentionRepo,
		Config:  deps.Config.Retention,
		Logger:  logger,
		Metrics: observability.metricsSink(),
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("wire retention service: %w", err)
	}

	gate := service.NewGate(service.GateOptions{Config: deps.Config.Auth})

	engine, err := service.NewEngine(service.EngineOptions{
		Auth:      authSvc,
		Rooms:     roomSvc,
		Messages:  msgSvc,
		Retention: retentionSvc,
		Gate:      gate,
		Config:    deps.Config.Session,
		Logger:    logger,
		Metrics:   observability.metricsSink(),
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("wire engine: %w", err)
	}

	return ServiceContainer{
		Auth:          authSvc,
		Rooms:         roomSvc,
		Messages:      msgSvc,
		Retention:     retentionSvc,
		Gate:          gate,
		Engine:        engine,
		Observability: observability,
	}, nil
}

// RunOptions configures RunServicesWithShutdown.
type RunOptions struct {
	Config   *config.AppConfig
	DB       *sql.DB
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the enabled service modes and blocks until
// a shutdown signal arrives, the terminal exits, or a service fails. The
// terminal finishing (user typed /quit or closed stdin) shuts the whole
// process down; a sweeper-only deployment runs until signalled.
func RunServicesWithShutdown(opts RunOptions) error {
	if opts.Config == nil {
		return errors.New("app config is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enabled, err := opts.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if enabled[config.ServiceModeSweeper] {
		runner, runnerErr := sweeper.NewRunner(sweeper.RunnerOptions{
			DB:      opts.DB,
			Config:  opts.Config.Retention,
			Logger:  logger,
			Metrics: opts.Services.Observability.metricsSink(),
		})
		if runnerErr != nil {
			return fmt.Errorf("wire sweeper: %w", runnerErr)
		}
		g.Go(func() error {
			return runner.Run(gctx)
		})
	}

	if enabled[config.ServiceModeTerminal] {
		term, termErr := terminal.New(terminal.Options{
			Engine: opts.Services.Engine,
			In:     os.Stdin,
			Out:    os.Stdout,
			Logger: logger,
		})
		if termErr != nil {
			return fmt.Errorf("wire terminal: %w", termErr)
		}
		g.Go(func() error {
			defer stop() // terminal exit ends the sweeper too
			return term.Run(gctx)
		})
	}

	logger.Info("services started", "enabled", GetEnabledServices(opts.Config))

	if waitErr := g.Wait(); waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return waitErr
	}
	logger.Info("services stopped")
	return nil
}
