// Package sweeper provides adapters for running the retention sweeper.
package sweeper

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/data"
	"github.com/tcacomm/tca-server/internal/observability/statsd"
	"github.com/tcacomm/tca-server/internal/service"
)

// Runner provides a simple adapter to run the retention sweep loop.
// It constructs the retention service and runs it on the configured interval.
type Runner struct {
	retention *service.RetentionService
	logger    *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	DB     *sql.DB
	Config config.RetentionConfig
	Logger *slog.Logger

	// Optional dependency injection for testing/decoupling
	Repo    core.RetentionRepository
	Metrics statsd.Sink
}

// NewRunner creates a new sweeper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.DB == nil && opts.Repo == nil {
		return nil, errors.New("database connection is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	repo := opts.Repo
	if repo == nil {
		repo = data.NewRetentionRepo(opts.DB)
	}

	retention, err := service.NewRetentionService(service.RetentionServiceOptions{
		Repo:    repo,
		Config:  opts.Config,
		Logger:  opts.Logger,
		Metrics: opts.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("wire retention service: %w", err)
	}

	return &Runner{
		retention: retention,
		logger:    opts.Logger,
	}, nil
}

// Run starts the sweep loop and runs until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting sweeper runner")
	return r.retention.Run(ctx)
}

// SweepNow performs one immediate sweep outside the loop.
func (r *Runner) SweepNow(ctx context.Context) (int64, error) {
	return r.retention.SweepNow(ctx)
}
