package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/core"
	errclass "github.com/tcacomm/tca-server/internal/observability/errors"
	"github.com/tcacomm/tca-server/internal/observability/statsd"
)

// RetentionServiceOptions groups dependencies for RetentionService.
type RetentionServiceOptions struct {
	Repo    core.RetentionRepository // Required: retention repository
	Config  config.RetentionConfig   // Required: retention configuration
	Logger  *slog.Logger             // Optional: structured logger
	Metrics statsd.Sink              // Optional: metrics sink (StatsD-compatible)
}

// RetentionService deletes messages and direct messages older than the
// configured retention window, on demand or on a schedule. Sweeps are
// idempotent and safe to run concurrently; batch deletes take advisory locks
// in the store.
type RetentionService struct {
	repo    core.RetentionRepository
	config  config.RetentionConfig
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewRetentionService constructs a new RetentionService.
func NewRetentionService(opts RetentionServiceOptions) (*RetentionService, error) {
	if opts.Repo == nil {
		return nil, errors.New("RetentionRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "retention_service")
		logger.Debug("RetentionService initialized",
			"max_age", opts.Config.MaxAge,
			"interval", opts.Config.Interval,
			"batch_size", opts.Config.BatchSize,
		)
	}

	return &RetentionService{
		repo:    opts.Repo,
		config:  opts.Config,
		logger:  logger,
		metrics: opts.Metrics,
	}, nil
}

// SweepNow deletes every message and direct message older than the retention
// window, returning the total count removed across both record kinds.
func (s *RetentionService) SweepNow(ctx context.Context) (int64, error) {
	start := time.Now()
	cutoff := start.Add(-s.config.MaxAge)

	messages, msgErr := s.drainBatches(ctx, s.repo.DeleteMessagesOlderThan, cutoff)
	directs, dmErr := s.drainBatches(ctx, s.repo.DeleteDirectMessagesOlderThan, cutoff)

	total := messages + directs
	s.emitSweepMetrics(sweepMetrics{
		Messages: messages,
		Directs:  directs,
		Err:      firstError(msgErr, dmErr),
		Elapsed:  time.Since(start),
	})

	if err := errors.Join(msgErr, dmErr); err != nil {
		if isContextCancellation(err) {
			return total, context.Canceled
		}
		return total, fmt.Errorf("sweep failed: %w", err)
	}

	if s.logger != nil && total > 0 {
		s.logger.InfoContext(ctx, "retention sweep completed",
			"messages", messages,
			"direct_messages", directs,
			"max_age", s.config.MaxAge,
		)
	}
	return total, nil
}

// Run starts the sweep loop and runs until the context is cancelled.
// Returns nil on graceful shutdown (context.Canceled), error otherwise.
func (s *RetentionService) Run(ctx context.Context) error {
	if s.logger != nil {
		s.logger.InfoContext(ctx, "starting retention sweeper", "interval", s.config.Interval)
	}

	// Jitter prevents a thundering herd when several instances start together
	s.waitWithJitter(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	if _, err := s.SweepNow(ctx); err != nil {
		s.logSweepError(err, "initial sweep")
	}

	for {
		select {
		case <-ctx.Done():
			if s.logger != nil {
				s.logger.InfoContext(ctx, "retention sweeper stopping", "reason", ctx.Err())
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			if _, err := s.SweepNow(ctx); err != nil {
				// Keep running despite errors; the next tick retries
				s.logSweepError(err, "sweep")
			}
		}
	}
}

type deleteBatchFunc func(context.Context, core.DeleteOlderThanParams) (int64, error)

// drainBatches loops a bounded delete until no more rows are affected,
// checking the context between batches.
func (s *RetentionService) drainBatches(
	ctx context.Context,
	del deleteBatchFunc,
	cutoff time.Time,
) (int64, error) {
	var total int64
	for {
		count, err := del(ctx, core.DeleteOlderThanParams{
			Cutoff:    cutoff,
			BatchSize: s.config.BatchSize,
		})
		total += count
		if err != nil {
			return total, err
		}
		if count == 0 {
			return total, nil
		}
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
	}
}

// waitWithJitter adds a random delay up to 10% of the interval.
func (s *RetentionService) waitWithJitter(ctx context.Context) {
	maxJitter := int64(s.config.Interval / 10)
	if maxJitter <= 0 {
		return
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// If crypto/rand fails, skip jitter rather than failing startup
		if s.logger != nil {
			s.logger.WarnContext(ctx, "failed to generate jitter, skipping", "error", err)
		}
		return
	}

	jitterNanos := binary.BigEndian.Uint64(buf[:]) % uint64(maxJitter)
	jitter := time.Duration(int64(jitterNanos)) // #nosec G115 - bounded by maxJitter which is int64

	select {
	case <-time.After(jitter):
	case <-ctx.Done():
	}
}

type sweepMetrics struct {
	Messages int64
	Directs  int64
	Err      error
	Elapsed  time.Duration
}

func (s *RetentionService) emitSweepMetrics(m sweepMetrics) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case m.Err != nil:
		result = "error"
	case m.Messages+m.Directs == 0:
		result = "noop"
	}

	tags := map[string]string{"result": result}
	if m.Err != nil {
		tags["error_type"] = errclass.Classify(m.Err)
	}
	s.metrics.Count("retention.sweep", 1, tags)
	s.metrics.Count("retention.deleted.messages", m.Messages, nil)
	s.metrics.Count("retention.deleted.direct_messages", m.Directs, nil)
	s.metrics.Timing("retention.sweep.duration", m.Elapsed, tags)
}

func (s *RetentionService) logSweepError(err error, label string) {
	if s.logger == nil || isContextCancellation(err) {
		return
	}
	s.logger.Error(label+" failed", "error", err)
}

func isContextCancellation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
