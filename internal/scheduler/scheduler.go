// Package scheduler wires up the cron jobs that periodically run the
// deduplication pass and stale-posting cleanup.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/jobwell/jobsync-be/internal/cache"
	"github.com/jobwell/jobsync-be/internal/cleanup"
	"github.com/jobwell/jobsync-be/internal/dedup"
)

// Config holds scheduler configuration.
type Config struct {
	Logger          *slog.Logger
	Deduplicator    *dedup.Deduplicator
	Cleaner         *cleanup.Cleaner
	Cache           cache.Cache
	DedupSpec       string
	CleanupSpec     string
	StaleAfterDays  int
	ExpireAfterDays int
}

// Scheduler wraps robfig/cron and manages the maintenance loop.
type Scheduler struct {
	cron            *cron.Cron
	logger          *slog.Logger
	deduplicator    *dedup.Deduplicator
	cleaner         *cleanup.Cleaner
	cache           cache.Cache
	dedupSpec       string
	cleanupSpec     string
	staleAfterDays  int
	expireAfterDays int
}

// New creates a Scheduler from its configuration.
func New(cfg *Config) *Scheduler {
	return &Scheduler{
		cron:            cron.New(),
		logger:          cfg.Logger,
		deduplicator:    cfg.Deduplicator,
		cleaner:         cfg.Cleaner,
		cache:           cfg.Cache,
		dedupSpec:       cfg.DedupSpec,
		cleanupSpec:     cfg.CleanupSpec,
		staleAfterDays:  cfg.StaleAfterDays,
		expireAfterDays: cfg.ExpireAfterDays,
	}
}

// Start registers the maintenance jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.dedupSpec, func() { s.runDedup(ctx) }); err != nil {
		return fmt.Errorf("failed to register dedup job: %w", err)
	}

	if _, err := s.cron.AddFunc(s.cleanupSpec, func() { s.runCleanup(ctx) }); err != nil {
		return fmt.Errorf("failed to register cleanup job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Maintenance scheduler started",
		slog.String("dedup_spec", s.dedupSpec),
		slog.String("cleanup_spec", s.cleanupSpec),
	)

	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Maintenance scheduler stopped")
}

// runDedup executes one deduplication pass. A pass already running elsewhere
// is not a failure; the next tick will pick the work up.
func (s *Scheduler) runDedup(ctx context.Context) {
	result, err := s.deduplicator.Run(ctx)
	if err != nil {
		if errors.Is(err, dedup.ErrAlreadyRunning) {
			s.logger.Warn("Skipping dedup pass - another pass holds the lock")
			return
		}
		s.logger.Error("Scheduled dedup pass failed",
			slog.Any("error", err),
		)
		return
	}

	s.invalidateStats(ctx)

	s.logger.Info("Scheduled dedup pass finished",
		slog.Int("deleted", result.Deleted),
		slog.Int("kept", result.Kept),
	)
}

// runCleanup marks aged postings stale, then removes expired ones.
func (s *Scheduler) runCleanup(ctx context.Context) {
	staled, err := s.cleaner.MarkStale(ctx, s.staleAfterDays)
	if err != nil {
		s.logger.Error("Scheduled stale marking failed",
			slog.Any("error", err),
		)
		return
	}

	deleted, err := s.cleaner.DeleteExpired(ctx, s.expireAfterDays)
	if err != nil {
		s.logger.Error("Scheduled expired cleanup failed",
			slog.Any("error", err),
		)
		return
	}

	if deleted > 0 {
		s.invalidateStats(ctx)
	}

	s.logger.Info("Scheduled cleanup finished",
		slog.Int64("marked_stale", staled),
		slog.Int64("deleted", deleted),
	)
}

func (s *Scheduler) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeyDedupStats); err != nil {
		s.logger.Warn("Failed to invalidate stats cache",
			slog.Any("error", err),
		)
	}
}
