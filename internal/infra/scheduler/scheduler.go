// Package scheduler runs the periodic expiry digest, e-mail queue cleanup
// and rate limiter pruning.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kpi-dashboard/backend/internal/application/usecase/alert"
)

const cleanupCron = "30 3 * * *"

// Config holds the schedule settings.
type Config struct {
	DigestEnabled  bool
	DigestCron     string
	WindowDays     int
	Recipients     []string
	CleanupEnabled bool
	Retention      time.Duration
	// PruneInterval is how often expired rate limit windows are dropped.
	PruneInterval time.Duration
}

// QueueCleaner deletes delivered e-mails past retention.
type QueueCleaner interface {
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// Pruner drops expired in-memory state.
type Pruner interface {
	Cleanup()
}

// Service owns the cron scheduler.
type Service struct {
	scheduler *gocron.Scheduler
	digest    *alert.SendExpiryDigestUseCase
	cleaner   QueueCleaner
	limiter   Pruner
	config    Config

	mu                sync.Mutex
	running           bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

// NewService creates the scheduler service. cleaner and limiter may be nil.
func NewService(digest *alert.SendExpiryDigestUseCase, cleaner QueueCleaner, limiter Pruner, config Config) *Service {
	slog.Info("scheduler configuration loaded",
		"digest_enabled", config.DigestEnabled,
		"digest_cron", config.DigestCron,
		"window_days", config.WindowDays,
		"recipients", len(config.Recipients),
	)

	return &Service{
		scheduler: gocron.NewScheduler(time.UTC),
		digest:    digest,
		cleaner:   cleaner,
		limiter:   limiter,
		config:    config,
	}
}

// Start registers the jobs and runs the scheduler until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	jobs := 0

	if s.config.DigestEnabled {
		if _, err := s.scheduler.Cron(s.config.DigestCron).Do(func() {
			if _, err := s.RunDigest(ctx); err != nil {
				slog.Error("expiry digest failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule expiry digest: %w", err)
		}
		jobs++
	} else {
		slog.Info("expiry digest disabled by configuration")
	}

	if s.config.CleanupEnabled && s.cleaner != nil {
		if _, err := s.scheduler.Cron(cleanupCron).Do(func() {
			if _, err := s.cleaner.Cleanup(ctx, s.config.Retention); err != nil {
				slog.Error("email queue cleanup failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule email queue cleanup: %w", err)
		}
		jobs++
	}

	if s.limiter != nil && s.config.PruneInterval > 0 {
		if _, err := s.scheduler.Every(s.config.PruneInterval).Do(s.limiter.Cleanup); err != nil {
			return fmt.Errorf("failed to schedule rate limiter pruning: %w", err)
		}
		jobs++
	}

	if jobs == 0 {
		return nil
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		slog.Info("stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest queues the expiry digest now. Overlapping runs are skipped.
func (s *Service) RunDigest(ctx context.Context) (*alert.SendExpiryDigestOutput, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		slog.Warn("expiry digest already running, skipping")
		return &alert.SendExpiryDigestOutput{}, nil
	}
	s.running = true
	s.lastRunStartedAt = time.Now().UTC()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastRunFinishedAt = time.Now().UTC()
		s.mu.Unlock()
	}()

	return s.digest.Execute(ctx, alert.SendExpiryDigestInput{
		Recipients: s.config.Recipients,
		WindowDays: s.config.WindowDays,
	})
}

// Status reports the schedule and the last digest run.
func (s *Service) Status() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"digest_enabled":       s.config.DigestEnabled,
		"digest_cron":          s.config.DigestCron,
		"running":              s.running,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
