package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/metrics"
)

// Sweeper deactivates internships whose application deadline has passed
// and prunes expired refresh tokens on a cron schedule.
type Sweeper struct {
	internshipRepo *repositories.InternshipRepository
	tokenRepo      *repositories.TokenRepository
	cron           *cron.Cron
	logger         zerolog.Logger
}

// NewSweeper creates a new Sweeper
func NewSweeper(
	internshipRepo *repositories.InternshipRepository,
	tokenRepo *repositories.TokenRepository,
	logger zerolog.Logger,
) *Sweeper {
	return &Sweeper{
		internshipRepo: internshipRepo,
		tokenRepo:      tokenRepo,
		cron:           cron.New(),
		logger:         logger,
	}
}

// Start registers the sweep job with the given cron spec and starts the
// scheduler in its own goroutine
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", schedule).Msg("Deadline sweeper started")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Deadline sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	swept, err := s.internshipRepo.DeactivateExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Msg("Deadline sweep failed")
	} else if swept > 0 {
		metrics.InternshipsDeactivated(int(swept))
		s.logger.Info().Int64("deactivated", swept).Msg("Expired internships deactivated")
	}

	if _, err := s.tokenRepo.CleanupExpiredTokens(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Token cleanup failed")
	}
}
