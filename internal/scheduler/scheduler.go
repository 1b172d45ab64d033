package scheduler

import (
	"context"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type registrationExpirer interface {
	ExpirePast(ctx context.Context) ([]*domain.Registration, error)
}

// Scheduler periodically cancels pending registrations whose event date has
// already passed, so stale applications never linger on the admin dashboard.
type Scheduler struct {
	registrationService registrationExpirer
	interval            time.Duration
	logger              logger.Logger
}

func New(
	registrationService registrationExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		registrationService: registrationService,
		interval:            interval,
		logger:              logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.registrationService.ExpirePast(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale registrations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, reg := range expired {
		s.logger.Info("registration expired",
			logger.String("registration_id", reg.ID),
			logger.String("user_id", reg.UserID),
			logger.String("event_id", reg.EventID),
		)
	}
}
