package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.RegistrationNotifier
	logger    logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Register submits a pending registration for the event. Capacity and the
// one-registration-per-user rule are enforced atomically in the repository.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Status:    domain.RegistrationStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistrationCreated(context.WithoutCancel(ctx), user, event)

	return reg, nil
}

// Decide applies an admin action (accept, reject, cancel) to a registration.
// Accepting into a full event fails with domain.ErrEventFull.
func (s *RegistrationService) Decide(ctx context.Context, regID, action string) (*domain.Registration, error) {
	status, err := domain.ActionStatus(action)
	if err != nil {
		return nil, err
	}

	reg, err := s.regRepo.UpdateStatus(ctx, regID, status)
	if err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	s.logger.Info("registration decided",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", reg.EventID),
		logger.String("user_id", reg.UserID),
		logger.String("status", string(status)),
	)

	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", reg.UserID),
			logger.String("error", err.Error()),
		)
		return reg, nil
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", reg.EventID),
			logger.String("error", err.Error()),
		)
		return reg, nil
	}

	go s.notifier.NotifyRegistrationDecided(context.WithoutCancel(ctx), user, event, status)

	return reg, nil
}

func (s *RegistrationService) ListPending(ctx context.Context) ([]*domain.Registration, error) {
	return s.regRepo.ListPending(ctx)
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

// ExpirePast cancels pending registrations for events whose date has passed.
// Called periodically by the scheduler.
func (s *RegistrationService) ExpirePast(ctx context.Context) ([]*domain.Registration, error) {
	expired, err := s.regRepo.ExpirePast(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire past: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale pending registrations cancelled",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *RegistrationService) notifyExpired(ctx context.Context, regs []*domain.Registration) {
	for _, reg := range regs {
		user, err := s.userRepo.GetByID(ctx, reg.UserID)
		if err != nil {
			s.logger.Error("failed to get user for expiry notification",
				logger.String("user_id", reg.UserID),
			)
			continue
		}

		event, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			s.logger.Error("failed to get event for expiry notification",
				logger.String("event_id", reg.EventID),
			)
			continue
		}

		s.notifier.NotifyRegistrationExpired(ctx, user, event)
	}
}
