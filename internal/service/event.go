package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo    ports.EventRepo
	regRepo ports.RegistrationRepo
}

func NewEventService(repo ports.EventRepo, regRepo ports.RegistrationRepo) *EventService {
	return &EventService{
		repo:    repo,
		regRepo: regRepo,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Venue:       input.Venue,
		EventDate:   input.EventDate,
		Capacity:    input.Capacity,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListPast(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListPast(ctx, time.Now().UTC())
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListUpcoming(ctx, time.Now().UTC())
}

// GetDetails returns the event, its accepted head count and, when viewerID is
// set, the viewer's own registration for it.
func (s *EventService) GetDetails(ctx context.Context, id, viewerID string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	accepted, err := s.regRepo.CountAccepted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count accepted: %w", err)
	}

	details := &domain.EventDetails{
		Event:         *event,
		AcceptedCount: accepted,
	}

	if viewerID != "" {
		reg, err := s.regRepo.GetByEventAndUser(ctx, id, viewerID)
		if err != nil && !errors.Is(err, domain.ErrRegistrationNotFound) {
			return nil, fmt.Errorf("get own registration: %w", err)
		}
		details.MyRegistration = reg
	}

	return details, nil
}
