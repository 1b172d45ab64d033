package service

import (
	"context"
	"testing"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	eventDate := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockEventRepo(t)
		repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Event")).
			Return(nil)

		svc := NewEventService(repo, mocks.NewMockRegistrationRepo(t))

		capacity := 50
		event, err := svc.Create(context.Background(), domain.CreateEventInput{
			Title:       "Tech Fest",
			Description: "Annual tech festival",
			Venue:       "Main auditorium",
			EventDate:   eventDate,
			Capacity:    &capacity,
		})
		require.NoError(t, err)
		require.NotNil(t, event)

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, "Tech Fest", event.Title)
		assert.Equal(t, eventDate, event.EventDate)
		require.NotNil(t, event.Capacity)
		assert.Equal(t, 50, *event.Capacity)
	})

	t.Run("unlimited capacity allowed", func(t *testing.T) {
		repo := mocks.NewMockEventRepo(t)
		repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Event")).
			Return(nil)

		svc := NewEventService(repo, mocks.NewMockRegistrationRepo(t))

		event, err := svc.Create(context.Background(), domain.CreateEventInput{
			Title:     "Open Mic",
			EventDate: eventDate,
		})
		require.NoError(t, err)
		assert.Nil(t, event.Capacity)
	})

	t.Run("validation failures", func(t *testing.T) {
		zero := 0

		tests := []struct {
			name  string
			input domain.CreateEventInput
		}{
			{
				name:  "empty title",
				input: domain.CreateEventInput{EventDate: eventDate},
			},
			{
				name:  "zero date",
				input: domain.CreateEventInput{Title: "Tech Fest"},
			},
			{
				name: "capacity below one",
				input: domain.CreateEventInput{
					Title: "Tech Fest", EventDate: eventDate, Capacity: &zero,
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewEventService(
					mocks.NewMockEventRepo(t),
					mocks.NewMockRegistrationRepo(t),
				)

				event, err := svc.Create(context.Background(), tt.input)
				assert.Nil(t, event)
				assert.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})
}

func TestEventService_GetDetails(t *testing.T) {
	event := &domain.Event{
		ID:        "event-1",
		Title:     "Tech Fest",
		EventDate: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
	}

	t.Run("anonymous viewer", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepo(t)
		eventRepo.EXPECT().GetByID(mock.Anything, "event-1").Return(event, nil)

		regRepo := mocks.NewMockRegistrationRepo(t)
		regRepo.EXPECT().CountAccepted(mock.Anything, "event-1").Return(12, nil)

		svc := NewEventService(eventRepo, regRepo)

		details, err := svc.GetDetails(context.Background(), "event-1", "")
		require.NoError(t, err)

		assert.Equal(t, "Tech Fest", details.Event.Title)
		assert.Equal(t, 12, details.AcceptedCount)
		assert.Nil(t, details.MyRegistration)
	})

	t.Run("viewer with registration", func(t *testing.T) {
		reg := &domain.Registration{
			ID:      "reg-1",
			EventID: "event-1",
			UserID:  "user-1",
			Status:  domain.RegistrationStatusPending,
		}

		eventRepo := mocks.NewMockEventRepo(t)
		eventRepo.EXPECT().GetByID(mock.Anything, "event-1").Return(event, nil)

		regRepo := mocks.NewMockRegistrationRepo(t)
		regRepo.EXPECT().CountAccepted(mock.Anything, "event-1").Return(12, nil)
		regRepo.EXPECT().
			GetByEventAndUser(mock.Anything, "event-1", "user-1").
			Return(reg, nil)

		svc := NewEventService(eventRepo, regRepo)

		details, err := svc.GetDetails(context.Background(), "event-1", "user-1")
		require.NoError(t, err)
		require.NotNil(t, details.MyRegistration)
		assert.Equal(t, "reg-1", details.MyRegistration.ID)
	})

	t.Run("viewer without registration", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepo(t)
		eventRepo.EXPECT().GetByID(mock.Anything, "event-1").Return(event, nil)

		regRepo := mocks.NewMockRegistrationRepo(t)
		regRepo.EXPECT().CountAccepted(mock.Anything, "event-1").Return(12, nil)
		regRepo.EXPECT().
			GetByEventAndUser(mock.Anything, "event-1", "user-1").
			Return(nil, domain.ErrRegistrationNotFound)

		svc := NewEventService(eventRepo, regRepo)

		details, err := svc.GetDetails(context.Background(), "event-1", "user-1")
		require.NoError(t, err)
		assert.Nil(t, details.MyRegistration)
	})

	t.Run("event not found", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepo(t)
		eventRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, domain.ErrEventNotFound)

		svc := NewEventService(eventRepo, mocks.NewMockRegistrationRepo(t))

		details, err := svc.GetDetails(context.Background(), "missing", "")
		assert.Nil(t, details)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}
