package ports

import (
	"context"

	"github.com/Cod-Harsh/college-events/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.Registration) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error)
	ListPending(ctx context.Context) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	CountAccepted(ctx context.Context, eventID string) (int, error)
	ExpirePast(ctx context.Context) ([]*domain.Registration, error)
}
