package ports

import (
	"context"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Event, error)
	ListPast(ctx context.Context, now time.Time) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]*domain.Event, error)
}
