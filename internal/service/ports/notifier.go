package ports

import (
	"context"

	"github.com/Cod-Harsh/college-events/internal/domain"
)

type RegistrationNotifier interface {
	NotifyRegistrationCreated(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRegistrationDecided(ctx context.Context, user *domain.User, event *domain.Event, status domain.RegistrationStatus)
	NotifyRegistrationExpired(ctx context.Context, user *domain.User, event *domain.Event)
}
