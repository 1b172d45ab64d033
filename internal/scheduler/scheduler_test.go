package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/scheduler/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestScheduler_TicksAndStops(t *testing.T) {
	ticked := make(chan struct{}, 1)

	expirer := mocks.NewMockRegistrationExpirer(t)
	expirer.EXPECT().
		ExpirePast(mock.Anything).
		Run(func(ctx context.Context) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).
		Return([]*domain.Registration{
			{ID: "reg-1", EventID: "event-1", UserID: "user-1"},
		}, nil)

	s := New(expirer, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(stopped)
	}()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("scheduler never ticked")
	}

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}

func TestScheduler_KeepsRunningAfterError(t *testing.T) {
	var calls atomic.Int32

	expirer := mocks.NewMockRegistrationExpirer(t)
	expirer.EXPECT().
		ExpirePast(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*domain.Registration, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("db down")
			}
			return nil, nil
		})

	s := New(expirer, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "scheduler stopped ticking after an error")

	cancel()
	<-stopped
}
