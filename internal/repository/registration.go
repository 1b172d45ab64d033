package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a pending registration. The event row is locked for the
// duration of the transaction so the capacity check and the insert cannot
// interleave with a concurrent registration for the same event.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	var capacity sql.NullInt64
	if err = tx.QueryRowContext(ctx, capQuery, reg.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event capacity: %w", err)
	}

	if capacity.Valid {
		acceptedQuery := `SELECT COUNT(*) FROM registrations
						  WHERE event_id = $1 AND status = $2`
		var accepted int64
		if err = tx.QueryRowContext(
			ctx, acceptedQuery, reg.EventID, domain.RegistrationStatusAccepted,
		).Scan(&accepted); err != nil {
			return fmt.Errorf("count accepted registrations: %w", err)
		}

		if accepted >= capacity.Int64 {
			return domain.ErrEventFull
		}
	}

	query := `INSERT INTO registrations (id, event_id, user_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query, reg.ID, reg.EventID,
		reg.UserID, reg.Status, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM registrations
			  WHERE event_id=$1 AND user_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

// UpdateStatus applies an admin decision. Accepting re-checks capacity with
// the event row locked, so an accept can never overshoot the limit even when
// decisions race with new registrations.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var reg domain.Registration
	regQuery := `SELECT id, event_id, user_id, status, created_at, updated_at
				 FROM registrations
				 WHERE id = $1
				 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, regQuery, id).Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	if status == domain.RegistrationStatusAccepted {
		capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
		var capacity sql.NullInt64
		if err = tx.QueryRowContext(ctx, capQuery, reg.EventID).Scan(&capacity); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrEventNotFound
			}
			return nil, fmt.Errorf("get event capacity: %w", err)
		}

		if capacity.Valid {
			acceptedQuery := `SELECT COUNT(*) FROM registrations
							  WHERE event_id = $1 AND status = $2 AND id <> $3`
			var accepted int64
			if err = tx.QueryRowContext(
				ctx, acceptedQuery, reg.EventID, domain.RegistrationStatusAccepted, reg.ID,
			).Scan(&accepted); err != nil {
				return nil, fmt.Errorf("count accepted registrations: %w", err)
			}

			if accepted >= capacity.Int64 {
				return nil, domain.ErrEventFull
			}
		}
	}

	query := `UPDATE registrations
			  SET status = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, query, id, status).Scan(&reg.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update registration status: %w", err)
	}
	reg.Status = status

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &reg, nil
}

func (r *RegistrationRepository) ListPending(ctx context.Context) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM registrations
			  WHERE status = $1
			  ORDER BY created_at DESC`

	return r.queryRegistrations(ctx, query, domain.RegistrationStatusPending)
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM registrations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.queryRegistrations(ctx, query, userID)
}

func (r *RegistrationRepository) CountAccepted(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM registrations
			  WHERE event_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.RegistrationStatusAccepted)
	if err != nil {
		return 0, fmt.Errorf("count accepted: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan accepted count: %w", err)
	}

	return count, nil
}

// ExpirePast cancels pending registrations whose event date has passed.
func (r *RegistrationRepository) ExpirePast(ctx context.Context) ([]*domain.Registration, error) {
	query := `
        UPDATE registrations r
        SET status = $2, updated_at = NOW()
        FROM events e
        WHERE r.event_id = e.id
          AND r.status = $1
          AND e.event_date < NOW()
        RETURNING r.id, r.event_id, r.user_id,
                  r.status, r.created_at, r.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RegistrationStatusPending, domain.RegistrationStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("expire past: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(
			&reg.ID, &reg.EventID, &reg.UserID,
			&reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		res = append(res, &reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) queryRegistrations(ctx context.Context, query string, args ...any) ([]*domain.Registration, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &reg)
	}

	return res, rows.Err()
}
