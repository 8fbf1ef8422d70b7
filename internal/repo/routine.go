package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/event-planner/internal/domain"
)

// RoutineRepo records daily completions of routines.
type RoutineRepo interface {
	// FindCompletion returns the ID of the user's completion of a routine
	// within [from, to). Returns domain.ErrNotFound if there is none.
	FindCompletion(ctx context.Context, routineID uuid.UUID, userID string, from, to time.Time) (uuid.UUID, error)

	// AddCompletion records that the user completed the routine at the given
	// instant. A second completion on the same UTC day is ignored.
	AddCompletion(ctx context.Context, routineID uuid.UUID, userID string, at time.Time) error

	// DeleteCompletion removes a completion by ID.
	DeleteCompletion(ctx context.Context, id uuid.UUID) error

	// CompletedBetween returns the set of routine IDs the user completed
	// within [from, to).
	CompletedBetween(ctx context.Context, userID string, from, to time.Time) (map[uuid.UUID]bool, error)
}

type pgRoutineRepo struct {
	db db
}

// NewRoutineRepo constructs a RoutineRepo backed by the provided db connection.
func NewRoutineRepo(db db) RoutineRepo {
	return &pgRoutineRepo{db: db}
}

func (r *pgRoutineRepo) FindCompletion(ctx context.Context, routineID uuid.UUID, userID string, from, to time.Time) (uuid.UUID, error) {
	const q = `
		SELECT id FROM routine_completions
		WHERE routine_id = @routine_id
		  AND user_id = @user_id
		  AND completed_at >= @from
		  AND completed_at <  @to
		ORDER BY completed_at
		LIMIT 1`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"routine_id": routineID,
		"user_id":    userID,
		"from":       from,
		"to":         to,
	}).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("repo.RoutineRepo.FindCompletion: %w", domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("repo.RoutineRepo.FindCompletion: %w", err)
	}
	return uuid.UUID(id.Bytes), nil
}

func (r *pgRoutineRepo) AddCompletion(ctx context.Context, routineID uuid.UUID, userID string, at time.Time) error {
	const q = `
		INSERT INTO routine_completions (routine_id, user_id, completed_at)
		VALUES (@routine_id, @user_id, @at)
		ON CONFLICT DO NOTHING`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"routine_id": routineID, "user_id": userID, "at": at}); err != nil {
		return fmt.Errorf("repo.RoutineRepo.AddCompletion: %w", err)
	}
	return nil
}

func (r *pgRoutineRepo) DeleteCompletion(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM routine_completions WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RoutineRepo.DeleteCompletion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RoutineRepo.DeleteCompletion: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgRoutineRepo) CompletedBetween(ctx context.Context, userID string, from, to time.Time) (map[uuid.UUID]bool, error) {
	const q = `
		SELECT DISTINCT routine_id FROM routine_completions
		WHERE user_id = @user_id
		  AND completed_at >= @from
		  AND completed_at <  @to`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID, "from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("repo.RoutineRepo.CompletedBetween: %w", err)
	}
	defer rows.Close()

	done := map[uuid.UUID]bool{}
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repo.RoutineRepo.CompletedBetween: scan: %w", err)
		}
		done[uuid.UUID(id.Bytes)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RoutineRepo.CompletedBetween: rows: %w", err)
	}
	return done, nil
}
