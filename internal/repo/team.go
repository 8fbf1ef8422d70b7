package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/event-planner/internal/domain"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for duplicate keys.
const pgUniqueViolation = "23505"

// TeamRepo defines the persistence operations for an event's collaborators.
type TeamRepo interface {
	// Add inserts a collaborator. Returns domain.ErrConflict if the user is
	// already on the team.
	Add(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error)

	// Get returns a single membership.
	// Returns domain.ErrNotFound if the user is not on the event's team.
	Get(ctx context.Context, eventID uuid.UUID, userID string) (domain.Collaborator, error)

	// ListByEvent returns the team ordered by role (admins first) then join time.
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Collaborator, error)

	// UpdateRole changes a member's role and returns the updated membership.
	// Returns domain.ErrNotFound if the user is not on the team.
	UpdateRole(ctx context.Context, eventID uuid.UUID, userID string, role domain.Role) (domain.Collaborator, error)

	// Remove deletes a membership. Returns domain.ErrNotFound if absent.
	Remove(ctx context.Context, eventID uuid.UUID, userID string) error

	// CountAdmins returns how many admins the event has.
	CountAdmins(ctx context.Context, eventID uuid.UUID) (int, error)
}

type pgTeamRepo struct {
	db db
}

// NewTeamRepo constructs a TeamRepo backed by the provided db connection.
func NewTeamRepo(db db) TeamRepo {
	return &pgTeamRepo{db: db}
}

func (r *pgTeamRepo) Add(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error) {
	const q = `
		INSERT INTO collaborators (event_id, user_id, role)
		VALUES (@event_id, @user_id, @role::collaborator_role)
		RETURNING event_id, user_id, role, joined_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"event_id": c.EventID,
		"user_id":  c.UserID,
		"role":     string(c.Role),
	})
	result, err := scanCollaborator(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.Collaborator{}, fmt.Errorf("repo.TeamRepo.Add: %w", domain.ErrConflict)
		}
		return domain.Collaborator{}, fmt.Errorf("repo.TeamRepo.Add: %w", err)
	}
	return result, nil
}

func (r *pgTeamRepo) Get(ctx context.Context, eventID uuid.UUID, userID string) (domain.Collaborator, error) {
	const q = `
		SELECT event_id, user_id, role, joined_at
		FROM collaborators
		WHERE event_id = @event_id AND user_id = @user_id`

	result, err := scanCollaborator(r.db.QueryRow(ctx, q, pgx.NamedArgs{"event_id": eventID, "user_id": userID}))
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("repo.TeamRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgTeamRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Collaborator, error) {
	// Enum ordering follows declaration order: admin, editor, viewer.
	const q = `
		SELECT event_id, user_id, role, joined_at
		FROM collaborators
		WHERE event_id = @event_id
		ORDER BY role, joined_at, user_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("repo.TeamRepo.ListByEvent: %w", err)
	}
	defer rows.Close()

	team := []domain.Collaborator{}
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TeamRepo.ListByEvent: scan: %w", err)
		}
		team = append(team, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TeamRepo.ListByEvent: rows: %w", err)
	}
	return team, nil
}

func (r *pgTeamRepo) UpdateRole(ctx context.Context, eventID uuid.UUID, userID string, role domain.Role) (domain.Collaborator, error) {
	const q = `
		UPDATE collaborators
		SET role = @role::collaborator_role
		WHERE event_id = @event_id AND user_id = @user_id
		RETURNING event_id, user_id, role, joined_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"event_id": eventID,
		"user_id":  userID,
		"role":     string(role),
	})
	result, err := scanCollaborator(row)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("repo.TeamRepo.UpdateRole: %w", err)
	}
	return result, nil
}

func (r *pgTeamRepo) Remove(ctx context.Context, eventID uuid.UUID, userID string) error {
	const q = `DELETE FROM collaborators WHERE event_id = @event_id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"event_id": eventID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TeamRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TeamRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTeamRepo) CountAdmins(ctx context.Context, eventID uuid.UUID) (int, error) {
	const q = `SELECT count(*) FROM collaborators WHERE event_id = @event_id AND role = 'admin'`

	var n int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"event_id": eventID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.TeamRepo.CountAdmins: %w", err)
	}
	return n, nil
}

func scanCollaborator(s scanner) (domain.Collaborator, error) {
	var (
		c    domain.Collaborator
		id   pgtype.UUID
		role string
	)
	if err := s.Scan(&id, &c.UserID, &role, &c.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Collaborator{}, domain.ErrNotFound
		}
		return domain.Collaborator{}, err
	}
	c.EventID = uuid.UUID(id.Bytes)
	c.Role = domain.Role(role)
	return c, nil
}
