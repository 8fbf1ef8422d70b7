// Package repo contains all database access logic for the event planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/event-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so multi-statement writes nest cleanly inside test transactions.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EventRepo defines the persistence operations for Events (and routines,
// which share the table).
type EventRepo interface {
	// Create inserts a new event, makes its creator an admin collaborator and
	// inserts the initial checklist categories and items, all in one
	// transaction. Returns the persisted event.
	Create(ctx context.Context, event domain.Event, categories []domain.CategoryInput) (domain.Event, error)

	// GetByID retrieves a single event by its UUID primary key.
	// Returns domain.ErrNotFound if no event with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)

	// ListByUser returns every event the user collaborates on, ordered by
	// start_date descending.
	ListByUser(ctx context.Context, userID string) ([]domain.Event, error)

	// ListByUserPaged returns one page of ListByUser and the total count.
	ListByUserPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Event, int64, error)

	// ListStartingBetween returns dated events (not routines) whose start
	// boundary lies in [from, to), ordered by start_date.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)

	// Update overwrites the mutable fields of an existing event and returns the
	// updated record. Returns domain.ErrNotFound if no event with that ID exists.
	Update(ctx context.Context, event domain.Event) (domain.Event, error)

	// Delete removes an event by ID. Returns domain.ErrNotFound if it does not exist.
	// Collaborators, checklists, memories and completions cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `id, kind, title, description, location, color, start_date, end_date, created_by_id, created_at, updated_at`

// Create inserts the event, its owner and its initial checklist in one transaction.
func (r *pgEventRepo) Create(ctx context.Context, event domain.Event, categories []domain.CategoryInput) (domain.Event, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	const insertEvent = `
		INSERT INTO events (kind, title, description, location, color, start_date, end_date, created_by_id)
		VALUES (@kind::event_kind, @title, @description, @location, @color, @start_date, @end_date, @created_by_id)
		RETURNING ` + eventColumns

	row := tx.QueryRow(ctx, insertEvent, pgx.NamedArgs{
		"kind":          string(event.Kind),
		"title":         event.Title,
		"description":   event.Description,
		"location":      event.Location,
		"color":         event.Color,
		"start_date":    event.StartDate,
		"end_date":      event.EndDate,
		"created_by_id": event.CreatedByID,
	})
	created, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: insert event: %w", err)
	}

	const insertOwner = `
		INSERT INTO collaborators (event_id, user_id, role)
		VALUES (@event_id, @user_id, 'admin')`
	if _, err := tx.Exec(ctx, insertOwner, pgx.NamedArgs{
		"event_id": created.ID,
		"user_id":  created.CreatedByID,
	}); err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: insert owner: %w", err)
	}

	const insertCategory = `
		INSERT INTO checklist_categories (event_id, name)
		VALUES (@event_id, @name)
		RETURNING id`
	const insertItem = `
		INSERT INTO checklist_items (category_id, title, is_completed, priority)
		VALUES (@category_id, @title, false, 'medium')`

	for _, cat := range categories {
		var catID pgtype.UUID
		err := tx.QueryRow(ctx, insertCategory, pgx.NamedArgs{
			"event_id": created.ID,
			"name":     cat.Name,
		}).Scan(&catID)
		if err != nil {
			return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: insert category: %w", err)
		}
		for _, title := range cat.Items {
			if _, err := tx.Exec(ctx, insertItem, pgx.NamedArgs{
				"category_id": uuid.UUID(catID.Bytes),
				"title":       title,
			}); err != nil {
				return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: insert item: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves an event by primary key.
func (r *pgEventRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = @id`

	result, err := scanEvent(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns the user's events, most recent start first.
func (r *pgEventRepo) ListByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	const q = `
		SELECT e.id, e.kind, e.title, e.description, e.location, e.color,
		       e.start_date, e.end_date, e.created_by_id, e.created_at, e.updated_at
		FROM events e
		JOIN collaborators c ON c.event_id = e.id
		WHERE c.user_id = @user_id
		ORDER BY e.start_date DESC, e.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByUser: %w", err)
	}
	events, err := collectEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByUser: %w", err)
	}
	return events, nil
}

// ListByUserPaged returns one page of the user's events and the total count.
func (r *pgEventRepo) ListByUserPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	const countQ = `SELECT count(*) FROM collaborators WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListByUserPaged: count: %w", err)
	}

	const q = `
		SELECT e.id, e.kind, e.title, e.description, e.location, e.color,
		       e.start_date, e.end_date, e.created_by_id, e.created_at, e.updated_at
		FROM events e
		JOIN collaborators c ON c.event_id = e.id
		WHERE c.user_id = @user_id
		ORDER BY e.start_date DESC, e.id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListByUserPaged: %w", err)
	}
	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListByUserPaged: %w", err)
	}
	return events, total, nil
}

// ListStartingBetween returns dated events starting in [from, to).
func (r *pgEventRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	const q = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE kind = 'event'
		  AND start_date >= @from
		  AND start_date <  @to
		ORDER BY start_date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListStartingBetween: %w", err)
	}
	events, err := collectEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListStartingBetween: %w", err)
	}
	return events, nil
}

// Update overwrites the mutable fields of an event and returns the updated record.
// The kind and creator are fixed at creation.
func (r *pgEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	const q = `
		UPDATE events
		SET title       = @title,
		    description = @description,
		    location    = @location,
		    color       = @color,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + eventColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          event.ID,
		"title":       event.Title,
		"description": event.Description,
		"location":    event.Location,
		"color":       event.Color,
		"start_date":  event.StartDate,
		"end_date":    event.EndDate,
	})
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an event by primary key.
func (r *pgEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM events WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.EventRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EventRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEvent maps a single database row into a domain.Event.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		e    domain.Event
		id   pgtype.UUID
		kind string
	)

	err := s.Scan(&id, &kind, &e.Title, &e.Description, &e.Location, &e.Color,
		&e.StartDate, &e.EndDate, &e.CreatedByID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.Kind = domain.EventKind(kind)
	e.StartDate = e.StartDate.UTC()
	e.EndDate = e.EndDate.UTC()
	return e, nil
}

// collectEvents drains rows into a non-nil slice and closes them.
func collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return events, nil
}
