package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/event-planner/internal/domain"
)

// MemoryRepo defines the persistence operations for memories and reactions.
type MemoryRepo interface {
	// Create inserts a memory and returns it with no reactions.
	Create(ctx context.Context, m domain.Memory) (domain.Memory, error)

	// GetByID returns a memory without reactions.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error)

	// ListByEventPaged returns one page of an event's memories, newest first,
	// each with its reactions, plus the total count.
	ListByEventPaged(ctx context.Context, eventID uuid.UUID, p domain.PaginationParams) ([]domain.Memory, int64, error)

	// Delete removes a memory. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetReaction returns the user's reaction on a memory.
	// Returns domain.ErrNotFound if the user has not reacted.
	GetReaction(ctx context.Context, memoryID uuid.UUID, userID string) (domain.Reaction, error)

	// PutReaction inserts or replaces the user's reaction.
	PutReaction(ctx context.Context, r domain.Reaction) error

	// DeleteReaction removes the user's reaction. Returns domain.ErrNotFound if absent.
	DeleteReaction(ctx context.Context, memoryID uuid.UUID, userID string) error
}

type pgMemoryRepo struct {
	db db
}

// NewMemoryRepo constructs a MemoryRepo backed by the provided db connection.
func NewMemoryRepo(db db) MemoryRepo {
	return &pgMemoryRepo{db: db}
}

const memoryColumns = `id, event_id, url, alt, type, uploaded_by_id, created_at`

func (r *pgMemoryRepo) Create(ctx context.Context, m domain.Memory) (domain.Memory, error) {
	const q = `
		INSERT INTO memories (event_id, url, alt, type, uploaded_by_id)
		VALUES (@event_id, @url, @alt, @type, @uploaded_by_id)
		RETURNING ` + memoryColumns

	result, err := scanMemory(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"event_id":       m.EventID,
		"url":            m.URL,
		"alt":            m.Alt,
		"type":           string(m.Type),
		"uploaded_by_id": m.UploadedByID,
	}))
	if err != nil {
		return domain.Memory{}, fmt.Errorf("repo.MemoryRepo.Create: %w", err)
	}
	result.Reactions = []domain.Reaction{}
	return result, nil
}

func (r *pgMemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	const q = `SELECT ` + memoryColumns + ` FROM memories WHERE id = @id`

	result, err := scanMemory(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Memory{}, fmt.Errorf("repo.MemoryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgMemoryRepo) ListByEventPaged(ctx context.Context, eventID uuid.UUID, p domain.PaginationParams) ([]domain.Memory, int64, error) {
	var total int64
	const countQ = `SELECT count(*) FROM memories WHERE event_id = @event_id`
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"event_id": eventID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: count: %w", err)
	}

	const q = `
		SELECT ` + memoryColumns + `
		FROM memories
		WHERE event_id = @event_id
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"event_id": eventID,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: %w", err)
	}
	memories := []domain.Memory{}
	index := map[uuid.UUID]int{}
	ids := []uuid.UUID{}
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: scan: %w", err)
		}
		m.Reactions = []domain.Reaction{}
		index[m.ID] = len(memories)
		ids = append(ids, m.ID)
		memories = append(memories, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: rows: %w", err)
	}
	if len(ids) == 0 {
		return memories, total, nil
	}

	const reactQ = `
		SELECT memory_id, user_id, emoji
		FROM memory_reactions
		WHERE memory_id = ANY(@ids)
		ORDER BY memory_id, user_id`

	rows, err = r.db.Query(ctx, reactQ, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: reactions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		rc, err := scanReaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: scan reaction: %w", err)
		}
		if i, ok := index[rc.MemoryID]; ok {
			memories[i].Reactions = append(memories[i].Reactions, rc)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.MemoryRepo.ListByEventPaged: reaction rows: %w", err)
	}
	return memories, total, nil
}

func (r *pgMemoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM memories WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.MemoryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MemoryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgMemoryRepo) GetReaction(ctx context.Context, memoryID uuid.UUID, userID string) (domain.Reaction, error) {
	const q = `
		SELECT memory_id, user_id, emoji
		FROM memory_reactions
		WHERE memory_id = @memory_id AND user_id = @user_id`

	result, err := scanReaction(r.db.QueryRow(ctx, q, pgx.NamedArgs{"memory_id": memoryID, "user_id": userID}))
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("repo.MemoryRepo.GetReaction: %w", err)
	}
	return result, nil
}

func (r *pgMemoryRepo) PutReaction(ctx context.Context, rc domain.Reaction) error {
	const q = `
		INSERT INTO memory_reactions (memory_id, user_id, emoji)
		VALUES (@memory_id, @user_id, @emoji)
		ON CONFLICT (memory_id, user_id) DO UPDATE SET emoji = EXCLUDED.emoji`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"memory_id": rc.MemoryID,
		"user_id":   rc.UserID,
		"emoji":     rc.Emoji,
	})
	if err != nil {
		return fmt.Errorf("repo.MemoryRepo.PutReaction: %w", err)
	}
	return nil
}

func (r *pgMemoryRepo) DeleteReaction(ctx context.Context, memoryID uuid.UUID, userID string) error {
	const q = `DELETE FROM memory_reactions WHERE memory_id = @memory_id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"memory_id": memoryID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.MemoryRepo.DeleteReaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MemoryRepo.DeleteReaction: %w", domain.ErrNotFound)
	}
	return nil
}

func scanMemory(s scanner) (domain.Memory, error) {
	var (
		m         domain.Memory
		id, eid   pgtype.UUID
		mediaType string
	)
	if err := s.Scan(&id, &eid, &m.URL, &m.Alt, &mediaType, &m.UploadedByID, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Memory{}, domain.ErrNotFound
		}
		return domain.Memory{}, err
	}
	m.ID = uuid.UUID(id.Bytes)
	m.EventID = uuid.UUID(eid.Bytes)
	m.Type = domain.MediaType(mediaType)
	return m, nil
}

func scanReaction(s scanner) (domain.Reaction, error) {
	var (
		rc  domain.Reaction
		mid pgtype.UUID
	)
	if err := s.Scan(&mid, &rc.UserID, &rc.Emoji); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reaction{}, domain.ErrNotFound
		}
		return domain.Reaction{}, err
	}
	rc.MemoryID = uuid.UUID(mid.Bytes)
	return rc, nil
}
