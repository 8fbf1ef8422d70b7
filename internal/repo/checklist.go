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

// ChecklistRepo defines the persistence operations for checklist categories
// and their items.
type ChecklistRepo interface {
	// CreateCategory inserts an empty category on an event.
	CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error)

	// GetCategory returns a category without its items.
	// Returns domain.ErrNotFound if it does not exist.
	GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error)

	// RenameCategory sets a category's name. Returns domain.ErrNotFound if absent.
	RenameCategory(ctx context.Context, id uuid.UUID, name string) (domain.Category, error)

	// DeleteCategory removes a category and, by cascade, its items.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ListByEvent returns the event's categories in creation order, each with
	// its items ordered by priority (high first) then creation time.
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Category, error)

	// CreateItem inserts an item into a category.
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)

	// ItemEventID returns the event an item belongs to.
	// Returns domain.ErrNotFound if the item does not exist.
	ItemEventID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)

	// UpdateItem overwrites an item's title, priority and assignee.
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)

	// SetItemCompleted marks an item done or not done.
	SetItemCompleted(ctx context.Context, itemID uuid.UUID, completed bool) (domain.Item, error)

	// DeleteItem removes an item. Returns domain.ErrNotFound if absent.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type pgChecklistRepo struct {
	db db
}

// NewChecklistRepo constructs a ChecklistRepo backed by the provided db connection.
func NewChecklistRepo(db db) ChecklistRepo {
	return &pgChecklistRepo{db: db}
}

const itemColumns = `id, category_id, title, is_completed, priority, COALESCE(assigned_to_id, ''), created_at`

func (r *pgChecklistRepo) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	const q = `
		INSERT INTO checklist_categories (event_id, name, color)
		VALUES (@event_id, @name, @color)
		RETURNING id, event_id, name, color, created_at`

	result, err := scanCategory(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"event_id": c.EventID,
		"name":     c.Name,
		"color":    c.Color,
	}))
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.ChecklistRepo.CreateCategory: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	const q = `SELECT id, event_id, name, color, created_at FROM checklist_categories WHERE id = @id`

	result, err := scanCategory(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.ChecklistRepo.GetCategory: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) RenameCategory(ctx context.Context, id uuid.UUID, name string) (domain.Category, error) {
	const q = `
		UPDATE checklist_categories SET name = @name
		WHERE id = @id
		RETURNING id, event_id, name, color, created_at`

	result, err := scanCategory(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "name": name}))
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.ChecklistRepo.RenameCategory: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM checklist_categories WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ChecklistRepo.DeleteCategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ChecklistRepo.DeleteCategory: %w", domain.ErrNotFound)
	}
	return nil
}

// ListByEvent loads categories and items with two queries and stitches them
// together in memory.
func (r *pgChecklistRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Category, error) {
	const catQ = `
		SELECT id, event_id, name, color, created_at
		FROM checklist_categories
		WHERE event_id = @event_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, catQ, pgx.NamedArgs{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.ListByEvent: %w", err)
	}
	categories := []domain.Category{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("repo.ChecklistRepo.ListByEvent: scan category: %w", err)
		}
		c.Items = []domain.Item{}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.ListByEvent: rows: %w", err)
	}

	// Enum ordering follows declaration order: high, medium, low.
	const itemQ = `
		SELECT i.id, i.category_id, i.title, i.is_completed, i.priority,
		       COALESCE(i.assigned_to_id, ''), i.created_at
		FROM checklist_items i
		JOIN checklist_categories c ON c.id = i.category_id
		WHERE c.event_id = @event_id
		ORDER BY i.priority, i.created_at, i.id`

	rows, err = r.db.Query(ctx, itemQ, pgx.NamedArgs{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.ListByEvent: items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ChecklistRepo.ListByEvent: scan item: %w", err)
		}
		if i, ok := index[item.CategoryID]; ok {
			categories[i].Items = append(categories[i].Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.ListByEvent: item rows: %w", err)
	}
	return categories, nil
}

func (r *pgChecklistRepo) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		INSERT INTO checklist_items (category_id, title, is_completed, priority, assigned_to_id)
		VALUES (@category_id, @title, false, @priority::item_priority, NULLIF(@assigned_to_id, ''))
		RETURNING ` + itemColumns

	result, err := scanItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"category_id":    item.CategoryID,
		"title":          item.Title,
		"priority":       string(item.Priority),
		"assigned_to_id": item.AssignedToID,
	}))
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ChecklistRepo.CreateItem: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) ItemEventID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	const q = `
		SELECT c.event_id
		FROM checklist_items i
		JOIN checklist_categories c ON c.id = i.category_id
		WHERE i.id = @id`

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID}).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("repo.ChecklistRepo.ItemEventID: %w", domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("repo.ChecklistRepo.ItemEventID: %w", err)
	}
	return uuid.UUID(id.Bytes), nil
}

func (r *pgChecklistRepo) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		UPDATE checklist_items
		SET title          = @title,
		    priority       = @priority::item_priority,
		    assigned_to_id = NULLIF(@assigned_to_id, '')
		WHERE id = @id
		RETURNING ` + itemColumns

	result, err := scanItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":             item.ID,
		"title":          item.Title,
		"priority":       string(item.Priority),
		"assigned_to_id": item.AssignedToID,
	}))
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ChecklistRepo.UpdateItem: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) SetItemCompleted(ctx context.Context, itemID uuid.UUID, completed bool) (domain.Item, error) {
	const q = `
		UPDATE checklist_items SET is_completed = @completed
		WHERE id = @id
		RETURNING ` + itemColumns

	result, err := scanItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "completed": completed}))
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ChecklistRepo.SetItemCompleted: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM checklist_items WHERE id = @id`, pgx.NamedArgs{"id": itemID})
	if err != nil {
		return fmt.Errorf("repo.ChecklistRepo.DeleteItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ChecklistRepo.DeleteItem: %w", domain.ErrNotFound)
	}
	return nil
}

func scanCategory(s scanner) (domain.Category, error) {
	var (
		c       domain.Category
		id, eid pgtype.UUID
	)
	if err := s.Scan(&id, &eid, &c.Name, &c.Color, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	c.ID = uuid.UUID(id.Bytes)
	c.EventID = uuid.UUID(eid.Bytes)
	return c, nil
}

func scanItem(s scanner) (domain.Item, error) {
	var (
		it       domain.Item
		id, cid  pgtype.UUID
		priority string
		assignee pgtype.Text
	)
	if err := s.Scan(&id, &cid, &it.Title, &it.Completed, &priority, &assignee, &it.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, err
	}
	it.ID = uuid.UUID(id.Bytes)
	it.CategoryID = uuid.UUID(cid.Bytes)
	it.Priority = domain.Priority(priority)
	it.AssignedToID = assignee.String
	return it, nil
}
