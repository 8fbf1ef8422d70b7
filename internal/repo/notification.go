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

// NotificationRepo defines the persistence operations for notifications.
type NotificationRepo interface {
	// Create inserts a notification. When dedupeKey is non-empty and a
	// notification with the same key already exists, nothing is written and
	// created is false.
	Create(ctx context.Context, n domain.Notification, dedupeKey string) (created bool, err error)

	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)

	// MarkRead flags a notification as read. Returns domain.ErrNotFound if the
	// notification does not exist or belongs to another user.
	MarkRead(ctx context.Context, id uuid.UUID, userID string) error
}

type pgNotificationRepo struct {
	db db
}

// NewNotificationRepo constructs a NotificationRepo backed by the provided db connection.
func NewNotificationRepo(db db) NotificationRepo {
	return &pgNotificationRepo{db: db}
}

func (r *pgNotificationRepo) Create(ctx context.Context, n domain.Notification, dedupeKey string) (bool, error) {
	const q = `
		INSERT INTO notifications (user_id, type, title, message, event_id, dedupe_key)
		VALUES (@user_id, @type::notification_type, @title, @message, @event_id, NULLIF(@dedupe_key, ''))
		ON CONFLICT (dedupe_key) DO NOTHING`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"user_id":    n.UserID,
		"type":       string(n.Type),
		"title":      n.Title,
		"message":    n.Message,
		"event_id":   n.EventID, // nil becomes NULL
		"dedupe_key": dedupeKey,
	})
	if err != nil {
		return false, fmt.Errorf("repo.NotificationRepo.Create: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *pgNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	const q = `
		SELECT id, user_id, type, title, message, is_read, event_id, created_at
		FROM notifications
		WHERE user_id = @user_id
		  AND (NOT @unread_only OR NOT is_read)
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID, "unread_only": unreadOnly})
	if err != nil {
		return nil, fmt.Errorf("repo.NotificationRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.NotificationRepo.ListByUser: scan: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.NotificationRepo.ListByUser: rows: %w", err)
	}
	return out, nil
}

func (r *pgNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID string) error {
	const q = `UPDATE notifications SET is_read = true WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.NotificationRepo.MarkRead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.NotificationRepo.MarkRead: %w", domain.ErrNotFound)
	}
	return nil
}

func scanNotification(s scanner) (domain.Notification, error) {
	var (
		n     domain.Notification
		id    pgtype.UUID
		eid   pgtype.UUID
		ntype string
	)
	if err := s.Scan(&id, &n.UserID, &ntype, &n.Title, &n.Message, &n.Read, &eid, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotFound
		}
		return domain.Notification{}, err
	}
	n.ID = uuid.UUID(id.Bytes)
	n.Type = domain.NotificationType(ntype)
	if eid.Valid {
		e := uuid.UUID(eid.Bytes)
		n.EventID = &e
	}
	return n, nil
}
