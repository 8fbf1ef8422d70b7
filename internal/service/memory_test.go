package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/service"
)

func TestMemoryService_Create(t *testing.T) {
	memories := &mockMemoryRepo{
		create: func(_ context.Context, m domain.Memory) (domain.Memory, error) { return m, nil },
	}
	svc := service.NewMemoryService(teamWith(map[string]domain.Role{"editor": domain.RoleEditor}), memories)

	got, err := svc.Create(context.Background(), "editor", domain.Memory{
		EventID: uuid.New(),
		URL:     " https://cdn.example.com/a.jpg ",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg", got.URL)
	assert.Equal(t, domain.MediaImage, got.Type)
	assert.Equal(t, "editor", got.UploadedByID)
}

func TestMemoryService_Create_Validation(t *testing.T) {
	svc := service.NewMemoryService(teamWith(map[string]domain.Role{"editor": domain.RoleEditor}), &mockMemoryRepo{})

	for _, m := range []domain.Memory{
		{URL: "not a url"},
		{URL: "ftp://cdn.example.com/a.jpg"},
		{URL: "https://cdn.example.com/a.gif", Type: "gif"},
	} {
		_, err := svc.Create(context.Background(), "editor", m)
		assert.ErrorIs(t, err, domain.ErrValidation, m.URL)
	}
}

func TestMemoryService_Delete_Permissions(t *testing.T) {
	mem := domain.Memory{ID: uuid.New(), EventID: uuid.New(), UploadedByID: "friend"}
	var deleted int
	memories := &mockMemoryRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Memory, error) { return mem, nil },
		delete:  func(context.Context, uuid.UUID) error { deleted++; return nil },
	}
	team := teamWith(map[string]domain.Role{
		"owner-1": domain.RoleAdmin,
		"friend":  domain.RoleEditor,
		"other":   domain.RoleEditor,
	})
	svc := service.NewMemoryService(team, memories)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, "other", mem.ID), domain.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, "friend", mem.ID), "uploader may delete")
	require.NoError(t, svc.Delete(ctx, "owner-1", mem.ID), "admin may delete")
	assert.Equal(t, 2, deleted)
}

func TestMemoryService_React(t *testing.T) {
	mem := domain.Memory{ID: uuid.New(), EventID: uuid.New()}
	team := teamWith(map[string]domain.Role{"guest": domain.RoleViewer})

	tests := []struct {
		name    string
		current *domain.Reaction
		emoji   string
		want    domain.ToggleAction
	}{
		{"none adds", nil, "❤️", domain.ActionAdded},
		{"same removes", &domain.Reaction{Emoji: "❤️"}, "❤️", domain.ActionRemoved},
		{"different replaces", &domain.Reaction{Emoji: "❤️"}, "🔥", domain.ActionReplaced},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var put, removed bool
			memories := &mockMemoryRepo{
				getByID: func(context.Context, uuid.UUID) (domain.Memory, error) { return mem, nil },
				getReaction: func(context.Context, uuid.UUID, string) (domain.Reaction, error) {
					if tc.current == nil {
						return domain.Reaction{}, domain.ErrNotFound
					}
					return *tc.current, nil
				},
				putReaction: func(_ context.Context, r domain.Reaction) error {
					put = true
					assert.Equal(t, tc.emoji, r.Emoji)
					assert.Equal(t, "guest", r.UserID)
					return nil
				},
				deleteReaction: func(context.Context, uuid.UUID, string) error { removed = true; return nil },
			}
			svc := service.NewMemoryService(team, memories)

			got, err := svc.React(context.Background(), "guest", mem.ID, tc.emoji)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == domain.ActionRemoved, removed)
			assert.Equal(t, tc.want != domain.ActionRemoved, put)
		})
	}
}

func TestMemoryService_React_EmptyEmoji(t *testing.T) {
	svc := service.NewMemoryService(teamWith(nil), &mockMemoryRepo{})

	_, err := svc.React(context.Background(), "guest", uuid.New(), " ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
