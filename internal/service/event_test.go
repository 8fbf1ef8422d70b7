package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/service"
)

// ---- helpers ---------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validInput() domain.EventInput {
	return domain.EventInput{
		Title:     "Beach Trip",
		Color:     "#3366FF",
		StartDate: "2025-07-10",
		EndDate:   ptr("2025-07-12"),
		Location:  "  Cartagena ",
	}
}

// echoEvents returns an EventRepo that echoes what it receives.
func echoEvents() *mockEventRepo {
	return &mockEventRepo{
		create: func(_ context.Context, e domain.Event, _ []domain.CategoryInput) (domain.Event, error) {
			return e, nil
		},
		update: func(_ context.Context, e domain.Event) (domain.Event, error) { return e, nil },
	}
}

// ---- Create ----------------------------------------------------------------

func TestEventService_Create_Valid(t *testing.T) {
	svc := service.NewEventService(echoEvents(), teamWith(nil))

	got, err := svc.Create(context.Background(), "owner-1", validInput())

	require.NoError(t, err)
	assert.Equal(t, "Beach Trip", got.Title)
	assert.Equal(t, domain.KindEvent, got.Kind, "kind defaults to event")
	assert.Equal(t, "Cartagena", got.Location)
	assert.Equal(t, "#3366ff", got.Color)
	assert.Equal(t, "owner-1", got.CreatedByID)
	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, time.Date(2025, 7, 12, 23, 59, 59, 0, time.UTC), got.EndDate)
}

func TestEventService_Create_BoundariesUseCallerTimezone(t *testing.T) {
	svc := service.NewEventService(echoEvents(), teamWith(nil))

	in := validInput()
	// 21:00 on July 9 in UTC-5 is 02:00 on July 10 UTC; the user picked July 9.
	in.StartDate = "2025-07-09T21:00:00-05:00"
	in.EndDate = nil
	in.Timezone = time.FixedZone("UTC-5", -5*3600)

	got, err := svc.Create(context.Background(), "owner-1", in)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, time.Date(2025, 7, 9, 23, 59, 59, 0, time.UTC), got.EndDate, "no end date means a single day")
}

func TestEventService_Create_PassesCleanCategories(t *testing.T) {
	var gotCats []domain.CategoryInput
	events := &mockEventRepo{
		create: func(_ context.Context, e domain.Event, cats []domain.CategoryInput) (domain.Event, error) {
			gotCats = cats
			return e, nil
		},
	}
	svc := service.NewEventService(events, teamWith(nil))

	in := validInput()
	in.Categories = []domain.CategoryInput{{Name: " Clothes ", Items: []string{"Hat", "  ", " Towel"}}}

	_, err := svc.Create(context.Background(), "owner-1", in)

	require.NoError(t, err)
	require.Len(t, gotCats, 1)
	assert.Equal(t, "Clothes", gotCats[0].Name)
	assert.Equal(t, []string{"Hat", "Towel"}, gotCats[0].Items)
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.EventInput)
	}{
		{"short title", func(in *domain.EventInput) { in.Title = " ab " }},
		{"bad color", func(in *domain.EventInput) { in.Color = "blue" }},
		{"unknown kind", func(in *domain.EventInput) { in.Kind = "party" }},
		{"bad start", func(in *domain.EventInput) { in.StartDate = "next tuesday" }},
		{"end before start", func(in *domain.EventInput) { in.EndDate = ptr("2025-07-01") }},
		{"unnamed category", func(in *domain.EventInput) {
			in.Categories = []domain.CategoryInput{{Name: " "}}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewEventService(echoEvents(), teamWith(nil))
			in := validInput()
			tc.modify(&in)

			_, err := svc.Create(context.Background(), "owner-1", in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	events := &mockEventRepo{
		create: func(context.Context, domain.Event, []domain.CategoryInput) (domain.Event, error) {
			return domain.Event{}, repoErr
		},
	}
	svc := service.NewEventService(events, teamWith(nil))

	_, err := svc.Create(context.Background(), "owner-1", validInput())

	assert.ErrorIs(t, err, repoErr)
}

// ---- Get / List ------------------------------------------------------------

func TestEventService_Get_NonMemberIsNotFound(t *testing.T) {
	events := &mockEventRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Event, error) {
			t.Fatal("repo must not be read for non-members")
			return domain.Event{}, nil
		},
	}
	svc := service.NewEventService(events, teamWith(map[string]domain.Role{"owner-1": domain.RoleAdmin}))

	_, err := svc.Get(context.Background(), "stranger", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_Get_Viewer(t *testing.T) {
	want := domain.Event{ID: uuid.New(), Title: "Beach Trip"}
	events := &mockEventRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Event, error) { return want, nil },
	}
	svc := service.NewEventService(events, teamWith(map[string]domain.Role{"guest": domain.RoleViewer}))

	got, err := svc.Get(context.Background(), "guest", want.ID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEventService_List_NilBecomesEmpty(t *testing.T) {
	events := &mockEventRepo{
		listByUserPaged: func(context.Context, string, domain.PaginationParams) ([]domain.Event, int64, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewEventService(events, teamWith(nil))

	got, err := svc.List(context.Background(), "owner-1", domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Equal(t, 20, got.Params.Limit)
}

// ---- Update / Delete -------------------------------------------------------

func TestEventService_Update_KeepsKindAndCreator(t *testing.T) {
	existing := domain.Event{ID: uuid.New(), Kind: domain.KindRoutine, CreatedByID: "owner-1"}
	events := echoEvents()
	events.getByID = func(context.Context, uuid.UUID) (domain.Event, error) { return existing, nil }
	svc := service.NewEventService(events, teamWith(map[string]domain.Role{"editor": domain.RoleEditor}))

	in := validInput()
	in.Kind = domain.KindEvent

	got, err := svc.Update(context.Background(), "editor", existing.ID, in)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, domain.KindRoutine, got.Kind)
	assert.Equal(t, "owner-1", got.CreatedByID)
}

func TestEventService_Update_ViewerForbidden(t *testing.T) {
	svc := service.NewEventService(echoEvents(), teamWith(map[string]domain.Role{"guest": domain.RoleViewer}))

	_, err := svc.Update(context.Background(), "guest", uuid.New(), validInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Delete_RequiresAdmin(t *testing.T) {
	var deleted bool
	events := &mockEventRepo{
		delete: func(context.Context, uuid.UUID) error { deleted = true; return nil },
	}
	team := teamWith(map[string]domain.Role{"owner-1": domain.RoleAdmin, "editor": domain.RoleEditor})
	svc := service.NewEventService(events, team)

	err := svc.Delete(context.Background(), "editor", uuid.New())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, deleted)

	require.NoError(t, svc.Delete(context.Background(), "owner-1", uuid.New()))
	assert.True(t, deleted)
}
