package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler"
	"github.com/pkordes/event-planner/internal/middleware"
)

func eventFixture() domain.Event {
	return domain.Event{
		ID:          uuid.New(),
		Kind:        domain.KindEvent,
		Title:       "Summer Trip",
		Location:    "Lisbon",
		Color:       "#3366ff",
		StartDate:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 7, 12, 23, 59, 59, 0, time.UTC),
		CreatedByID: testUser,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

type eventBody struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
}

// ---- POST /events ----------------------------------------------------------

func TestCreateEvent_201(t *testing.T) {
	fixture := eventFixture()
	var got domain.EventInput
	var gotUser string
	svc := &mockEventServicer{
		create: func(_ context.Context, userID string, in domain.EventInput) (domain.Event, error) {
			gotUser, got = userID, in
			return fixture, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodPost, "/events", map[string]any{
		"title":      "Summer Trip",
		"start_date": "2025-07-10",
		"end_date":   "2025-07-12",
		"categories": []map[string]any{{"name": "Packing", "items": []string{"Tent"}}},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testUser, gotUser)
	assert.Equal(t, "2025-07-10", got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2025-07-12", *got.EndDate)
	assert.Equal(t, time.UTC, got.Timezone)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, []string{"Tent"}, got.Categories[0].Items)

	var resp eventBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "2025-07-10", resp.StartDate)
	assert.Equal(t, "2025-07-12", resp.EndDate)
	assert.True(t, resp.EndsAt.Equal(fixture.EndDate))
}

func TestCreateEvent_passesCallerTimezone(t *testing.T) {
	var got *time.Location
	svc := &mockEventServicer{
		create: func(_ context.Context, _ string, in domain.EventInput) (domain.Event, error) {
			got = in.Timezone
			return eventFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/events", jsonBody(t, map[string]any{
		"title": "Summer Trip", "start_date": "2025-07-10",
	}))
	req.Header.Set(middleware.UserIDHeader, testUser)
	req.Header.Set(middleware.TimezoneHeader, "America/New_York")
	rec := httptest.NewRecorder()

	newAPIHandler(handler.Services{Events: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "America/New_York", got.String())
}

func TestCreateEvent_422_ValidationError(t *testing.T) {
	svc := &mockEventServicer{
		create: func(_ context.Context, _ string, _ domain.EventInput) (domain.Event, error) {
			return domain.Event{}, fmt.Errorf("service.EventService.Create: %w: title must be at least 3 characters", domain.ErrValidation)
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodPost, "/events", map[string]any{
		"title": "x", "start_date": "2025-07-10",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, "title must be at least 3 characters", body.Error.Message)
}

func TestCreateEvent_422_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/events", jsonBodyRaw("{not json"))
	req.Header.Set(middleware.UserIDHeader, testUser)
	rec := httptest.NewRecorder()

	newAPIHandler(handler.Services{Events: &mockEventServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "malformed JSON body", decodeError(t, rec).Error.Message)
}

// ---- GET /events -----------------------------------------------------------

func TestListEvents_200_WithPagination(t *testing.T) {
	fixture := eventFixture()
	var gotParams domain.PaginationParams
	svc := &mockEventServicer{
		list: func(_ context.Context, _ string, p domain.PaginationParams) (domain.Page[domain.Event], error) {
			gotParams = p
			return domain.Page[domain.Event]{Items: []domain.Event{fixture}, Total: 41, Params: p}, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodGet, "/events?page=3&limit=20", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 20}, gotParams)

	var resp struct {
		Data       []eventBody `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, fixture.ID, resp.Data[0].ID)
	assert.Equal(t, int64(41), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.Page)
}

func TestListEvents_400_BadPageParam(t *testing.T) {
	rec := do(t, newAPIHandler(handler.Services{Events: &mockEventServicer{}}), http.MethodGet, "/events?page=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "bad_request", body.Error.Code)
	assert.Equal(t, "invalid page parameter", body.Error.Message)
}

func TestListEvents_500_IsNotLeaked(t *testing.T) {
	svc := &mockEventServicer{
		list: func(_ context.Context, _ string, _ domain.PaginationParams) (domain.Page[domain.Event], error) {
			return domain.Page[domain.Event]{}, errors.New("connection refused to 10.0.0.5")
		},
	}

	rec := do(t, newAPIHandler(handler.Services{Events: svc}), http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "10.0.0.5")
}

// ---- GET /events/{id} ------------------------------------------------------

func TestGetEvent_200(t *testing.T) {
	fixture := eventFixture()
	svc := &mockEventServicer{
		get: func(_ context.Context, _ string, id uuid.UUID) (domain.Event, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodGet, "/events/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp eventBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.Title, resp.Title)
}

func TestGetEvent_404(t *testing.T) {
	svc := &mockEventServicer{
		get: func(_ context.Context, _ string, _ uuid.UUID) (domain.Event, error) {
			return domain.Event{}, fmt.Errorf("service.EventService.Get: %w", domain.ErrNotFound)
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodGet, "/events/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "event not found", body.Error.Message)
}

func TestGetEvent_400_InvalidID(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{Events: &mockEventServicer{}}), http.MethodGet, "/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- PUT /events/{id} ------------------------------------------------------

func TestUpdateEvent_403_ForViewer(t *testing.T) {
	svc := &mockEventServicer{
		update: func(_ context.Context, _ string, _ uuid.UUID, _ domain.EventInput) (domain.Event, error) {
			return domain.Event{}, fmt.Errorf("service.EventService.Update: %w: requires editor role", domain.ErrForbidden)
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodPut, "/events/"+uuid.NewString(), map[string]any{
		"title": "Renamed", "start_date": "2025-07-10",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "forbidden", body.Error.Code)
	assert.Equal(t, "requires editor role", body.Error.Message)
}

func TestUpdateEvent_200(t *testing.T) {
	fixture := eventFixture()
	fixture.Title = "Renamed"
	svc := &mockEventServicer{
		update: func(_ context.Context, _ string, id uuid.UUID, in domain.EventInput) (domain.Event, error) {
			assert.Equal(t, fixture.ID, id)
			assert.Equal(t, "Renamed", in.Title)
			return fixture, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodPut, "/events/"+fixture.ID.String(), map[string]any{
		"title": "Renamed", "start_date": "2025-07-10",
	})

	require.Equal(t, http.StatusOK, rec.Code)
}

// ---- DELETE /events/{id} ---------------------------------------------------

func TestDeleteEvent_204(t *testing.T) {
	svc := &mockEventServicer{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error { return nil },
	}

	rec := do(t, newHTTPHandler(handler.Services{Events: svc}), http.MethodDelete, "/events/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
