package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler"
)

func exportRows() []domain.ExportRow {
	id := uuid.NewString()
	return []domain.ExportRow{
		{EventID: id, EventTitle: "Summer Trip", EventKind: "event", StartDate: "2025-07-10", EndDate: "2025-07-12",
			Location: "Lisbon", Category: "Packing", Item: "Tent", Priority: "high", Completed: true},
		{EventID: uuid.NewString(), EventTitle: "Stretch", EventKind: "routine", StartDate: "2025-01-01", EndDate: "2025-01-01"},
	}
}

func TestGetExport_JSONDefault(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ string) ([]domain.ExportRow, error) { return exportRows(), nil },
	}

	rec := do(t, newHTTPHandler(handler.Services{Export: svc}), http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Tent", resp[0]["item"])
	assert.Equal(t, "2025-07-12", resp[0]["end_date"])
	_, hasItem := resp[1]["item"]
	assert.False(t, hasItem, "empty fields are omitted")
}

func TestGetExport_CSV(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ string) ([]domain.ExportRow, error) { return exportRows(), nil },
	}

	rec := do(t, newHTTPHandler(handler.Services{Export: svc}), http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "event_id", records[0][0])
	assert.Equal(t, []string{"Packing", "Tent", "high", "true"}, records[1][6:])
	assert.Equal(t, []string{"", "", "", "false"}, records[2][6:])
}

func TestGetExport_400_UnknownFormat(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{Export: &mockExportServicer{}}), http.MethodGet, "/export?format=xml", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "format must be csv or json", decodeError(t, rec).Error.Message)
}
