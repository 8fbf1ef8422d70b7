package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"event_id", "event_title", "event_kind", "start_date", "end_date",
	"location", "category", "item", "priority", "completed",
}

// GetExport handles GET /export.
// It returns one flat row per checklist item of every event the caller can see.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	if f := req.Params.Format; f != nil && *f != gen.Csv && *f != gen.Json {
		return gen.GetExport400JSONResponse(badRequestBody("format must be csv or json")), nil
	}

	rows, err := s.svc.Export.Export(ctx, middleware.UserID(ctx))
	if err != nil {
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		var buf bytes.Buffer
		if err := writeCSV(&buf, rows); err != nil {
			return nil, err
		}
		return gen.GetExport200TextcsvResponse{Body: &buf, ContentLength: int64(buf.Len())}, nil
	}

	out := make(gen.GetExport200JSONResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowToResponse(row))
	}
	return out, nil
}

// writeCSV encodes rows into w. Callers pass a buffer so a failure can't
// leave a half-written 200 response.
func writeCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(exportRowToCSVRecord(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// exportRowToResponse maps a domain.ExportRow to its JSON shape.
// Empty strings become nil pointers so they are omitted.
func exportRowToResponse(r domain.ExportRow) gen.ExportRow {
	id, _ := uuid.Parse(r.EventID)
	return gen.ExportRow{
		EventId:    id,
		EventTitle: r.EventTitle,
		EventKind:  r.EventKind,
		StartDate:  mustParseDate(r.StartDate),
		EndDate:    mustParseDate(r.EndDate),
		Location:   optional(r.Location),
		Category:   optional(r.Category),
		Item:       optional(r.Item),
		Priority:   optional(r.Priority),
		Completed:  r.Completed,
	}
}

func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.EventID,
		r.EventTitle,
		r.EventKind,
		r.StartDate,
		r.EndDate,
		r.Location,
		r.Category,
		r.Item,
		r.Priority,
		strconv.FormatBool(r.Completed),
	}
}

// mustParseDate parses an "2006-01-02" string into an openapi_types.Date.
// Panics on malformed input; callers are expected to pass service-generated dates.
func mustParseDate(s string) openapi_types.Date {
	t, err := time.Parse(openapi_types.DateFormat, s)
	if err != nil {
		panic("handler: malformed date from service: " + s)
	}
	return openapi_types.Date{Time: t}
}
