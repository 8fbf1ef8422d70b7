package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/spec"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse(gen.HealthResponse{Status: "ok"}), nil
}

// GetOpenAPI handles GET /openapi.yaml and serves the embedded API description.
func (s *Server) GetOpenAPI(_ context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(spec.OpenAPI),
		ContentLength: int64(len(spec.OpenAPI)),
	}, nil
}
