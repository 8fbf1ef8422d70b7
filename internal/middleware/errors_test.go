package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

func TestWriteError_UsesAPIEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	middleware.WriteError(rec, http.StatusConflict, "conflict", "already a member")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"code":"conflict","message":"already a member"}}`, rec.Body.String())

	var body gen.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: "already a member"}}, body)
}
