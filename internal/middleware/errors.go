package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/event-planner/internal/handler/gen"
)

// WriteError writes the API error envelope,
// {"error":{"code":"not_found","message":"event not found"}}.
// The shape is the generated ErrorResponse, so middleware rejections and
// handler errors decode the same way.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}
