package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "event not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err, domain.ErrValidation)}}
}

// requestBody returns an ErrorResponse for input rejected before reaching
// the service layer.
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// badRequestBody returns an ErrorResponse for a parameter the generated
// binding accepted but the handler cannot serve.
func badRequestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "bad_request", Message: message}}
}

func forbiddenBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "forbidden", Message: unwrapMessage(err, domain.ErrForbidden)}}
}

func conflictBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: unwrapMessage(err, domain.ErrConflict)}}
}

// unwrapMessage extracts the human-readable part after a wrapped sentinel.
// e.g. "service.EventService.Update: validation error: title is required" → "title is required"
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

// paramError handles path and query parameters the generated router could
// not bind.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	var invalid *gen.InvalidParamFormatError
	var missing *gen.RequiredParamError
	switch {
	case errors.As(err, &invalid):
		middleware.WriteError(w, http.StatusBadRequest, "bad_request", "invalid "+invalid.ParamName+" parameter")
	case errors.As(err, &missing):
		middleware.WriteError(w, http.StatusBadRequest, "bad_request", missing.ParamName+" parameter is required")
	default:
		middleware.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request parameters")
	}
}

// requestError handles bodies the strict handler could not decode.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		middleware.WriteError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
	case errors.Is(err, io.EOF):
		middleware.WriteError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
	default:
		middleware.WriteError(w, http.StatusUnprocessableEntity, "validation_error", "malformed JSON body")
	}
}

// responseError handles errors returned by the Server methods. Expected
// domain errors are mapped to typed responses in the methods themselves;
// anything reaching here is logged and reported as a bare 500 unless it
// still carries a domain sentinel.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		middleware.WriteError(w, http.StatusNotFound, "not_found", unwrapMessage(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrValidation):
		middleware.WriteError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrForbidden):
		middleware.WriteError(w, http.StatusForbidden, "forbidden", unwrapMessage(err, domain.ErrForbidden))
	case errors.Is(err, domain.ErrConflict):
		middleware.WriteError(w, http.StatusConflict, "conflict", unwrapMessage(err, domain.ErrConflict))
	default:
		s.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
