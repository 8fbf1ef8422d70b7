package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database, or is not visible to the caller.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. title too short, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the caller is a collaborator on the event but
// their role does not permit the operation (e.g. a viewer editing a checklist).
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a write would violate a uniqueness rule,
// such as adding a user who is already on the event's team.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
