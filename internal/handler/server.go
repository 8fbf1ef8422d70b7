// Package handler implements the HTTP handlers for the event planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, events.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=gen/cfg.yaml ../../spec/openapi.yaml

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
	"github.com/pkordes/event-planner/internal/service"
)

// The servicer interfaces below are defined here, in the consumer package,
// so handler tests can inject mocks without touching the service layer.

// EventServicer defines the event operations the handlers depend on.
type EventServicer interface {
	Create(ctx context.Context, userID string, in domain.EventInput) (domain.Event, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (domain.Event, error)
	List(ctx context.Context, userID string, p domain.PaginationParams) (domain.Page[domain.Event], error)
	Update(ctx context.Context, userID string, id uuid.UUID, in domain.EventInput) (domain.Event, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// DashboardServicer builds the caller's dashboard.
type DashboardServicer interface {
	Dashboard(ctx context.Context, userID string) (service.Dashboard, error)
}

// RoutineServicer toggles routine completion.
type RoutineServicer interface {
	Toggle(ctx context.Context, userID string, routineID uuid.UUID) (domain.ToggleAction, error)
}

// ChecklistServicer defines the checklist operations.
type ChecklistServicer interface {
	List(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID string, eventID uuid.UUID, name, color string) (domain.Category, error)
	RenameCategory(ctx context.Context, userID string, categoryID uuid.UUID, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, userID string, categoryID uuid.UUID) error
	CreateItem(ctx context.Context, userID string, categoryID uuid.UUID, in service.ItemInput) (domain.Item, error)
	UpdateItem(ctx context.Context, userID string, itemID uuid.UUID, in service.ItemInput) (domain.Item, error)
	SetItemCompleted(ctx context.Context, userID string, itemID uuid.UUID, completed bool) (domain.Item, error)
	DeleteItem(ctx context.Context, userID string, itemID uuid.UUID) error
}

// TeamServicer defines the team operations.
type TeamServicer interface {
	List(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Collaborator, error)
	Add(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error)
	ChangeRole(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error)
	Remove(ctx context.Context, userID string, eventID uuid.UUID, memberID string) error
}

// MemoryServicer defines the memory and reaction operations.
type MemoryServicer interface {
	Create(ctx context.Context, userID string, m domain.Memory) (domain.Memory, error)
	List(ctx context.Context, userID string, eventID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Memory], error)
	Delete(ctx context.Context, userID string, memoryID uuid.UUID) error
	React(ctx context.Context, userID string, memoryID uuid.UUID, emoji string) (domain.ToggleAction, error)
}

// NotificationServicer defines the notification operations.
type NotificationServicer interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
}

// CalendarServicer renders calendar views.
type CalendarServicer interface {
	Range(ctx context.Context, userID string, from, to calendar.CalendarDate) ([]calendar.Occurrence, error)
	Feed(ctx context.Context, userID string) (string, error)
}

// ExportServicer produces the flat data export.
type ExportServicer interface {
	Export(ctx context.Context, userID string) ([]domain.ExportRow, error)
}

// Services bundles every dependency of the Server. Nil entries are allowed
// in tests that do not exercise the matching routes.
type Services struct {
	Events        EventServicer
	Dashboard     DashboardServicer
	Routines      RoutineServicer
	Checklist     ChecklistServicer
	Team          TeamServicer
	Memories      MemoryServicer
	Notifications NotificationServicer
	Calendar      CalendarServicer
	Export        ExportServicer
}

// Server implements gen.StrictServerInterface.
type Server struct {
	svc        Services
	logger     *slog.Logger
	defaultLoc *time.Location
}

// NewServer constructs the Server. A nil logger means slog.Default and a nil
// location means UTC.
func NewServer(svc Services, logger *slog.Logger, defaultLoc *time.Location) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &Server{svc: svc, logger: logger, defaultLoc: defaultLoc}
}

var _ gen.StrictServerInterface = (*Server)(nil)

// Handler returns the API router: the generated chi routes over the strict
// server. /healthz and /openapi.yaml are public; everything else requires
// the X-User-ID header.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NewIdentityHandler(s.defaultLoc, "/healthz", "/openapi.yaml"))

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
}
