package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
	"github.com/pkordes/event-planner/internal/service"
)

// Each mock is a test double for one servicer interface.
// Set only the method fields your test needs.

type mockEventServicer struct {
	create func(ctx context.Context, userID string, in domain.EventInput) (domain.Event, error)
	get    func(ctx context.Context, userID string, id uuid.UUID) (domain.Event, error)
	list   func(ctx context.Context, userID string, p domain.PaginationParams) (domain.Page[domain.Event], error)
	update func(ctx context.Context, userID string, id uuid.UUID, in domain.EventInput) (domain.Event, error)
	delete func(ctx context.Context, userID string, id uuid.UUID) error
}

func (m *mockEventServicer) Create(ctx context.Context, userID string, in domain.EventInput) (domain.Event, error) {
	return m.create(ctx, userID, in)
}
func (m *mockEventServicer) Get(ctx context.Context, userID string, id uuid.UUID) (domain.Event, error) {
	return m.get(ctx, userID, id)
}
func (m *mockEventServicer) List(ctx context.Context, userID string, p domain.PaginationParams) (domain.Page[domain.Event], error) {
	return m.list(ctx, userID, p)
}
func (m *mockEventServicer) Update(ctx context.Context, userID string, id uuid.UUID, in domain.EventInput) (domain.Event, error) {
	return m.update(ctx, userID, id, in)
}
func (m *mockEventServicer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockDashboardServicer struct {
	dashboard func(ctx context.Context, userID string) (service.Dashboard, error)
}

func (m *mockDashboardServicer) Dashboard(ctx context.Context, userID string) (service.Dashboard, error) {
	return m.dashboard(ctx, userID)
}

type mockRoutineServicer struct {
	toggle func(ctx context.Context, userID string, id uuid.UUID) (domain.ToggleAction, error)
}

func (m *mockRoutineServicer) Toggle(ctx context.Context, userID string, id uuid.UUID) (domain.ToggleAction, error) {
	return m.toggle(ctx, userID, id)
}

type mockChecklistServicer struct {
	list             func(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Category, error)
	createCategory   func(ctx context.Context, userID string, eventID uuid.UUID, name, color string) (domain.Category, error)
	renameCategory   func(ctx context.Context, userID string, id uuid.UUID, name string) (domain.Category, error)
	deleteCategory   func(ctx context.Context, userID string, id uuid.UUID) error
	createItem       func(ctx context.Context, userID string, categoryID uuid.UUID, in service.ItemInput) (domain.Item, error)
	updateItem       func(ctx context.Context, userID string, id uuid.UUID, in service.ItemInput) (domain.Item, error)
	setItemCompleted func(ctx context.Context, userID string, id uuid.UUID, completed bool) (domain.Item, error)
	deleteItem       func(ctx context.Context, userID string, id uuid.UUID) error
}

func (m *mockChecklistServicer) List(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Category, error) {
	return m.list(ctx, userID, eventID)
}
func (m *mockChecklistServicer) CreateCategory(ctx context.Context, userID string, eventID uuid.UUID, name, color string) (domain.Category, error) {
	return m.createCategory(ctx, userID, eventID, name, color)
}
func (m *mockChecklistServicer) RenameCategory(ctx context.Context, userID string, id uuid.UUID, name string) (domain.Category, error) {
	return m.renameCategory(ctx, userID, id, name)
}
func (m *mockChecklistServicer) DeleteCategory(ctx context.Context, userID string, id uuid.UUID) error {
	return m.deleteCategory(ctx, userID, id)
}
func (m *mockChecklistServicer) CreateItem(ctx context.Context, userID string, categoryID uuid.UUID, in service.ItemInput) (domain.Item, error) {
	return m.createItem(ctx, userID, categoryID, in)
}
func (m *mockChecklistServicer) UpdateItem(ctx context.Context, userID string, id uuid.UUID, in service.ItemInput) (domain.Item, error) {
	return m.updateItem(ctx, userID, id, in)
}
func (m *mockChecklistServicer) SetItemCompleted(ctx context.Context, userID string, id uuid.UUID, completed bool) (domain.Item, error) {
	return m.setItemCompleted(ctx, userID, id, completed)
}
func (m *mockChecklistServicer) DeleteItem(ctx context.Context, userID string, id uuid.UUID) error {
	return m.deleteItem(ctx, userID, id)
}

type mockTeamServicer struct {
	list       func(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Collaborator, error)
	add        func(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error)
	changeRole func(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error)
	remove     func(ctx context.Context, userID string, eventID uuid.UUID, memberID string) error
}

func (m *mockTeamServicer) List(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Collaborator, error) {
	return m.list(ctx, userID, eventID)
}
func (m *mockTeamServicer) Add(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error) {
	return m.add(ctx, userID, eventID, memberID, role)
}
func (m *mockTeamServicer) ChangeRole(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error) {
	return m.changeRole(ctx, userID, eventID, memberID, role)
}
func (m *mockTeamServicer) Remove(ctx context.Context, userID string, eventID uuid.UUID, memberID string) error {
	return m.remove(ctx, userID, eventID, memberID)
}

type mockMemoryServicer struct {
	create func(ctx context.Context, userID string, mem domain.Memory) (domain.Memory, error)
	list   func(ctx context.Context, userID string, eventID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Memory], error)
	delete func(ctx context.Context, userID string, id uuid.UUID) error
	react  func(ctx context.Context, userID string, id uuid.UUID, emoji string) (domain.ToggleAction, error)
}

func (m *mockMemoryServicer) Create(ctx context.Context, userID string, mem domain.Memory) (domain.Memory, error) {
	return m.create(ctx, userID, mem)
}
func (m *mockMemoryServicer) List(ctx context.Context, userID string, eventID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Memory], error) {
	return m.list(ctx, userID, eventID, p)
}
func (m *mockMemoryServicer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockMemoryServicer) React(ctx context.Context, userID string, id uuid.UUID, emoji string) (domain.ToggleAction, error) {
	return m.react(ctx, userID, id, emoji)
}

type mockNotificationServicer struct {
	list     func(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	markRead func(ctx context.Context, userID string, id uuid.UUID) error
}

func (m *mockNotificationServicer) List(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	return m.list(ctx, userID, unreadOnly)
}
func (m *mockNotificationServicer) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	return m.markRead(ctx, userID, id)
}

type mockCalendarServicer struct {
	rangeFn func(ctx context.Context, userID string, from, to calendar.CalendarDate) ([]calendar.Occurrence, error)
	feed    func(ctx context.Context, userID string) (string, error)
}

func (m *mockCalendarServicer) Range(ctx context.Context, userID string, from, to calendar.CalendarDate) ([]calendar.Occurrence, error) {
	return m.rangeFn(ctx, userID, from, to)
}
func (m *mockCalendarServicer) Feed(ctx context.Context, userID string) (string, error) {
	return m.feed(ctx, userID)
}

type mockExportServicer struct {
	export func(ctx context.Context, userID string) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, userID string) ([]domain.ExportRow, error) {
	return m.export(ctx, userID)
}

// compile-time checks: every mock must satisfy its servicer interface.
var (
	_ handler.EventServicer        = (*mockEventServicer)(nil)
	_ handler.DashboardServicer    = (*mockDashboardServicer)(nil)
	_ handler.RoutineServicer      = (*mockRoutineServicer)(nil)
	_ handler.ChecklistServicer    = (*mockChecklistServicer)(nil)
	_ handler.TeamServicer         = (*mockTeamServicer)(nil)
	_ handler.MemoryServicer       = (*mockMemoryServicer)(nil)
	_ handler.NotificationServicer = (*mockNotificationServicer)(nil)
	_ handler.CalendarServicer     = (*mockCalendarServicer)(nil)
	_ handler.ExportServicer       = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const testUser = "user-1"

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors how main.go wires it in production.
// newHTTPHandler serves srv through the generated strict handler, the way
// the routes are exercised one resource at a time.
func newHTTPHandler(svc handler.Services) http.Handler {
	srv := handler.NewServer(svc, nil, nil)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

// newAPIHandler returns the production router, with the identity middleware
// and the JSON error hooks installed.
func newAPIHandler(svc handler.Services) http.Handler {
	return handler.NewServer(svc, nil, nil).Handler()
}

// do sends a request as testUser and returns the recorded response.
// A nil body sends no body; anything else is JSON-encoded. The caller is set
// both as a header, for newAPIHandler, and directly in the context, for
// newHTTPHandler which has no identity middleware.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, testUser)
	req = req.WithContext(middleware.WithUserID(req.Context(), testUser))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorResponse {
	t.Helper()
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func jsonBodyRaw(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}
