package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

type mockEventRepo struct {
	create              func(ctx context.Context, e domain.Event, cats []domain.CategoryInput) (domain.Event, error)
	getByID             func(ctx context.Context, id uuid.UUID) (domain.Event, error)
	listByUser          func(ctx context.Context, userID string) ([]domain.Event, error)
	listByUserPaged     func(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Event, int64, error)
	listStartingBetween func(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	update              func(ctx context.Context, e domain.Event) (domain.Event, error)
	delete              func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventRepo) Create(ctx context.Context, e domain.Event, cats []domain.CategoryInput) (domain.Event, error) {
	return m.create(ctx, e, cats)
}
func (m *mockEventRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, id)
}
func (m *mockEventRepo) ListByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockEventRepo) ListByUserPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	return m.listByUserPaged(ctx, userID, p)
}
func (m *mockEventRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return m.listStartingBetween(ctx, from, to)
}
func (m *mockEventRepo) Update(ctx context.Context, e domain.Event) (domain.Event, error) {
	return m.update(ctx, e)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.EventRepo = (*mockEventRepo)(nil)

type mockTeamRepo struct {
	add         func(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error)
	get         func(ctx context.Context, eventID uuid.UUID, userID string) (domain.Collaborator, error)
	listByEvent func(ctx context.Context, eventID uuid.UUID) ([]domain.Collaborator, error)
	updateRole  func(ctx context.Context, eventID uuid.UUID, userID string, role domain.Role) (domain.Collaborator, error)
	remove      func(ctx context.Context, eventID uuid.UUID, userID string) error
	countAdmins func(ctx context.Context, eventID uuid.UUID) (int, error)
}

func (m *mockTeamRepo) Add(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error) {
	return m.add(ctx, c)
}
func (m *mockTeamRepo) Get(ctx context.Context, eventID uuid.UUID, userID string) (domain.Collaborator, error) {
	return m.get(ctx, eventID, userID)
}
func (m *mockTeamRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Collaborator, error) {
	return m.listByEvent(ctx, eventID)
}
func (m *mockTeamRepo) UpdateRole(ctx context.Context, eventID uuid.UUID, userID string, role domain.Role) (domain.Collaborator, error) {
	return m.updateRole(ctx, eventID, userID, role)
}
func (m *mockTeamRepo) Remove(ctx context.Context, eventID uuid.UUID, userID string) error {
	return m.remove(ctx, eventID, userID)
}
func (m *mockTeamRepo) CountAdmins(ctx context.Context, eventID uuid.UUID) (int, error) {
	return m.countAdmins(ctx, eventID)
}

var _ repo.TeamRepo = (*mockTeamRepo)(nil)

// teamWith returns a TeamRepo whose Get answers from a fixed user→role table.
// Users not in the table are not members.
func teamWith(roles map[string]domain.Role) *mockTeamRepo {
	return &mockTeamRepo{
		get: func(_ context.Context, eventID uuid.UUID, userID string) (domain.Collaborator, error) {
			role, ok := roles[userID]
			if !ok {
				return domain.Collaborator{}, domain.ErrNotFound
			}
			return domain.Collaborator{EventID: eventID, UserID: userID, Role: role}, nil
		},
	}
}

type mockChecklistRepo struct {
	createCategory   func(ctx context.Context, c domain.Category) (domain.Category, error)
	getCategory      func(ctx context.Context, id uuid.UUID) (domain.Category, error)
	renameCategory   func(ctx context.Context, id uuid.UUID, name string) (domain.Category, error)
	deleteCategory   func(ctx context.Context, id uuid.UUID) error
	listByEvent      func(ctx context.Context, eventID uuid.UUID) ([]domain.Category, error)
	createItem       func(ctx context.Context, item domain.Item) (domain.Item, error)
	itemEventID      func(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	updateItem       func(ctx context.Context, item domain.Item) (domain.Item, error)
	setItemCompleted func(ctx context.Context, itemID uuid.UUID, completed bool) (domain.Item, error)
	deleteItem       func(ctx context.Context, itemID uuid.UUID) error
}

func (m *mockChecklistRepo) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	return m.createCategory(ctx, c)
}
func (m *mockChecklistRepo) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	return m.getCategory(ctx, id)
}
func (m *mockChecklistRepo) RenameCategory(ctx context.Context, id uuid.UUID, name string) (domain.Category, error) {
	return m.renameCategory(ctx, id, name)
}
func (m *mockChecklistRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.deleteCategory(ctx, id)
}
func (m *mockChecklistRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Category, error) {
	return m.listByEvent(ctx, eventID)
}
func (m *mockChecklistRepo) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	return m.createItem(ctx, item)
}
func (m *mockChecklistRepo) ItemEventID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	return m.itemEventID(ctx, itemID)
}
func (m *mockChecklistRepo) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	return m.updateItem(ctx, item)
}
func (m *mockChecklistRepo) SetItemCompleted(ctx context.Context, itemID uuid.UUID, completed bool) (domain.Item, error) {
	return m.setItemCompleted(ctx, itemID, completed)
}
func (m *mockChecklistRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return m.deleteItem(ctx, itemID)
}

var _ repo.ChecklistRepo = (*mockChecklistRepo)(nil)

type mockMemoryRepo struct {
	create           func(ctx context.Context, m domain.Memory) (domain.Memory, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Memory, error)
	listByEventPaged func(ctx context.Context, eventID uuid.UUID, p domain.PaginationParams) ([]domain.Memory, int64, error)
	delete           func(ctx context.Context, id uuid.UUID) error
	getReaction      func(ctx context.Context, memoryID uuid.UUID, userID string) (domain.Reaction, error)
	putReaction      func(ctx context.Context, r domain.Reaction) error
	deleteReaction   func(ctx context.Context, memoryID uuid.UUID, userID string) error
}

func (m *mockMemoryRepo) Create(ctx context.Context, mem domain.Memory) (domain.Memory, error) {
	return m.create(ctx, mem)
}
func (m *mockMemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	return m.getByID(ctx, id)
}
func (m *mockMemoryRepo) ListByEventPaged(ctx context.Context, eventID uuid.UUID, p domain.PaginationParams) ([]domain.Memory, int64, error) {
	return m.listByEventPaged(ctx, eventID, p)
}
func (m *mockMemoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockMemoryRepo) GetReaction(ctx context.Context, memoryID uuid.UUID, userID string) (domain.Reaction, error) {
	return m.getReaction(ctx, memoryID, userID)
}
func (m *mockMemoryRepo) PutReaction(ctx context.Context, r domain.Reaction) error {
	return m.putReaction(ctx, r)
}
func (m *mockMemoryRepo) DeleteReaction(ctx context.Context, memoryID uuid.UUID, userID string) error {
	return m.deleteReaction(ctx, memoryID, userID)
}

var _ repo.MemoryRepo = (*mockMemoryRepo)(nil)

type mockRoutineRepo struct {
	findCompletion   func(ctx context.Context, routineID uuid.UUID, userID string, from, to time.Time) (uuid.UUID, error)
	addCompletion    func(ctx context.Context, routineID uuid.UUID, userID string, at time.Time) error
	deleteCompletion func(ctx context.Context, id uuid.UUID) error
	completedBetween func(ctx context.Context, userID string, from, to time.Time) (map[uuid.UUID]bool, error)
}

func (m *mockRoutineRepo) FindCompletion(ctx context.Context, routineID uuid.UUID, userID string, from, to time.Time) (uuid.UUID, error) {
	return m.findCompletion(ctx, routineID, userID, from, to)
}
func (m *mockRoutineRepo) AddCompletion(ctx context.Context, routineID uuid.UUID, userID string, at time.Time) error {
	return m.addCompletion(ctx, routineID, userID, at)
}
func (m *mockRoutineRepo) DeleteCompletion(ctx context.Context, id uuid.UUID) error {
	return m.deleteCompletion(ctx, id)
}
func (m *mockRoutineRepo) CompletedBetween(ctx context.Context, userID string, from, to time.Time) (map[uuid.UUID]bool, error) {
	return m.completedBetween(ctx, userID, from, to)
}

var _ repo.RoutineRepo = (*mockRoutineRepo)(nil)

type mockNotificationRepo struct {
	create     func(ctx context.Context, n domain.Notification, dedupeKey string) (bool, error)
	listByUser func(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	markRead   func(ctx context.Context, id uuid.UUID, userID string) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n domain.Notification, dedupeKey string) (bool, error) {
	return m.create(ctx, n, dedupeKey)
}
func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	return m.listByUser(ctx, userID, unreadOnly)
}
func (m *mockNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID string) error {
	return m.markRead(ctx, id, userID)
}

var _ repo.NotificationRepo = (*mockNotificationRepo)(nil)
