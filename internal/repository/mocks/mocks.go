package mocks

import (
	"context"

	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/stretchr/testify/mock"
)

// TaskRepository is a mock for task.Repository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TaskStore is a mock for planning.TaskStore.
type TaskStore struct {
	mock.Mock
}

func (m *TaskStore) AddToTodayWithCap(ctx context.Context, id string, todayCap int) (*task.Task, error) {
	args := m.Called(ctx, id, todayCap)
	return taskResult(args)
}

func (m *TaskStore) SwapInToday(ctx context.Context, addID, removeID string) error {
	args := m.Called(ctx, addID, removeID)
	return args.Error(0)
}

func (m *TaskStore) BulkAddToToday(ctx context.Context, ids []string, todayCap int) ([]string, error) {
	args := m.Called(ctx, ids, todayCap)
	return idsResult(args)
}

func (m *TaskStore) RemoveFromToday(ctx context.Context, id string) (*task.Task, error) {
	args := m.Called(ctx, id)
	return taskResult(args)
}

func (m *TaskStore) SetPaused(ctx context.Context, id string) (*task.Task, error) {
	args := m.Called(ctx, id)
	return taskResult(args)
}

func (m *TaskStore) SetArea(ctx context.Context, id, areaID string) (*task.Task, error) {
	args := m.Called(ctx, id, areaID)
	return taskResult(args)
}

func (m *TaskStore) Reschedule(ctx context.Context, id string, scheduledFor *string) (*task.Task, error) {
	args := m.Called(ctx, id, scheduledFor)
	return taskResult(args)
}

func (m *TaskStore) RetainForDate(ctx context.Context, id, date string) (*task.Task, error) {
	args := m.Called(ctx, id, date)
	return taskResult(args)
}

func (m *TaskStore) BulkReschedule(ctx context.Context, ids []string, scheduledFor *string) ([]string, error) {
	args := m.Called(ctx, ids, scheduledFor)
	return idsResult(args)
}

func (m *TaskStore) ClearTodayExcept(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	return idsResult(args)
}

func taskResult(args mock.Arguments) (*task.Task, error) {
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func idsResult(args mock.Arguments) ([]string, error) {
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

// AreaRegistry is a mock for planning.AreaRegistry.
type AreaRegistry struct {
	mock.Mock
}

func (m *AreaRegistry) IsValid(ctx context.Context, areaID string) (bool, error) {
	args := m.Called(ctx, areaID)
	return args.Bool(0), args.Error(1)
}

// CapacityReader is a mock for planning.CapacityReader.
type CapacityReader struct {
	mock.Mock
}

func (m *CapacityReader) TodayCap(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// DayCycle is a mock for planning.DayCycle.
type DayCycle struct {
	mock.Mock
}

func (m *DayCycle) LastPlanningDate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *DayCycle) SetLastPlanningDate(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// ActivityLogger is a mock for planning.ActivityLogger.
type ActivityLogger struct {
	mock.Mock
}

func (m *ActivityLogger) LogActivity(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SettingsRepository is a mock for the key-value settings repositories.
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *SettingsRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
