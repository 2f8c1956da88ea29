package planning

import (
	"context"

	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/task"
)

// TaskStore is the set of task mutation primitives the guardrail delegates to.
// Implemented by task.Store.
type TaskStore interface {
	AddToTodayWithCap(ctx context.Context, id string, todayCap int) (*task.Task, error)
	SwapInToday(ctx context.Context, addID, removeID string) error
	BulkAddToToday(ctx context.Context, ids []string, todayCap int) ([]string, error)
	RemoveFromToday(ctx context.Context, id string) (*task.Task, error)
	SetPaused(ctx context.Context, id string) (*task.Task, error)
	SetArea(ctx context.Context, id, areaID string) (*task.Task, error)
	Reschedule(ctx context.Context, id string, scheduledFor *string) (*task.Task, error)
	RetainForDate(ctx context.Context, id, date string) (*task.Task, error)
	BulkReschedule(ctx context.Context, ids []string, scheduledFor *string) ([]string, error)
	ClearTodayExcept(ctx context.Context, date string) ([]string, error)
}

// AreaRegistry validates area ids.
type AreaRegistry interface {
	IsValid(ctx context.Context, areaID string) (bool, error)
}

// CapacityReader returns the configured Today cap.
type CapacityReader interface {
	TodayCap(ctx context.Context) (int, error)
}

// DayCycle stores the date of the last continuity pass.
type DayCycle interface {
	LastPlanningDate(ctx context.Context) (string, error)
	SetLastPlanningDate(ctx context.Context, date string) error
}

// ActivityLogger records successful mutations. Implemented by activity.Service.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}
