package activity

import "time"

// ActivityType represents the type of planning event
type ActivityType string

const (
	TypeTaskCaptured       ActivityType = "task_captured"
	TypeTodayAdded         ActivityType = "today_added"
	TypeTodaySwapped       ActivityType = "today_swapped"
	TypeTodayBulkAdded     ActivityType = "today_bulk_added"
	TypeTodayRemoved       ActivityType = "today_removed"
	TypeTaskPaused         ActivityType = "task_paused"
	TypeTaskRetained       ActivityType = "task_retained"
	TypeAreaChanged        ActivityType = "area_changed"
	TypeTaskRescheduled    ActivityType = "task_rescheduled"
	TypeBulkRescheduled    ActivityType = "tasks_bulk_rescheduled"
	TypeContinuityEnforced ActivityType = "continuity_enforced"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	TaskID       *string      `json:"task_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
