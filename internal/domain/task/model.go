package task

import "time"

// InboxArea is the reserved default area for captured tasks.
const InboxArea = "inbox"

// Status represents an optional lifecycle marker on a task
type Status string

const (
	StatusNone   Status = ""
	StatusPaused Status = "paused"
)

// Task represents a captured unit of work
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Area          string    `json:"area"`
	TodayIncluded bool      `json:"todayIncluded"`
	Status        Status    `json:"status,omitempty"`
	ScheduledFor  *string   `json:"scheduledFor"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AreaOrInbox returns the task area, falling back to the inbox when blank.
func (t Task) AreaOrInbox() string {
	if t.Area == "" {
		return InboxArea
	}
	return t.Area
}

// IsPaused reports whether the task carries the paused status.
func (t Task) IsPaused() bool {
	return t.Status == StatusPaused
}

// ScheduledDate returns the scheduled date or an empty string.
func (t Task) ScheduledDate() string {
	if t.ScheduledFor == nil {
		return ""
	}
	return *t.ScheduledFor
}

// Projection is the bounded Today view derived from stored tasks
type Projection struct {
	Items         []Task `json:"items"`
	TotalEligible int    `json:"totalEligible"`
	Cap           int    `json:"cap"`
}
