package mcp

import (
	"time"

	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/task"
)

type CaptureTaskParams struct {
	Title string `json:"title"`
}

type TaskIDParams struct {
	TaskID string `json:"task_id"`
}

type TaskIDsParams struct {
	TaskIDs []string `json:"task_ids"`
}

type SwapToTodayParams struct {
	AddTaskID    string `json:"add_task_id"`
	RemoveTaskID string `json:"remove_task_id"`
}

type SetTaskAreaParams struct {
	TaskID string `json:"task_id"`
	AreaID string `json:"area_id"`
}

type RescheduleTaskParams struct {
	TaskID       string  `json:"task_id"`
	ScheduledFor *string `json:"scheduled_for,omitempty"`
}

type BulkRescheduleTasksParams struct {
	TaskIDs      []string `json:"task_ids"`
	ScheduledFor *string  `json:"scheduled_for,omitempty"`
}

type AddAreaParams struct {
	AreaID string `json:"area_id"`
}

type SetTodayCapParams struct {
	// Cap accepts a number or a numeric string.
	Cap any `json:"cap"`
}

type GetRecentActivityParams struct {
	TaskID *string `json:"task_id,omitempty"`
	Type   *string `json:"type,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}

type ListTasksResponse struct {
	Tasks   []task.Task `json:"tasks"`
	Dropped int         `json:"dropped"`
	// Notice is set when invalid stored records were skipped.
	Notice string `json:"notice,omitempty"`
}

type TodayResponse struct {
	Items         []task.Task `json:"items"`
	TotalEligible int         `json:"totalEligible"`
	Cap           int         `json:"cap"`
	Hidden        int         `json:"hidden"`
}

type AreasResponse struct {
	Areas []string `json:"areas"`
}

type AddAreaResponse struct {
	OK      bool     `json:"ok"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message,omitempty"`
	Areas   []string `json:"areas,omitempty"`
}

type TodayCapResponse struct {
	Cap int `json:"cap"`
}

type ActivityEntryResponse struct {
	Timestamp time.Time             `json:"timestamp"`
	Type      activity.ActivityType `json:"type"`
	TaskID    *string               `json:"task_id,omitempty"`
	Summary   string                `json:"summary"`
	Details   string                `json:"details,omitempty"`
}
