package planning

// Action is a planning mutation routed through the Guardrail.
// The set of actions is closed: only this package implements it.
type Action interface {
	Name() string
	isAction()
}

// AddToToday includes a task in Today under the configured cap.
type AddToToday struct {
	TaskID string `json:"task_id"`
}

// SwapToToday replaces a Today task with another task.
type SwapToToday struct {
	AddTaskID    string `json:"add_task_id"`
	RemoveTaskID string `json:"remove_task_id"`
}

// BulkAddToToday includes several tasks in Today, all or nothing.
type BulkAddToToday struct {
	TaskIDs []string `json:"task_ids"`
}

// RemoveFromToday excludes a task from Today.
type RemoveFromToday struct {
	TaskID string `json:"task_id"`
}

// PauseTask removes a Today task and marks it paused.
type PauseTask struct {
	TaskID string `json:"task_id"`
}

// RetainTaskForNextDay keeps a task available for the following day.
type RetainTaskForNextDay struct {
	TaskID string `json:"task_id"`
}

// SetTaskArea moves a task to a registered area.
type SetTaskArea struct {
	TaskID string `json:"task_id"`
	AreaID string `json:"area_id"`
}

// RescheduleTask sets or clears a task's temporal target.
// A nil or blank ScheduledFor clears it.
type RescheduleTask struct {
	TaskID       string  `json:"task_id"`
	ScheduledFor *string `json:"scheduled_for"`
}

// BulkRescheduleTasks applies one temporal target to several tasks, all or nothing.
type BulkRescheduleTasks struct {
	TaskIDs      []string `json:"task_ids"`
	ScheduledFor *string  `json:"scheduled_for"`
}

// EnforceDailyContinuity clears stale Today membership once per day.
type EnforceDailyContinuity struct{}

func (AddToToday) Name() string             { return "addToToday" }
func (SwapToToday) Name() string            { return "swapToToday" }
func (BulkAddToToday) Name() string         { return "bulkAddToToday" }
func (RemoveFromToday) Name() string        { return "removeFromToday" }
func (PauseTask) Name() string              { return "pauseTask" }
func (RetainTaskForNextDay) Name() string   { return "retainTaskForNextDay" }
func (SetTaskArea) Name() string            { return "setTaskArea" }
func (RescheduleTask) Name() string         { return "rescheduleTask" }
func (BulkRescheduleTasks) Name() string    { return "bulkRescheduleTasks" }
func (EnforceDailyContinuity) Name() string { return "enforceDailyContinuity" }

func (AddToToday) isAction()             {}
func (SwapToToday) isAction()            {}
func (BulkAddToToday) isAction()         {}
func (RemoveFromToday) isAction()        {}
func (PauseTask) isAction()              {}
func (RetainTaskForNextDay) isAction()   {}
func (SetTaskArea) isAction()            {}
func (RescheduleTask) isAction()         {}
func (BulkRescheduleTasks) isAction()    {}
func (EnforceDailyContinuity) isAction() {}
