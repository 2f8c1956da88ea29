package planning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/task"
)

// Config wires the guardrail to its collaborators. Activities, Logger and
// Clock are optional.
type Config struct {
	Tasks      TaskStore
	Areas      AreaRegistry
	Caps       CapacityReader
	DayCycle   DayCycle
	Activities ActivityLogger
	Logger     *slog.Logger
	Clock      func() time.Time
}

// Guardrail is the single write path for planning state. It validates every
// action before touching the store and reports failures as *Error.
type Guardrail struct {
	tasks      TaskStore
	areas      AreaRegistry
	caps       CapacityReader
	dayCycle   DayCycle
	activities ActivityLogger
	logger     *slog.Logger
	now        func() time.Time
}

// NewGuardrail creates a new guardrail.
func NewGuardrail(cfg Config) *Guardrail {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Guardrail{
		tasks:      cfg.Tasks,
		areas:      cfg.Areas,
		caps:       cfg.Caps,
		dayCycle:   cfg.DayCycle,
		activities: cfg.Activities,
		logger:     cfg.Logger,
		now:        now,
	}
}

// Today returns the current UTC calendar date.
func (g *Guardrail) Today() string {
	return task.DateOf(g.now())
}

// Mutate validates and applies a planning action.
func (g *Guardrail) Mutate(ctx context.Context, action Action) (*Outcome, error) {
	var (
		outcome *Outcome
		err     error
	)
	switch a := action.(type) {
	case AddToToday:
		outcome, err = g.addToToday(ctx, a)
	case SwapToToday:
		outcome, err = g.swapToToday(ctx, a)
	case BulkAddToToday:
		outcome, err = g.bulkAddToToday(ctx, a)
	case RemoveFromToday:
		outcome, err = g.removeFromToday(ctx, a)
	case PauseTask:
		outcome, err = g.pauseTask(ctx, a)
	case RetainTaskForNextDay:
		outcome, err = g.retainTask(ctx, a)
	case SetTaskArea:
		outcome, err = g.setTaskArea(ctx, a)
	case RescheduleTask:
		outcome, err = g.rescheduleTask(ctx, a)
	case BulkRescheduleTasks:
		outcome, err = g.bulkRescheduleTasks(ctx, a)
	case EnforceDailyContinuity:
		outcome, err = g.enforceDailyContinuity(ctx)
	default:
		return nil, newError(CodeInvariantViolation, msgUnknownAction)
	}
	if err != nil {
		if g.logger != nil {
			g.logger.Debug("planning mutation rejected", "action", action.Name(), "error", err)
		}
		return nil, err
	}
	return outcome, nil
}

func (g *Guardrail) addToToday(ctx context.Context, a AddToToday) (*Outcome, error) {
	if !validTaskID(a.TaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	todayCap, err := g.todayCap(ctx)
	if err != nil {
		return nil, err
	}
	t, err := g.tasks.AddToTodayWithCap(ctx, a.TaskID, todayCap)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeTodayAdded, &t.ID, fmt.Sprintf("added %s to today", t.ID), nil)
	return &Outcome{Task: t, Applied: true}, nil
}

func (g *Guardrail) swapToToday(ctx context.Context, a SwapToToday) (*Outcome, error) {
	if !validTaskID(a.AddTaskID) || !validTaskID(a.RemoveTaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	if a.AddTaskID == a.RemoveTaskID {
		return nil, newError(CodeInvariantViolation, msgSelfSwap)
	}
	if err := g.tasks.SwapInToday(ctx, a.AddTaskID, a.RemoveTaskID); err != nil {
		return nil, g.storeError(err)
	}
	ids := []string{a.AddTaskID, a.RemoveTaskID}
	g.record(ctx, activity.TypeTodaySwapped, &a.AddTaskID,
		fmt.Sprintf("swapped %s into today for %s", a.AddTaskID, a.RemoveTaskID),
		map[string]any{"task_ids": ids})
	return &Outcome{TaskIDs: ids, Applied: true}, nil
}

func (g *Guardrail) bulkAddToToday(ctx context.Context, a BulkAddToToday) (*Outcome, error) {
	ids, ok := dedupTaskIDs(a.TaskIDs)
	if !ok {
		return nil, newError(CodeInvariantViolation, msgInvalidTaskList)
	}
	todayCap, err := g.todayCap(ctx)
	if err != nil {
		return nil, err
	}
	added, err := g.tasks.BulkAddToToday(ctx, ids, todayCap)
	if err != nil {
		return nil, g.storeError(err)
	}
	if added == nil {
		added = []string{}
	}
	g.record(ctx, activity.TypeTodayBulkAdded, nil,
		fmt.Sprintf("added %d tasks to today", len(added)),
		map[string]any{"task_ids": added})
	return &Outcome{TaskIDs: added, Count: intPtr(len(added)), Applied: true}, nil
}

func (g *Guardrail) removeFromToday(ctx context.Context, a RemoveFromToday) (*Outcome, error) {
	if !validTaskID(a.TaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	t, err := g.tasks.RemoveFromToday(ctx, a.TaskID)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeTodayRemoved, &t.ID, fmt.Sprintf("removed %s from today", t.ID), nil)
	return &Outcome{Task: t, Applied: true}, nil
}

func (g *Guardrail) pauseTask(ctx context.Context, a PauseTask) (*Outcome, error) {
	if !validTaskID(a.TaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	t, err := g.tasks.SetPaused(ctx, a.TaskID)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeTaskPaused, &t.ID, fmt.Sprintf("paused %s", t.ID), nil)
	return &Outcome{Task: t, Applied: true}, nil
}

func (g *Guardrail) retainTask(ctx context.Context, a RetainTaskForNextDay) (*Outcome, error) {
	if !validTaskID(a.TaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	next, err := task.NextDate(g.Today())
	if err != nil {
		return nil, newError(CodeInvariantViolation, msgStoreFailure)
	}
	t, err := g.tasks.RetainForDate(ctx, a.TaskID, next)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeTaskRetained, &t.ID, fmt.Sprintf("retained %s for %s", t.ID, next), nil)
	return &Outcome{Task: t, Applied: true}, nil
}

func (g *Guardrail) setTaskArea(ctx context.Context, a SetTaskArea) (*Outcome, error) {
	if !validTaskID(a.TaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	area := task.NormalizeArea(a.AreaID)
	if area == "" {
		return nil, newError(CodeInvalidArea, "")
	}
	valid, err := g.areas.IsValid(ctx, area)
	if err != nil {
		return nil, g.storeError(err)
	}
	if !valid {
		return nil, newError(CodeInvalidArea, "")
	}
	t, err := g.tasks.SetArea(ctx, a.TaskID, area)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeAreaChanged, &t.ID, fmt.Sprintf("moved %s to %s", t.ID, area), nil)
	return &Outcome{Task: t, Applied: true}, nil
}

func (g *Guardrail) rescheduleTask(ctx context.Context, a RescheduleTask) (*Outcome, error) {
	if !validTaskID(a.TaskID) {
		return nil, newError(CodeInvariantViolation, msgInvalidTask)
	}
	date, err := task.NormalizeTemporalTarget(a.ScheduledFor)
	if err != nil {
		return nil, newError(CodeInvalidTemporalTarget, "")
	}
	t, err := g.tasks.Reschedule(ctx, a.TaskID, date)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeTaskRescheduled, &t.ID,
		fmt.Sprintf("rescheduled %s to %s", t.ID, describeDate(date)), nil)
	return &Outcome{Task: t, Applied: true}, nil
}

func (g *Guardrail) bulkRescheduleTasks(ctx context.Context, a BulkRescheduleTasks) (*Outcome, error) {
	ids, ok := dedupTaskIDs(a.TaskIDs)
	if !ok {
		return nil, newError(CodeInvariantViolation, msgInvalidTaskList)
	}
	date, err := task.NormalizeTemporalTarget(a.ScheduledFor)
	if err != nil {
		return nil, newError(CodeInvalidTemporalTarget, "")
	}
	updated, err := g.tasks.BulkReschedule(ctx, ids, date)
	if err != nil {
		return nil, g.storeError(err)
	}
	g.record(ctx, activity.TypeBulkRescheduled, nil,
		fmt.Sprintf("rescheduled %d tasks to %s", len(updated), describeDate(date)),
		map[string]any{"task_ids": updated})
	return &Outcome{TaskIDs: updated, Count: intPtr(len(updated)), Applied: true}, nil
}

func (g *Guardrail) enforceDailyContinuity(ctx context.Context) (*Outcome, error) {
	today := g.Today()
	last, err := g.dayCycle.LastPlanningDate(ctx)
	if err != nil {
		return nil, g.storeError(err)
	}
	if last == today {
		return &Outcome{Count: intPtr(0), Applied: false}, nil
	}

	cleared, err := g.tasks.ClearTodayExcept(ctx, today)
	if err != nil {
		return nil, g.storeError(err)
	}
	if err := g.dayCycle.SetLastPlanningDate(ctx, today); err != nil {
		return nil, g.storeError(err)
	}
	if cleared == nil {
		cleared = []string{}
	}
	g.record(ctx, activity.TypeContinuityEnforced, nil,
		fmt.Sprintf("started %s, cleared %d tasks from today", today, len(cleared)),
		map[string]any{"task_ids": cleared, "date": today})
	return &Outcome{TaskIDs: cleared, Count: intPtr(len(cleared)), Applied: true}, nil
}

func (g *Guardrail) todayCap(ctx context.Context) (int, error) {
	if g.caps == nil {
		return task.DefaultTodayCap, nil
	}
	n, err := g.caps.TodayCap(ctx)
	if err != nil {
		return 0, g.storeError(err)
	}
	return task.ParseTodayCap(n), nil
}

// storeError maps store sentinels to planning codes. Anything unexpected
// becomes INVARIANT_VIOLATION with a retry message.
func (g *Guardrail) storeError(err error) error {
	var perr *Error
	switch {
	case errors.As(err, &perr):
		return perr
	case errors.Is(err, task.ErrTaskNotFound):
		perr = newError(CodeTaskNotFound, "")
	case errors.Is(err, task.ErrTodayCapExceeded):
		perr = newError(CodeTodayCapExceeded, "")
	case errors.Is(err, task.ErrRemoveTaskNotInToday):
		perr = newError(CodeRemoveTaskNotInToday, "")
	case errors.Is(err, task.ErrInvalidArea):
		perr = newError(CodeInvalidArea, "")
	case errors.Is(err, task.ErrInvalidTemporalTarget):
		perr = newError(CodeInvalidTemporalTarget, "")
	case errors.Is(err, task.ErrInvalidInput):
		perr = newError(CodeInvariantViolation, msgInvalidTask)
	default:
		if g.logger != nil {
			g.logger.Error("planning store failure", "error", err)
		}
		perr = newError(CodeInvariantViolation, msgStoreFailure)
	}
	perr.Err = err
	return perr
}

func (g *Guardrail) record(ctx context.Context, typ activity.ActivityType, taskID *string, summary string, details map[string]any) {
	if g.activities == nil {
		return
	}
	entry := &activity.ActivityEntry{
		TaskID:       taskID,
		ActivityType: typ,
		Summary:      summary,
		CreatedAt:    g.now().UTC(),
	}
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			entry.Details = string(data)
		}
	}
	if err := g.activities.LogActivity(ctx, entry); err != nil && g.logger != nil {
		g.logger.Warn("failed to log planning activity", "type", typ, "error", err)
	}
}

func validTaskID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// dedupTaskIDs removes duplicates while keeping first-seen order. It reports
// false for an empty list or any blank id.
func dedupTaskIDs(ids []string) ([]string, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !validTaskID(id) {
			return nil, false
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, true
}

func describeDate(date *string) string {
	if date == nil {
		return "unscheduled"
	}
	return *date
}
