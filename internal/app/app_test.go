package app

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/taskino/internal/config"
	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/planning"
	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/rpggio/taskino/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestApp(t *testing.T, clock *fakeClock) *App {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	a := New(db, config.Default().Planning, nil, Options{Clock: clock.Now})
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func capture(t *testing.T, a *App, title string) *task.Task {
	t.Helper()
	created, err := a.Tasks.Capture(context.Background(), title)
	require.NoError(t, err)
	return created
}

func TestPlanningDay(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	a := newTestApp(t, clock)

	res := planning.ResultOf(a.Guardrail.Mutate(ctx, planning.EnforceDailyContinuity{}))
	require.True(t, res.OK)

	write := capture(t, a, "Write report")
	call := capture(t, a, "Call plumber")
	gym := capture(t, a, "Gym")
	read := capture(t, a, "Read paper")

	for _, id := range []string{write.ID, call.ID, gym.ID} {
		res := planning.ResultOf(a.Guardrail.Mutate(ctx, planning.AddToToday{TaskID: id}))
		require.True(t, res.OK, res.Message)
	}

	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.AddToToday{TaskID: read.ID}))
	require.False(t, res.OK)
	require.Equal(t, planning.CodeTodayCapExceeded, res.Code)

	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.SwapToToday{AddTaskID: read.ID, RemoveTaskID: gym.ID}))
	require.True(t, res.OK, res.Message)

	todayCap, err := a.Settings.TodayCap(ctx)
	require.NoError(t, err)
	proj, err := a.Tasks.Today(ctx, todayCap)
	require.NoError(t, err)
	require.Equal(t, 3, proj.TotalEligible)
	require.ElementsMatch(t, []string{write.ID, call.ID, read.ID}, taskIDs(proj.Items))

	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.RetainTaskForNextDay{TaskID: write.ID}))
	require.True(t, res.OK)
	require.Equal(t, "2026-03-02", res.Task.ScheduledDate())

	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.SetTaskArea{TaskID: call.ID, AreaID: "work"}))
	require.True(t, res.OK)
	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.SetTaskArea{TaskID: call.ID, AreaID: "garden"}))
	require.Equal(t, planning.CodeInvalidArea, res.Code)

	// Same day: continuity is a no-op.
	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.EnforceDailyContinuity{}))
	require.True(t, res.OK)
	require.Equal(t, 0, *res.Count)

	clock.now = clock.now.Add(24 * time.Hour)
	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.EnforceDailyContinuity{}))
	require.True(t, res.OK)
	require.Equal(t, 2, *res.Count)
	require.ElementsMatch(t, []string{call.ID, read.ID}, res.TaskIDs)

	proj, err = a.Tasks.Today(ctx, todayCap)
	require.NoError(t, err)
	require.Equal(t, []string{write.ID}, taskIDs(proj.Items))

	last, err := a.Settings.LastPlanningDate(ctx)
	require.NoError(t, err)
	require.Equal(t, "2026-03-02", last)
}

func TestBulkActionsAreAllOrNothing(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	a := newTestApp(t, clock)

	first := capture(t, a, "One")
	second := capture(t, a, "Two")

	res := planning.ResultOf(a.Guardrail.Mutate(ctx, planning.BulkAddToToday{TaskIDs: []string{first.ID, "task_missing"}}))
	require.False(t, res.OK)
	require.Equal(t, planning.CodeTaskNotFound, res.Code)

	proj, err := a.Tasks.Today(ctx, 3)
	require.NoError(t, err)
	require.Empty(t, proj.Items)

	date := "2026-03-05"
	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.BulkRescheduleTasks{TaskIDs: []string{first.ID, second.ID, first.ID}, ScheduledFor: &date}))
	require.True(t, res.OK, res.Message)
	require.Equal(t, 2, *res.Count)

	list, err := a.Tasks.List(ctx)
	require.NoError(t, err)
	for _, tk := range list.Tasks {
		require.Equal(t, date, tk.ScheduledDate())
	}
}

func TestActivityIsRecorded(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	a := newTestApp(t, clock)

	created := capture(t, a, "Inbox zero")

	// Pausing requires Today membership; the rejection is not logged.
	res := planning.ResultOf(a.Guardrail.Mutate(ctx, planning.PauseTask{TaskID: created.ID}))
	require.False(t, res.OK)
	require.Equal(t, planning.CodeRemoveTaskNotInToday, res.Code)

	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.AddToToday{TaskID: created.ID}))
	require.True(t, res.OK, res.Message)
	res = planning.ResultOf(a.Guardrail.Mutate(ctx, planning.PauseTask{TaskID: created.ID}))
	require.True(t, res.OK, res.Message)
	require.True(t, res.Task.IsPaused())

	entries, err := a.Activity.GetRecentActivity(ctx, activityFor(created.ID))
	require.NoError(t, err)
	types := make([]activity.ActivityType, 0, len(entries))
	for _, entry := range entries {
		types = append(types, entry.ActivityType)
	}
	require.ElementsMatch(t, []activity.ActivityType{
		activity.TypeTaskCaptured,
		activity.TypeTodayAdded,
		activity.TypeTaskPaused,
	}, types)
}

func TestContinuityReportsWhetherItApplied(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	a := newTestApp(t, clock)

	first := planning.ResultOf(a.Guardrail.Mutate(ctx, planning.EnforceDailyContinuity{}))
	require.True(t, first.OK)
	require.Equal(t, 0, *first.Count)
	require.NotNil(t, first.Applied)
	require.True(t, *first.Applied)

	second := planning.ResultOf(a.Guardrail.Mutate(ctx, planning.EnforceDailyContinuity{}))
	require.True(t, second.OK)
	require.Equal(t, 0, *second.Count)
	require.NotNil(t, second.Applied)
	require.False(t, *second.Applied)
}

func taskIDs(tasks []task.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		ids = append(ids, tk.ID)
	}
	return ids
}

func activityFor(taskID string) activity.ListActivityOptions {
	return activity.ListActivityOptions{TaskID: &taskID}
}
