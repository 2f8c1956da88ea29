package task_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func todayTask(id string, created time.Time) task.Task {
	return task.Task{ID: id, Title: "Task " + id, Area: "work", TodayIncluded: true, CreatedAt: created, UpdatedAt: created}
}

func ids(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestComputeTodayProjection_NewestFirst(t *testing.T) {
	tasks := []task.Task{
		todayTask("A", base),
		todayTask("B", base.Add(time.Minute)),
		todayTask("C", base.Add(2*time.Minute)),
	}

	proj := task.ComputeTodayProjection(tasks, 3)
	if diff := cmp.Diff([]string{"C", "B", "A"}, ids(proj.Items)); diff != "" {
		t.Fatalf("projection order mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, proj.TotalEligible)
	require.Equal(t, 3, proj.Cap)
}

func TestComputeTodayProjection_TieBreaksByID(t *testing.T) {
	tasks := []task.Task{todayTask("b", base), todayTask("a", base)}

	proj := task.ComputeTodayProjection(tasks, 2)
	require.Equal(t, []string{"a", "b"}, ids(proj.Items))
}

func TestComputeTodayProjection_ZeroCreatedAtSortsLast(t *testing.T) {
	tasks := []task.Task{todayTask("z", time.Time{}), todayTask("y", base)}

	proj := task.ComputeTodayProjection(tasks, 5)
	require.Equal(t, []string{"y", "z"}, ids(proj.Items))
}

func TestComputeTodayProjection_SilentTruncation(t *testing.T) {
	tasks := []task.Task{
		todayTask("a", base),
		todayTask("b", base.Add(time.Second)),
		todayTask("c", base.Add(2*time.Second)),
		todayTask("d", base.Add(3*time.Second)),
	}

	proj := task.ComputeTodayProjection(tasks, 2)
	require.Equal(t, []string{"d", "c"}, ids(proj.Items))
	require.Equal(t, 4, proj.TotalEligible)
	require.LessOrEqual(t, len(proj.Items), proj.Cap)
}

func TestComputeTodayProjection_ExcludesInvalidAndNonToday(t *testing.T) {
	tasks := []task.Task{
		{ID: "", Title: "Missing id", TodayIncluded: true, CreatedAt: base},
		{ID: "blank", Title: "   ", TodayIncluded: true, CreatedAt: base},
		{ID: "later", Title: "Not today", TodayIncluded: false, CreatedAt: base},
		todayTask("ok", base),
	}

	proj := task.ComputeTodayProjection(tasks, 3)
	require.Equal(t, []string{"ok"}, ids(proj.Items))
	require.Equal(t, 1, proj.TotalEligible)
}

func TestComputeTodayProjection_DefaultsArea(t *testing.T) {
	tk := todayTask("a", base)
	tk.Area = ""

	proj := task.ComputeTodayProjection([]task.Task{tk}, 3)
	require.Equal(t, task.InboxArea, proj.Items[0].Area)
}

func TestComputeTodayProjection_CapNormalization(t *testing.T) {
	tasks := []task.Task{
		todayTask("a", base),
		todayTask("b", base.Add(time.Second)),
		todayTask("c", base.Add(2*time.Second)),
		todayTask("d", base.Add(3*time.Second)),
	}

	cases := map[string]struct {
		raw  any
		want int
	}{
		"zero":     {raw: 0, want: task.DefaultTodayCap},
		"negative": {raw: -2, want: task.DefaultTodayCap},
		"nil":      {raw: nil, want: task.DefaultTodayCap},
		"garbage":  {raw: "many", want: task.DefaultTodayCap},
		"string":   {raw: "2", want: 2},
		"float":    {raw: 4.0, want: 4},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			proj := task.ComputeTodayProjection(tasks, tc.raw)
			require.Equal(t, tc.want, proj.Cap)
			require.Len(t, proj.Items, tc.want)
			require.GreaterOrEqual(t, proj.TotalEligible, len(proj.Items))
		})
	}
}

func TestComputeTodayProjection_IsPure(t *testing.T) {
	tasks := []task.Task{
		todayTask("b", base),
		{ID: "x", Title: "x", Area: "", TodayIncluded: true, CreatedAt: base.Add(time.Hour)},
		todayTask("a", base),
	}
	snapshot := make([]task.Task, len(tasks))
	copy(snapshot, tasks)

	first := task.ComputeTodayProjection(tasks, 2)
	second := task.ComputeTodayProjection(tasks, 2)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("projection not deterministic (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot, tasks); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestParseCap(t *testing.T) {
	n, ok := task.ParseCap("5 items")
	require.True(t, ok)
	require.Equal(t, 5, n)

	_, ok = task.ParseCap("0")
	require.False(t, ok)

	_, ok = task.ParseCap(1e12)
	require.False(t, ok)

	require.Equal(t, 7, task.ParseTodayCap(int64(7)))
}
