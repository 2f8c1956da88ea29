package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rpggio/taskino/internal/domain/planning"
	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/stretchr/testify/require"
)

type plannerRun struct {
	t  *testing.T
	db string
}

func newPlannerRun(t *testing.T) *plannerRun {
	t.Helper()
	for _, key := range []string{"TASKINO_CONFIG_PATH", "TASKINO_DB_PATH", "TASKINO_TODAY_CAP", "TASKINO_TRANSPORT", "TASKINO_SERVER_PORT"} {
		t.Setenv(key, "")
	}
	return &plannerRun{t: t, db: filepath.Join(t.TempDir(), "planner.db")}
}

func (p *plannerRun) exec(args ...string) ([]byte, error) {
	p.t.Helper()
	var out bytes.Buffer
	err := run(append([]string{"--db", p.db}, args...), &out)
	return out.Bytes(), err
}

func (p *plannerRun) capture(title string) task.Task {
	p.t.Helper()
	out, err := p.exec("capture", title)
	require.NoError(p.t, err)
	var created task.Task
	require.NoError(p.t, json.Unmarshal(out, &created))
	return created
}

func TestCaptureAndList(t *testing.T) {
	p := newPlannerRun(t)
	created := p.capture("Buy milk")
	require.Equal(t, "Buy milk", created.Title)
	require.Equal(t, task.InboxArea, created.Area)

	out, err := p.exec("list")
	require.NoError(t, err)
	var listed struct {
		Tasks []task.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(out, &listed))
	require.Len(t, listed.Tasks, 1)
	require.Equal(t, created.ID, listed.Tasks[0].ID)
}

func TestRejectedActionExitsWithError(t *testing.T) {
	p := newPlannerRun(t)

	out, err := p.exec("add", "task_0_deadbeef")
	require.ErrorIs(t, err, errNotApplied)
	var res planning.Result
	require.NoError(t, json.Unmarshal(out, &res))
	require.False(t, res.OK)
	require.Equal(t, planning.CodeTaskNotFound, res.Code)
}

func TestCapAndToday(t *testing.T) {
	p := newPlannerRun(t)

	_, err := p.exec("cap", "set", "1")
	require.NoError(t, err)

	first := p.capture("First")
	second := p.capture("Second")

	_, err = p.exec("add", first.ID)
	require.NoError(t, err)
	out, err := p.exec("add", second.ID)
	require.ErrorIs(t, err, errNotApplied)
	var res planning.Result
	require.NoError(t, json.Unmarshal(out, &res))
	require.Equal(t, planning.CodeTodayCapExceeded, res.Code)

	_, err = p.exec("swap", second.ID, first.ID)
	require.NoError(t, err)

	out, err = p.exec("today")
	require.NoError(t, err)
	var today struct {
		Items []task.Task `json:"items"`
		Cap   int         `json:"cap"`
	}
	require.NoError(t, json.Unmarshal(out, &today))
	require.Equal(t, 1, today.Cap)
	require.Len(t, today.Items, 1)
	require.Equal(t, second.ID, today.Items[0].ID)
}

func TestAreaCommands(t *testing.T) {
	p := newPlannerRun(t)
	created := p.capture("Fix sink")

	_, err := p.exec("area", "add", "home")
	require.NoError(t, err)
	_, err = p.exec("area", "add", "inbox")
	require.ErrorIs(t, err, errNotApplied)

	out, err := p.exec("area", "set", created.ID, "home")
	require.NoError(t, err)
	var res planning.Result
	require.NoError(t, json.Unmarshal(out, &res))
	require.Equal(t, "home", res.Task.Area)
}

func TestRescheduleCommands(t *testing.T) {
	p := newPlannerRun(t)
	created := p.capture("Dentist")

	out, err := p.exec("reschedule", created.ID, "2026-02-30")
	require.ErrorIs(t, err, errNotApplied)
	var res planning.Result
	require.NoError(t, json.Unmarshal(out, &res))
	require.Equal(t, planning.CodeInvalidTemporalTarget, res.Code)

	_, err = p.exec("bulk-reschedule", "--date", "2026-03-10", created.ID)
	require.NoError(t, err)

	out, err = p.exec("reschedule", created.ID)
	require.NoError(t, err)
	res = planning.Result{}
	require.NoError(t, json.Unmarshal(out, &res))
	require.Nil(t, res.Task.ScheduledFor)
}

func TestUnknownCommand(t *testing.T) {
	p := newPlannerRun(t)
	_, err := p.exec("frobnicate")
	require.Error(t, err)
	require.NotErrorIs(t, err, errNotApplied)
}
