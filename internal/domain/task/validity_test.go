package task_test

import (
	"testing"

	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/stretchr/testify/require"
)

func TestIsValidRecord(t *testing.T) {
	require.True(t, task.IsValidRecord(task.Task{ID: "t1", Title: "Write"}))
	require.False(t, task.IsValidRecord(task.Task{ID: "", Title: "Missing id"}))
	require.False(t, task.IsValidRecord(task.Task{ID: "  ", Title: "Blank id"}))
	require.False(t, task.IsValidRecord(task.Task{ID: "t2", Title: " \t"}))
}

func TestFilterValid_ReportsDropped(t *testing.T) {
	valid, dropped := task.FilterValid([]task.Task{
		{ID: "a", Title: "A"},
		{ID: "", Title: "B"},
		{ID: "c", Title: "C"},
		{ID: "d"},
	})
	require.Equal(t, 2, dropped)
	require.Equal(t, []string{"a", "c"}, ids(valid))
}
