package task_test

import (
	"testing"

	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTemporalTarget(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-03-01", "2026-03-01"},
		{" 2026-03-01 ", "2026-03-01"},
		{"2026-03-01T23:30:00-02:00", "2026-03-02"},
		{"2026-03-01T10:00:00.123Z", "2026-03-01"},
		{"2026/03/04", "2026-03-04"},
		{"Mar 4, 2026", "2026-03-04"},
		{"2026-03-01T10:00:00+0000", "2026-03-01"},
		{"2026-03-01T23:00:00-0300", "2026-03-02"},
		{"2026-3-1", "2026-03-01"},
		{"2026-12-9", "2026-12-09"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			in := tc.in
			got, err := task.NormalizeTemporalTarget(&in)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tc.want, *got)
		})
	}
}

func TestNormalizeTemporalTarget_ClearAndInvalid(t *testing.T) {
	got, err := task.NormalizeTemporalTarget(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	blank := "   "
	got, err = task.NormalizeTemporalTarget(&blank)
	require.NoError(t, err)
	require.Nil(t, got)

	bad := "next tuesday"
	_, err = task.NormalizeTemporalTarget(&bad)
	require.ErrorIs(t, err, task.ErrInvalidTemporalTarget)
}

func TestNextDate(t *testing.T) {
	next, err := task.NextDate("2026-02-28")
	require.NoError(t, err)
	require.Equal(t, "2026-03-01", next)

	_, err = task.NextDate("2026-02-30")
	require.ErrorIs(t, err, task.ErrInvalidTemporalTarget)

	require.True(t, task.IsDate("2026-12-31"))
	require.False(t, task.IsDate("2026-1-3"))
}
