package area_test

import (
	"context"
	"testing"

	"github.com/rpggio/taskino/internal/domain/area"
	"github.com/rpggio/taskino/internal/repository"
	"github.com/rpggio/taskino/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAreaService_ListDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	repo.On("Get", ctx, area.KeyAreas).Return("", repository.ErrNotFound).Once()
	repo.On("Get", ctx, area.KeyAreas).Return("{not json", nil).Once()
	repo.On("Get", ctx, area.KeyAreas).Return("[]", nil).Once()

	svc := area.NewService(repo, nil, nil)
	for i := 0; i < 3; i++ {
		areas, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"inbox", "work"}, areas)
	}
}

func TestAreaService_ListNormalizes(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	repo.On("Get", ctx, area.KeyAreas).Return(`["Work", " home ", "work", "", 7, "INBOX"]`, nil)

	areas, err := area.NewService(repo, nil, nil).List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"inbox", "work", "home"}, areas)
}

func TestAreaService_CustomDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	repo.On("Get", ctx, area.KeyAreas).Return("", repository.ErrNotFound)

	areas, err := area.NewService(repo, []string{"personal", "Errands"}, nil).List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"inbox", "personal", "errands"}, areas)
}

func TestAreaService_Add(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	repo.On("Get", ctx, area.KeyAreas).Return(`["inbox","work"]`, nil)
	repo.On("Set", ctx, area.KeyAreas, `["inbox","work","garden"]`).Return(nil)

	svc := area.NewService(repo, nil, nil)
	require.NoError(t, svc.Add(ctx, " Garden"))
	require.NoError(t, svc.Add(ctx, "work"))
	require.ErrorIs(t, svc.Add(ctx, "  "), area.ErrInvalidAreaID)
	require.ErrorIs(t, svc.Add(ctx, "Inbox"), area.ErrInboxImmutable)

	repo.AssertNumberOfCalls(t, "Set", 1)
}

func TestAreaService_IsValid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	repo.On("Get", ctx, area.KeyAreas).Return(`["inbox","work"]`, nil)

	svc := area.NewService(repo, nil, nil)
	ok, err := svc.IsValid(ctx, "WORK")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.IsValid(ctx, "garden")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.IsValid(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
