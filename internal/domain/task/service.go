package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/taskino/internal/domain/activity"
)

// Service handles task capture and read-side projections.
type Service struct {
	repo       Repository
	activities ActivityLogger
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new task service.
func NewService(repo Repository, activities ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// ListResult holds the valid tasks and how many stored records were skipped.
type ListResult struct {
	Tasks   []Task `json:"tasks"`
	Dropped int    `json:"dropped"`
}

// NormalizeTitle trims a quick-capture title and rejects blank input.
func NormalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrTitleRequired
	}
	return title, nil
}

// NewID builds a globally unique task id from a timestamp and a random suffix.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("task_%d_%s", now.UnixMilli(), suffix)
}

// Capture creates a new Inbox task outside of Today.
func (s *Service) Capture(ctx context.Context, rawTitle string) (*Task, error) {
	title, err := NormalizeTitle(rawTitle)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	t := &Task{
		ID:            NewID(now),
		Title:         title,
		Area:          InboxArea,
		TodayIncluded: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	if s.activities != nil {
		if err := s.activities.LogActivity(ctx, &activity.ActivityEntry{
			TaskID:       &t.ID,
			ActivityType: activity.TypeTaskCaptured,
			Summary:      fmt.Sprintf("captured task %s", t.ID),
			CreatedAt:    now,
		}); err != nil && s.logger != nil {
			s.logger.Warn("failed to log capture", "task_id", t.ID, "error", err)
		}
	}

	return t, nil
}

// List returns the valid stored tasks and reports invalid records as dropped.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	valid, dropped := FilterValid(tasks)
	if dropped > 0 && s.logger != nil {
		s.logger.Warn("skipped invalid task records", "dropped", dropped)
	}
	return &ListResult{Tasks: valid, Dropped: dropped}, nil
}

// Today computes the Today projection over the stored tasks.
func (s *Service) Today(ctx context.Context, todayCap int) (Projection, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return Projection{}, fmt.Errorf("listing tasks: %w", err)
	}
	return ComputeTodayProjection(tasks, todayCap), nil
}
