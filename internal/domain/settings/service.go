package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/rpggio/taskino/internal/repository"
)

const (
	KeyTodayCap         = "planning.todayCap"
	KeyLastPlanningDate = "planning.lastPlanningDate"
)

// Service reads and writes the Today cap and the day-cycle marker.
type Service struct {
	repo       Repository
	defaultCap int
	logger     *slog.Logger
}

// NewService creates a new settings service. An unusable defaultCap falls
// back to task.DefaultTodayCap.
func NewService(repo Repository, defaultCap int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		defaultCap: task.ParseTodayCap(defaultCap),
		logger:     logger,
	}
}

// TodayCap returns the stored cap, or the default when unset or malformed.
func (s *Service) TodayCap(ctx context.Context) (int, error) {
	raw, err := s.repo.Get(ctx, KeyTodayCap)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.defaultCap, nil
		}
		return 0, fmt.Errorf("reading today cap: %w", err)
	}
	n, ok := task.ParseCap(raw)
	if !ok {
		return s.defaultCap, nil
	}
	return n, nil
}

// SetTodayCap stores a new cap and returns the normalized value.
func (s *Service) SetTodayCap(ctx context.Context, raw any) (int, error) {
	n, ok := task.ParseCap(raw)
	if !ok {
		return 0, ErrInvalidTodayCap
	}
	if err := s.repo.Set(ctx, KeyTodayCap, strconv.Itoa(n)); err != nil {
		return 0, fmt.Errorf("saving today cap: %w", err)
	}
	return n, nil
}

// LastPlanningDate returns the stored day-cycle marker, or "" if never set.
func (s *Service) LastPlanningDate(ctx context.Context) (string, error) {
	raw, err := s.repo.Get(ctx, KeyLastPlanningDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading last planning date: %w", err)
	}
	date := strings.TrimSpace(raw)
	if !task.IsDate(date) {
		if s.logger != nil {
			s.logger.Warn("ignoring malformed planning date", "value", raw)
		}
		return "", nil
	}
	return date, nil
}

// SetLastPlanningDate stores the day-cycle marker.
func (s *Service) SetLastPlanningDate(ctx context.Context, date string) error {
	date = strings.TrimSpace(date)
	if !task.IsDate(date) {
		return ErrInvalidDate
	}
	if err := s.repo.Set(ctx, KeyLastPlanningDate, date); err != nil {
		return fmt.Errorf("saving last planning date: %w", err)
	}
	return nil
}
