package area

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/rpggio/taskino/internal/repository"
)

// KeyAreas is the settings key holding the JSON-encoded area list.
const KeyAreas = "planning.areas"

// DefaultAreas is used when nothing usable is stored.
var DefaultAreas = []string{task.InboxArea, "work"}

// Service manages the caller-extensible area registry.
type Service struct {
	repo     Repository
	defaults []string
	logger   *slog.Logger
}

// NewService creates a new area service. Empty defaults fall back to DefaultAreas.
func NewService(repo Repository, defaults []string, logger *slog.Logger) *Service {
	normalized := normalizeAreas(defaults)
	if len(normalized) <= 1 {
		normalized = normalizeAreas(DefaultAreas)
	}
	return &Service{repo: repo, defaults: normalized, logger: logger}
}

// List returns the registered areas with the inbox always first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	raw, err := s.repo.Get(ctx, KeyAreas)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.defaultList(), nil
		}
		return nil, fmt.Errorf("reading areas: %w", err)
	}

	var stored []any
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || len(stored) == 0 {
		if s.logger != nil && err != nil {
			s.logger.Warn("ignoring malformed area list", "error", err)
		}
		return s.defaultList(), nil
	}

	ids := make([]string, 0, len(stored))
	for _, v := range stored {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return normalizeAreas(ids), nil
}

// Add registers a new area. Adding an existing area is a no-op.
func (s *Service) Add(ctx context.Context, areaID string) error {
	id := task.NormalizeArea(areaID)
	if id == "" {
		return ErrInvalidAreaID
	}
	if id == task.InboxArea {
		return ErrInboxImmutable
	}

	areas, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range areas {
		if existing == id {
			return nil
		}
	}

	data, err := json.Marshal(append(areas, id))
	if err != nil {
		return fmt.Errorf("encoding areas: %w", err)
	}
	if err := s.repo.Set(ctx, KeyAreas, string(data)); err != nil {
		return fmt.Errorf("saving areas: %w", err)
	}
	return nil
}

// IsValid reports whether areaID names a registered area.
func (s *Service) IsValid(ctx context.Context, areaID string) (bool, error) {
	id := task.NormalizeArea(areaID)
	if id == "" {
		return false, nil
	}
	areas, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range areas {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) defaultList() []string {
	out := make([]string, len(s.defaults))
	copy(out, s.defaults)
	return out
}

// normalizeAreas lowercases, drops blanks and duplicates, and puts the inbox first.
func normalizeAreas(ids []string) []string {
	out := []string{task.InboxArea}
	seen := map[string]bool{task.InboxArea: true}
	for _, raw := range ids {
		id := task.NormalizeArea(raw)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
