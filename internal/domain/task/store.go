package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/taskino/internal/repository"
)

// Store implements the task mutation primitives on top of a Transactor.
// Every primitive re-reads current state inside its transaction and re-checks
// its invariant before writing.
type Store struct {
	db  Transactor
	now func() time.Time
}

// NewStore creates a new task store.
func NewStore(db Transactor) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Get returns a task by ID.
func (s *Store) Get(ctx context.Context, id string) (*Task, error) {
	var found *Task
	err := s.db.ReadOnly(ctx, func(tx Tx) error {
		t, err := loadTask(ctx, tx, id)
		if err != nil {
			return err
		}
		found = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List returns all tasks ordered newest first, ties broken by id.
func (s *Store) List(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := s.db.ReadOnly(ctx, func(tx Tx) error {
		all, err := tx.List(ctx)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		tasks = all
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortNewestFirst(tasks)
	return tasks, nil
}

// AddToTodayWithCap includes a task in Today unless that would exceed the cap.
// A task already in Today is rewritten without counting against the cap again.
func (s *Store) AddToTodayWithCap(ctx context.Context, id string, todayCap int) (*Task, error) {
	var updated Task
	err := s.db.ReadWrite(ctx, func(tx Tx) error {
		tasks, err := tx.List(ctx)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		current, ok := findTask(tasks, id)
		if !ok {
			return ErrTaskNotFound
		}

		limit := ParseTodayCap(todayCap)
		if !current.TodayIncluded && countToday(tasks) >= limit {
			return ErrTodayCapExceeded
		}

		updated = includeInToday(current, s.timestamp())
		if err := tx.Put(ctx, &updated); err != nil {
			return fmt.Errorf("saving task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SwapInToday removes one task from Today and includes another in its place.
func (s *Store) SwapInToday(ctx context.Context, addID, removeID string) error {
	if addID == removeID {
		return ErrInvalidInput
	}
	return s.db.ReadWrite(ctx, func(tx Tx) error {
		tasks, err := tx.List(ctx)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		addTask, addOK := findTask(tasks, addID)
		removeTask, removeOK := findTask(tasks, removeID)
		if !addOK || !removeOK {
			return ErrTaskNotFound
		}
		if !removeTask.TodayIncluded {
			return ErrRemoveTaskNotInToday
		}

		now := s.timestamp()
		removed := removeTask
		removed.TodayIncluded = false
		removed.UpdatedAt = now

		return writeBatch(ctx, tx,
			[]Task{removeTask, addTask},
			[]Task{removed, includeInToday(addTask, now)},
		)
	})
}

// BulkAddToToday includes every listed task in Today, or none of them.
// Tasks already in Today are skipped; the returned ids are the net-new additions.
func (s *Store) BulkAddToToday(ctx context.Context, ids []string, todayCap int) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}

	var added []string
	err := s.db.ReadWrite(ctx, func(tx Tx) error {
		tasks, err := tx.List(ctx)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		var toAdd []Task
		for _, id := range ids {
			current, ok := findTask(tasks, id)
			if !ok {
				return ErrTaskNotFound
			}
			if current.TodayIncluded {
				continue
			}
			toAdd = append(toAdd, current)
		}

		if countToday(tasks)+len(toAdd) > ParseTodayCap(todayCap) {
			return ErrTodayCapExceeded
		}

		now := s.timestamp()
		updates := make([]Task, len(toAdd))
		added = make([]string, len(toAdd))
		for i, t := range toAdd {
			updates[i] = includeInToday(t, now)
			added[i] = t.ID
		}
		return writeBatch(ctx, tx, toAdd, updates)
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveFromToday excludes a task from Today.
func (s *Store) RemoveFromToday(ctx context.Context, id string) (*Task, error) {
	return s.updateOne(ctx, id, func(t *Task) error {
		if !t.TodayIncluded {
			return ErrRemoveTaskNotInToday
		}
		t.TodayIncluded = false
		return nil
	})
}

// SetPaused marks a Today task as paused and removes it from Today.
func (s *Store) SetPaused(ctx context.Context, id string) (*Task, error) {
	return s.updateOne(ctx, id, func(t *Task) error {
		if !t.TodayIncluded {
			return ErrRemoveTaskNotInToday
		}
		t.TodayIncluded = false
		t.Status = StatusPaused
		return nil
	})
}

// SetArea moves a task to another area without touching Today membership.
func (s *Store) SetArea(ctx context.Context, id, areaID string) (*Task, error) {
	area := NormalizeArea(areaID)
	if area == "" {
		return nil, ErrInvalidArea
	}
	return s.updateOne(ctx, id, func(t *Task) error {
		t.Area = area
		return nil
	})
}

// Reschedule sets or clears the temporal target of a task.
func (s *Store) Reschedule(ctx context.Context, id string, scheduledFor *string) (*Task, error) {
	return s.updateOne(ctx, id, func(t *Task) error {
		t.ScheduledFor = copyDate(scheduledFor)
		return nil
	})
}

// RetainForDate keeps a task's Today membership and schedules it for date.
func (s *Store) RetainForDate(ctx context.Context, id, date string) (*Task, error) {
	if !IsDate(date) {
		return nil, ErrInvalidTemporalTarget
	}
	return s.updateOne(ctx, id, func(t *Task) error {
		t.ScheduledFor = &date
		return nil
	})
}

// BulkReschedule sets one temporal target on every listed task, or on none.
// A failed write restores every task in the batch to its snapshot.
func (s *Store) BulkReschedule(ctx context.Context, ids []string, scheduledFor *string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}

	var updatedIDs []string
	err := s.db.ReadWrite(ctx, func(tx Tx) error {
		tasks, err := tx.List(ctx)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		originals := make([]Task, 0, len(ids))
		for _, id := range ids {
			current, ok := findTask(tasks, id)
			if !ok {
				return ErrTaskNotFound
			}
			originals = append(originals, current)
		}

		now := s.timestamp()
		updates := make([]Task, len(originals))
		updatedIDs = make([]string, len(originals))
		for i, t := range originals {
			t.ScheduledFor = copyDate(scheduledFor)
			t.UpdatedAt = now
			updates[i] = t
			updatedIDs[i] = t.ID
		}
		return writeBatch(ctx, tx, originals, updates)
	})
	if err != nil {
		return nil, err
	}
	return updatedIDs, nil
}

// ClearTodayExcept removes from Today every task not scheduled for date.
// It returns the ids of the tasks that were removed.
func (s *Store) ClearTodayExcept(ctx context.Context, date string) ([]string, error) {
	var cleared []string
	err := s.db.ReadWrite(ctx, func(tx Tx) error {
		tasks, err := tx.List(ctx)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		now := s.timestamp()
		var originals, updates []Task
		for _, t := range tasks {
			if !t.TodayIncluded || t.ScheduledDate() == date {
				continue
			}
			originals = append(originals, t)
			t.TodayIncluded = false
			t.UpdatedAt = now
			updates = append(updates, t)
			cleared = append(cleared, t.ID)
		}
		return writeBatch(ctx, tx, originals, updates)
	})
	if err != nil {
		return nil, err
	}
	return cleared, nil
}

func (s *Store) updateOne(ctx context.Context, id string, apply func(*Task) error) (*Task, error) {
	var updated Task
	err := s.db.ReadWrite(ctx, func(tx Tx) error {
		current, err := loadTask(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = *current
		if err := apply(&updated); err != nil {
			return err
		}
		updated.UpdatedAt = s.timestamp()
		if err := tx.Put(ctx, &updated); err != nil {
			return fmt.Errorf("saving task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// writeBatch writes updates in order; originals[i] is the snapshot of
// updates[i]. If a write fails, every earlier write is restored from its
// snapshot before the failure is reported.
func writeBatch(ctx context.Context, tx Tx, originals, updates []Task) error {
	for i := range updates {
		if err := tx.Put(ctx, &updates[i]); err != nil {
			for j := i - 1; j >= 0; j-- {
				if restoreErr := tx.Put(ctx, &originals[j]); restoreErr != nil {
					return fmt.Errorf("restoring task %s: %w", originals[j].ID, restoreErr)
				}
			}
			return fmt.Errorf("%w: %w", ErrBatchRolledBack, err)
		}
	}
	return nil
}

func loadTask(ctx context.Context, tx Tx, id string) (*Task, error) {
	t, err := tx.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("loading task: %w", err)
	}
	return t, nil
}

func findTask(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func countToday(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.TodayIncluded {
			n++
		}
	}
	return n
}

// includeInToday also clears a paused status, since paused tasks are never in Today.
func includeInToday(t Task, now time.Time) Task {
	t.TodayIncluded = true
	if t.IsPaused() {
		t.Status = StatusNone
	}
	t.UpdatedAt = now
	return t
}

func copyDate(date *string) *string {
	if date == nil {
		return nil
	}
	d := *date
	return &d
}

// NormalizeArea trims and lowercases an area id.
func NormalizeArea(areaID string) string {
	return strings.ToLower(strings.TrimSpace(areaID))
}
