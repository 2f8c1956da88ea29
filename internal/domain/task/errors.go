package task

import "errors"

var (
	// ErrTaskNotFound indicates the referenced task doesn't exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTodayCapExceeded indicates the mutation would push Today above its cap.
	ErrTodayCapExceeded = errors.New("today cap exceeded")
	// ErrRemoveTaskNotInToday indicates the task is not currently in Today.
	ErrRemoveTaskNotInToday = errors.New("task not in today")
	// ErrInvalidArea indicates an empty or unregistered area.
	ErrInvalidArea = errors.New("invalid area")
	// ErrInvalidTemporalTarget indicates an unparsable scheduled date.
	ErrInvalidTemporalTarget = errors.New("invalid temporal target")
	// ErrInvalidInput indicates malformed task input.
	ErrInvalidInput = errors.New("invalid task input")
	// ErrTitleRequired indicates a capture without a usable title.
	ErrTitleRequired = errors.New("task title is required")
	// ErrBatchRolledBack indicates a batch write failed and earlier writes were restored.
	ErrBatchRolledBack = errors.New("batch write failed and was rolled back")
)
