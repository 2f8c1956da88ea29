package planning

import (
	"errors"

	"github.com/rpggio/taskino/internal/domain/task"
)

// Code is a stable planning error code.
type Code string

const (
	CodeTaskNotFound          Code = "TASK_NOT_FOUND"
	CodeTodayCapExceeded      Code = "TODAY_CAP_EXCEEDED"
	CodeRemoveTaskNotInToday  Code = "REMOVE_TASK_NOT_IN_TODAY"
	CodeInvalidArea           Code = "INVALID_AREA"
	CodeInvalidTemporalTarget Code = "INVALID_TEMPORAL_TARGET"
	CodeInvariantViolation    Code = "INVARIANT_VIOLATION"
)

const (
	msgInvalidTask     = "Invalid task."
	msgInvalidTaskList = "Invalid task list."
	msgSelfSwap        = "Cannot swap a task with itself."
	msgUnknownAction   = "Unknown mutation action."
	msgStoreFailure    = "Unable to save task locally. Please retry."
)

// DefaultMessage returns the human-readable message for a code.
func DefaultMessage(code Code) string {
	switch code {
	case CodeTodayCapExceeded:
		return "Today is at capacity. Choose an item to swap or cancel."
	case CodeTaskNotFound:
		return "Task not found."
	case CodeRemoveTaskNotInToday:
		return "Selected item is not in Today."
	case CodeInvalidArea:
		return "Invalid area. Choose an existing area."
	case CodeInvalidTemporalTarget:
		return "Invalid date. Use a valid date (YYYY-MM-DD)."
	default:
		return "Unable to save. Please retry."
	}
}

// Error is the only error type returned by Guardrail.Mutate.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code Code, message string) *Error {
	if message == "" {
		message = DefaultMessage(code)
	}
	return &Error{Code: code, Message: message}
}

// Outcome is the payload of a successful mutation. Fields not produced by
// the action are left at their zero value.
type Outcome struct {
	Task    *task.Task
	TaskIDs []string
	Count   *int
	// Applied is false when the mutation was an idempotent no-op.
	Applied bool
}

// Result is the flat, transport-friendly form of a mutation result.
type Result struct {
	OK      bool       `json:"ok"`
	Code    Code       `json:"code,omitempty"`
	Message string     `json:"message,omitempty"`
	Task    *task.Task `json:"task,omitempty"`
	TaskIDs []string   `json:"taskIds,omitempty"`
	Count   *int       `json:"count,omitempty"`
	// Applied is false only for an idempotent no-op.
	Applied *bool      `json:"applied,omitempty"`
}

// ResultOf flattens the return values of Mutate. Errors that are not an
// *Error are reported as INVARIANT_VIOLATION.
func ResultOf(outcome *Outcome, err error) Result {
	if err != nil {
		var perr *Error
		if !errors.As(err, &perr) {
			perr = newError(CodeInvariantViolation, msgStoreFailure)
		}
		message := perr.Message
		if message == "" {
			message = DefaultMessage(perr.Code)
		}
		return Result{OK: false, Code: perr.Code, Message: message}
	}
	res := Result{OK: true}
	if outcome != nil {
		res.Task = outcome.Task
		res.TaskIDs = outcome.TaskIDs
		res.Count = outcome.Count
		applied := outcome.Applied
		res.Applied = &applied
	}
	return res
}

// CodeOf returns the planning code carried by err, or "" if there is none.
func CodeOf(err error) Code {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}

func intPtr(n int) *int {
	return &n
}
