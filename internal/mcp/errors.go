package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/taskino/internal/domain/area"
	"github.com/rpggio/taskino/internal/domain/settings"
	"github.com/rpggio/taskino/internal/domain/task"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, task.ErrTitleRequired):
		return &APIError{Code: "TITLE_REQUIRED", Message: "Task title is required.", RecoveryHint: "Pass a non-blank title"}
	case errors.Is(err, task.ErrTaskNotFound):
		return &APIError{Code: "TASK_NOT_FOUND", Message: "Task not found.", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, area.ErrInvalidAreaID):
		return &APIError{Code: "INVALID_AREA_ID", Message: "Area id is required.", RecoveryHint: "Pass a non-blank area id"}
	case errors.Is(err, area.ErrInboxImmutable):
		return &APIError{Code: "INBOX_IMMUTABLE", Message: "The inbox area is reserved.", RecoveryHint: "Choose another area id"}
	case errors.Is(err, settings.ErrInvalidTodayCap):
		return &APIError{Code: "INVALID_TODAY_CAP", Message: "Today cap must be a positive integer.", RecoveryHint: "Pass a whole number greater than zero"}
	default:
		return nil
	}
}

// ErrUnknownTool is returned for tool names missing from the catalog.
var ErrUnknownTool = errors.New("unknown tool")
