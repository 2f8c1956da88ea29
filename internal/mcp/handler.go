package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/planning"
	"github.com/rpggio/taskino/internal/domain/task"
)

// TaskService defines task capture and read operations needed by MCP.
type TaskService interface {
	Capture(ctx context.Context, title string) (*task.Task, error)
	List(ctx context.Context) (*task.ListResult, error)
	Today(ctx context.Context, todayCap int) (task.Projection, error)
}

// Planner routes planning mutations through the guardrail.
type Planner interface {
	Mutate(ctx context.Context, action planning.Action) (*planning.Outcome, error)
}

// AreaService defines area registry operations needed by MCP.
type AreaService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, areaID string) error
}

// SettingsService defines capacity operations needed by MCP.
type SettingsService interface {
	TodayCap(ctx context.Context) (int, error)
	SetTodayCap(ctx context.Context, raw any) (int, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Handler dispatches MCP commands.
type Handler struct {
	tasks    TaskService
	planner  Planner
	areas    AreaService
	settings SettingsService
	activity ActivityService
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services) *Handler {
	return &Handler{
		tasks:    services.Tasks,
		planner:  services.Planner,
		areas:    services.Areas,
		settings: services.Settings,
		activity: services.Activity,
	}
}

// Handle dispatches MCP requests to domain services. Planning mutations
// always return a planning.Result, including when the guardrail rejects them.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "capture_task":
		var req CaptureTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		created, err := h.tasks.Capture(ctx, req.Title)
		if err != nil {
			return nil, mapError(err)
		}
		return created, nil
	case "list_tasks":
		res, err := h.tasks.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		resp := ListTasksResponse{Tasks: res.Tasks, Dropped: res.Dropped}
		if resp.Tasks == nil {
			resp.Tasks = []task.Task{}
		}
		if res.Dropped > 0 {
			resp.Notice = fmt.Sprintf("%d stored task(s) could not be read and were skipped.", res.Dropped)
		}
		return resp, nil
	case "get_today":
		todayCap, err := h.settings.TodayCap(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		proj, err := h.tasks.Today(ctx, todayCap)
		if err != nil {
			return nil, mapError(err)
		}
		return TodayResponse{
			Items:         proj.Items,
			TotalEligible: proj.TotalEligible,
			Cap:           proj.Cap,
			Hidden:        proj.TotalEligible - len(proj.Items),
		}, nil
	case "add_to_today":
		var req TaskIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.AddToToday{TaskID: req.TaskID}), nil
	case "swap_to_today":
		var req SwapToTodayParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.SwapToToday{AddTaskID: req.AddTaskID, RemoveTaskID: req.RemoveTaskID}), nil
	case "bulk_add_to_today":
		var req TaskIDsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.BulkAddToToday{TaskIDs: req.TaskIDs}), nil
	case "remove_from_today":
		var req TaskIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.RemoveFromToday{TaskID: req.TaskID}), nil
	case "pause_task":
		var req TaskIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.PauseTask{TaskID: req.TaskID}), nil
	case "retain_task":
		var req TaskIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.RetainTaskForNextDay{TaskID: req.TaskID}), nil
	case "set_task_area":
		var req SetTaskAreaParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.SetTaskArea{TaskID: req.TaskID, AreaID: req.AreaID}), nil
	case "reschedule_task":
		var req RescheduleTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.RescheduleTask{TaskID: req.TaskID, ScheduledFor: req.ScheduledFor}), nil
	case "bulk_reschedule_tasks":
		var req BulkRescheduleTasksParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.mutate(ctx, planning.BulkRescheduleTasks{TaskIDs: req.TaskIDs, ScheduledFor: req.ScheduledFor}), nil
	case "enforce_daily_continuity":
		return h.mutate(ctx, planning.EnforceDailyContinuity{}), nil
	case "list_areas":
		areas, err := h.areas.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return AreasResponse{Areas: areas}, nil
	case "add_area":
		var req AddAreaParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.areas.Add(ctx, req.AreaID); err != nil {
			apiErr := MapError(err)
			if apiErr == nil {
				return nil, err
			}
			return AddAreaResponse{OK: false, Code: apiErr.Code, Message: apiErr.Message}, nil
		}
		areas, err := h.areas.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return AddAreaResponse{OK: true, Areas: areas}, nil
	case "get_today_cap":
		todayCap, err := h.settings.TodayCap(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return TodayCapResponse{Cap: todayCap}, nil
	case "set_today_cap":
		var req SetTodayCapParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		todayCap, err := h.settings.SetTodayCap(ctx, req.Cap)
		if err != nil {
			return nil, mapError(err)
		}
		return TodayCapResponse{Cap: todayCap}, nil
	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts := activity.ListActivityOptions{
			TaskID: req.TaskID,
			Limit:  req.Limit,
			Offset: req.Offset,
		}
		if req.Type != nil {
			typ := activity.ActivityType(*req.Type)
			opts.ActivityType = &typ
		}
		entries, err := h.activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, mapError(err)
		}
		resp := make([]ActivityEntryResponse, 0, len(entries))
		for _, entry := range entries {
			resp = append(resp, ActivityEntryResponse{
				Timestamp: entry.CreatedAt,
				Type:      entry.ActivityType,
				TaskID:    entry.TaskID,
				Summary:   entry.Summary,
				Details:   entry.Details,
			})
		}
		return resp, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, method)
	}
}

func (h *Handler) mutate(ctx context.Context, action planning.Action) planning.Result {
	return planning.ResultOf(h.planner.Mutate(ctx, action))
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Check argument names and types"}
	}
	return nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
