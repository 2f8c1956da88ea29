package mcp

// ToolDefinition describes one MCP tool and its JSON input schema.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func stringListProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}

var (
	taskIDProp       = stringProp("Task ID")
	taskIDsProp      = stringListProp("Task IDs; duplicates are ignored")
	scheduledForProp = map[string]any{
		"type":        []string{"string", "null"},
		"description": "Target date (YYYY-MM-DD or any ISO date); null or empty clears it",
	}
)

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Capture and read
		{
			Name:        "capture_task",
			Description: "Capture a new task into the inbox. It is not added to Today.",
			InputSchema: objectSchema(map[string]any{
				"title": stringProp("Task title; surrounding whitespace is trimmed"),
			}, "title"),
		},
		{
			Name:        "list_tasks",
			Description: "List all readable tasks, newest first, with a count of skipped invalid records",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "get_today",
			Description: "Get the Today selection: newest first, limited to the Today cap",
			InputSchema: objectSchema(map[string]any{}),
		},

		// Today membership
		{
			Name:        "add_to_today",
			Description: "Add a task to Today. Fails with TODAY_CAP_EXCEEDED when Today is full.",
			InputSchema: objectSchema(map[string]any{"task_id": taskIDProp}, "task_id"),
		},
		{
			Name:        "swap_to_today",
			Description: "Replace a Today task with another task",
			InputSchema: objectSchema(map[string]any{
				"add_task_id":    stringProp("Task to add to Today"),
				"remove_task_id": stringProp("Task currently in Today to remove"),
			}, "add_task_id", "remove_task_id"),
		},
		{
			Name:        "bulk_add_to_today",
			Description: "Add several tasks to Today. Either all are added or none are.",
			InputSchema: objectSchema(map[string]any{"task_ids": taskIDsProp}, "task_ids"),
		},
		{
			Name:        "remove_from_today",
			Description: "Remove a task from Today",
			InputSchema: objectSchema(map[string]any{"task_id": taskIDProp}, "task_id"),
		},

		// Closure
		{
			Name:        "pause_task",
			Description: "Pause a Today task, removing it from Today",
			InputSchema: objectSchema(map[string]any{"task_id": taskIDProp}, "task_id"),
		},
		{
			Name:        "retain_task",
			Description: "Keep a task in Today for the next day",
			InputSchema: objectSchema(map[string]any{"task_id": taskIDProp}, "task_id"),
		},
		{
			Name:        "set_task_area",
			Description: "Move a task to a registered area. Today membership is unchanged.",
			InputSchema: objectSchema(map[string]any{
				"task_id": taskIDProp,
				"area_id": stringProp("Area ID (case-insensitive)"),
			}, "task_id", "area_id"),
		},
		{
			Name:        "reschedule_task",
			Description: "Set or clear a task's scheduled date. Area and Today membership are unchanged.",
			InputSchema: objectSchema(map[string]any{
				"task_id":       taskIDProp,
				"scheduled_for": scheduledForProp,
			}, "task_id"),
		},
		{
			Name:        "bulk_reschedule_tasks",
			Description: "Set or clear the scheduled date of several tasks. Either all are updated or none are.",
			InputSchema: objectSchema(map[string]any{
				"task_ids":      taskIDsProp,
				"scheduled_for": scheduledForProp,
			}, "task_ids"),
		},
		{
			Name:        "enforce_daily_continuity",
			Description: "Start the planning day: clears Today of tasks not scheduled for today. Runs at most once per day.",
			InputSchema: objectSchema(map[string]any{}),
		},

		// Areas and capacity
		{
			Name:        "list_areas",
			Description: "List registered areas; inbox is always first",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "add_area",
			Description: "Register a new area",
			InputSchema: objectSchema(map[string]any{"area_id": stringProp("New area ID")}, "area_id"),
		},
		{
			Name:        "get_today_cap",
			Description: "Get the maximum number of tasks allowed in Today",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "set_today_cap",
			Description: "Set the maximum number of tasks allowed in Today",
			InputSchema: objectSchema(map[string]any{
				"cap": map[string]any{
					"type":        []string{"integer", "string"},
					"description": "Positive whole number",
				},
			}, "cap"),
		},
		{
			Name:        "get_recent_activity",
			Description: "List recent planning activity, newest first",
			InputSchema: objectSchema(map[string]any{
				"task_id": stringProp("Only activity for this task"),
				"type":    stringProp("Only activity of this type, e.g. today_added"),
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of entries (default 50)",
				},
				"offset": map[string]any{
					"type":        "integer",
					"description": "Offset for pagination",
				},
			}),
		},
	}
}
