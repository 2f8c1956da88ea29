package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `taskino is a local-first task planner. Tasks are captured into an inbox and
planned into a capacity-limited Today list.

Core concepts:
- Task: title, area, status (active/paused), optional scheduled_for date, and a today flag.
- Today: the eligible tasks with the today flag set, newest first, truncated to the Today cap.
- Area: a planning bucket. "inbox" always exists; new tasks land there.
- Continuity: the first planning action of a new day clears yesterday's Today list,
  keeping only tasks retained for the current day.

Rules of engagement:
1) Orient: call get_today and list_tasks.
2) Plan: add_to_today, swap_to_today, remove_from_today, pause_task, retain_task,
   set_task_area, reschedule_task and their bulk variants.
   Every planning tool returns {ok, code, message}. ok=false means nothing changed.
3) When add_to_today fails with TODAY_CAP_EXCEEDED, use swap_to_today instead.
4) Call enforce_daily_continuity at the start of a session; it is a no-op when already run today.

Docs:
- taskino://docs/index
- taskino://docs/concepts
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "taskino://docs/index",
		Name:        "docs_index",
		Title:       "taskino docs index",
		Description: "Entry point for agent-facing docs.",
		Content: `# taskino: Agent Docs Index

## Quick start

1. get_today to see what is planned.
2. list_tasks to see everything else.
3. Use the planning tools to change Today. They never partially apply.

## Tools

Reads: list_tasks, get_today, list_areas, get_today_cap, get_recent_activity.

Writes: capture_task, add_area, set_today_cap.

Planning (guarded): add_to_today, swap_to_today, bulk_add_to_today, remove_from_today,
pause_task, retain_task, set_task_area, reschedule_task, bulk_reschedule_tasks,
enforce_daily_continuity.

## Further reading

- taskino://docs/concepts (glossary, invariants, error codes)
`,
	},
	{
		URI:         "taskino://docs/concepts",
		Name:        "docs_concepts",
		Title:       "taskino concepts",
		Description: "Glossary, invariants and planning error codes.",
		Content: `# taskino concepts

## Glossary

- **Eligible task**: a valid task included in Today.
- **Today cap**: the maximum number of tasks shown in Today. Defaults to 3.
- **Scheduled date**: a calendar date (YYYY-MM-DD) a task is planned for.
- **Retain**: keep a Today task for the next day; continuity will not clear it.

## Invariants

- Adding to Today never exceeds the cap. Swaps keep the count unchanged.
- Bulk operations apply to every task or to none.
- Including a task in Today makes it active again.
- Rejected actions leave storage untouched.

## Error codes

| Code | Meaning |
|------|---------|
| TASK_NOT_FOUND | The task id does not exist |
| TODAY_CAP_EXCEEDED | Today is full; swap instead |
| REMOVE_TASK_NOT_IN_TODAY | The task to swap out is not in Today |
| INVALID_AREA | Unknown area id |
| INVALID_TEMPORAL_TARGET | Date is not a valid calendar date |
| INVALID_INPUT | Missing or malformed arguments |
| INVARIANT_VIOLATION | Storage failed; nothing was saved |
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
