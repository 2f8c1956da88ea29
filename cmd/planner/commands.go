package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) simpleCmd(use, short, tool string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd.Context(), tool, map[string]any{})
		},
	}
}

func (c *cli) taskCmd(use, short, tool string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd.Context(), tool, map[string]any{"task_id": args[0]})
		},
	}
}

func (c *cli) captureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture <title>",
		Short: "Capture a task into the inbox",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd.Context(), "capture_task", map[string]any{"title": strings.Join(args, " ")})
		},
	}
}

func (c *cli) swapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <add-task-id> <remove-task-id>",
		Short: "Swap a task into Today in place of another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd.Context(), "swap_to_today", map[string]any{
				"add_task_id":    args[0],
				"remove_task_id": args[1],
			})
		},
	}
}

func (c *cli) areaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage planning areas",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List areas",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.call(cmd.Context(), "list_areas", map[string]any{})
			},
		},
		&cobra.Command{
			Use:   "add <area-id>",
			Short: "Register a new area",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.call(cmd.Context(), "add_area", map[string]any{"area_id": args[0]})
			},
		},
		&cobra.Command{
			Use:   "set <task-id> <area-id>",
			Short: "Move a task to an area",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.call(cmd.Context(), "set_task_area", map[string]any{
					"task_id": args[0],
					"area_id": args[1],
				})
			},
		},
	)
	return cmd
}

func (c *cli) rescheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule <task-id> [date]",
		Short: "Schedule a task for a date, or clear its date when none is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd.Context(), "reschedule_task", map[string]any{
				"task_id":       args[0],
				"scheduled_for": optionalDate(args, 1),
			})
		},
	}
}

func (c *cli) bulkAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-add <task-id>...",
		Short: "Add several tasks to Today, all or none",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd.Context(), "bulk_add_to_today", map[string]any{"task_ids": args})
		},
	}
}

func (c *cli) bulkRescheduleCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "bulk-reschedule <task-id>...",
		Short: "Schedule several tasks for one date, all or none",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scheduledFor any
			if date != "" {
				scheduledFor = date
			}
			return c.call(cmd.Context(), "bulk_reschedule_tasks", map[string]any{
				"task_ids":      args,
				"scheduled_for": scheduledFor,
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD); empty clears the date")
	return cmd
}

func (c *cli) capCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cap",
		Short: "Show or change the Today cap",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the Today cap",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.call(cmd.Context(), "get_today_cap", map[string]any{})
			},
		},
		&cobra.Command{
			Use:   "set <n>",
			Short: "Change the Today cap",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.call(cmd.Context(), "set_today_cap", map[string]any{"cap": args[0]})
			},
		},
	)
	return cmd
}

func (c *cli) activityCmd() *cobra.Command {
	var (
		taskID string
		typ    string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent planning activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{"limit": limit}
			if taskID != "" {
				params["task_id"] = taskID
			}
			if typ != "" {
				params["type"] = typ
			}
			return c.call(cmd.Context(), "get_recent_activity", params)
		},
	}
	cmd.Flags().StringVar(&taskID, "task", "", "only show activity for this task")
	cmd.Flags().StringVar(&typ, "type", "", "only show this activity type")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries")
	return cmd
}

func optionalDate(args []string, i int) any {
	if len(args) <= i || strings.TrimSpace(args[i]) == "" {
		return nil
	}
	return args[i]
}
