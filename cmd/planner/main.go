// Command planner drives the local task store from the shell. Every
// subcommand prints its result as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rpggio/taskino/internal/app"
	"github.com/rpggio/taskino/internal/config"
	"github.com/rpggio/taskino/internal/domain/planning"
	"github.com/rpggio/taskino/internal/mcp"
	"github.com/spf13/cobra"
)

// errNotApplied signals a rejected planning action. The JSON result has
// already been printed, so main only sets the exit code.
var errNotApplied = errors.New("action not applied")

type cli struct {
	out      io.Writer
	dbPath   string
	logLevel string

	app     *app.App
	handler *mcp.Handler
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errNotApplied) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run executes one command line and always releases the database.
func run(args []string, out io.Writer) error {
	c := &cli{out: out}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Capture tasks and plan Today",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open()
		},
	}
	root.PersistentFlags().StringVar(&c.dbPath, "db", "", "database path (overrides TASKINO_DB_PATH)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.captureCmd(),
		c.simpleCmd("list", "List all valid tasks", "list_tasks"),
		c.simpleCmd("today", "Show the Today projection", "get_today"),
		c.taskCmd("add <task-id>", "Add a task to Today", "add_to_today"),
		c.swapCmd(),
		c.taskCmd("remove <task-id>", "Remove a task from Today", "remove_from_today"),
		c.taskCmd("pause <task-id>", "Pause a task", "pause_task"),
		c.taskCmd("retain <task-id>", "Keep a Today task for tomorrow", "retain_task"),
		c.areaCmd(),
		c.rescheduleCmd(),
		c.bulkAddCmd(),
		c.bulkRescheduleCmd(),
		c.simpleCmd("continuity", "Start the planning day, clearing yesterday's Today", "enforce_daily_continuity"),
		c.capCmd(),
		c.activityCmd(),
	)
	return root
}

func (c *cli) open() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.dbPath != "" {
		cfg.DB.Path = c.dbPath
	}
	level := cfg.Log.Level
	if c.logLevel != "" {
		level = c.logLevel
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(level)}))

	a, err := app.Open(cfg.DB.Path, cfg.Planning, logger)
	if err != nil {
		return err
	}
	c.app = a
	c.handler = mcp.NewHandler(a.MCPServices())
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// call runs one tool through the MCP handler and prints the result.
func (c *cli) call(ctx context.Context, tool string, args map[string]any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encoding arguments: %w", err)
	}
	result, err := c.handler.Handle(ctx, tool, raw)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if !succeeded(result) {
		return errNotApplied
	}
	return nil
}

func succeeded(result any) bool {
	switch r := result.(type) {
	case planning.Result:
		return r.OK
	case mcp.AddAreaResponse:
		return r.OK
	default:
		return true
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
