// Package app wires the SQLite repositories into the planning services shared
// by the MCP server and the planner CLI.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/taskino/internal/config"
	"github.com/rpggio/taskino/internal/domain/activity"
	"github.com/rpggio/taskino/internal/domain/area"
	"github.com/rpggio/taskino/internal/domain/planning"
	"github.com/rpggio/taskino/internal/domain/settings"
	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/rpggio/taskino/internal/mcp"
	"github.com/rpggio/taskino/internal/sqlite"
)

// App holds the wired services for one database.
type App struct {
	DB        *sqlite.DB
	Tasks     *task.Service
	Areas     *area.Service
	Settings  *settings.Service
	Activity  *activity.Service
	Guardrail *planning.Guardrail
}

// Options tunes wiring for tests.
type Options struct {
	Clock func() time.Time
}

// Open opens the database at path, applies migrations and wires services.
func Open(path string, planningCfg config.PlanningConfig, logger *slog.Logger) (*App, error) {
	db, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	return New(db, planningCfg, logger, Options{}), nil
}

// New wires services over an already migrated database.
func New(db *sqlite.DB, planningCfg config.PlanningConfig, logger *slog.Logger, opts Options) *App {
	taskRepo := sqlite.NewTaskRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	activitySvc := activity.NewService(activityRepo, logger)
	taskSvc := task.NewService(taskRepo, activitySvc, logger)
	store := task.NewStore(taskRepo)
	settingsSvc := settings.NewService(settingsRepo, planningCfg.DefaultTodayCap, logger)
	areaSvc := area.NewService(settingsRepo, planningCfg.DefaultAreas, logger)

	guardrail := planning.NewGuardrail(planning.Config{
		Tasks:      store,
		Areas:      areaSvc,
		Caps:       settingsSvc,
		DayCycle:   settingsSvc,
		Activities: activitySvc,
		Logger:     logger,
		Clock:      opts.Clock,
	})

	return &App{
		DB:        db,
		Tasks:     taskSvc,
		Areas:     areaSvc,
		Settings:  settingsSvc,
		Activity:  activitySvc,
		Guardrail: guardrail,
	}
}

// MCPServices exposes the services in the shape the MCP handler expects.
func (a *App) MCPServices() mcp.Services {
	return mcp.Services{
		Tasks:    a.Tasks,
		Planner:  a.Guardrail,
		Areas:    a.Areas,
		Settings: a.Settings,
		Activity: a.Activity,
	}
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
