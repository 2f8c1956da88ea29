package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/taskino/internal/domain/task"
	"github.com/rpggio/taskino/internal/repository"
)

const taskColumns = `id, title, area, today_included, status, scheduled_for, created_at, updated_at`

// TaskRepository stores task records and implements task.Transactor.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ReadWrite runs fn in a transaction that commits only if fn succeeds.
func (r *TaskRepository) ReadWrite(ctx context.Context, fn func(task.Tx) error) error {
	return r.withTx(ctx, nil, fn)
}

// ReadOnly runs fn in a transaction. It shares the single connection with
// writers, so it observes a consistent snapshot.
func (r *TaskRepository) ReadOnly(ctx context.Context, fn func(task.Tx) error) error {
	return r.withTx(ctx, nil, fn)
}

func (r *TaskRepository) withTx(ctx context.Context, opts *sql.TxOptions, fn func(task.Tx) error) error {
	sqlTx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&taskTx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("failed to roll back: %w (after %v)", rbErr, err)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Create inserts a new task. An existing id yields repository.ErrConflict.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	return r.ReadWrite(ctx, func(tx task.Tx) error {
		return tx.(*taskTx).insert(ctx, t)
	})
}

// List returns every stored task in id order.
func (r *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	err := r.ReadOnly(ctx, func(tx task.Tx) error {
		var err error
		tasks, err = tx.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// taskTx is a task.Tx bound to one database transaction.
type taskTx struct {
	tx *sql.Tx
}

func (t *taskTx) Get(ctx context.Context, id string) (*task.Task, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	rec, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return rec, nil
}

func (t *taskTx) List(ctx context.Context) ([]task.Task, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		rec, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// Put inserts or replaces a task record.
func (t *taskTx) Put(ctx context.Context, rec *task.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			area = excluded.area,
			today_included = excluded.today_included,
			status = excluded.status,
			scheduled_for = excluded.scheduled_for,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
	`
	if _, err := t.tx.ExecContext(ctx, query, taskArgs(rec)...); err != nil {
		return fmt.Errorf("failed to put task: %w", err)
	}
	return nil
}

func (t *taskTx) insert(ctx context.Context, rec *task.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := t.tx.ExecContext(ctx, query, taskArgs(rec)...); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func taskArgs(rec *task.Task) []interface{} {
	return []interface{}{
		rec.ID,
		rec.Title,
		nullString(rec.Area),
		rec.TodayIncluded,
		nullString(string(rec.Status)),
		nullStringPtr(rec.ScheduledFor),
		formatTime(rec.CreatedAt),
		formatTime(rec.UpdatedAt),
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		rec          task.Task
		area         sql.NullString
		status       sql.NullString
		scheduledFor sql.NullString
		createdAt    string
		updatedAt    string
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Title,
		&area,
		&rec.TodayIncluded,
		&status,
		&scheduledFor,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	rec.Area = area.String
	rec.Status = task.Status(status.String)
	if scheduledFor.Valid && scheduledFor.String != "" {
		date := scheduledFor.String
		rec.ScheduledFor = &date
	}
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp. Unparsable values read as the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullStringPtr(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
