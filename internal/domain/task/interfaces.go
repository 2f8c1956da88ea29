package task

import (
	"context"

	"github.com/rpggio/taskino/internal/domain/activity"
)

// Tx is a transactional view over stored task records.
// Get returns repository.ErrNotFound for unknown ids.
type Tx interface {
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context) ([]Task, error)
	Put(ctx context.Context, t *Task) error
}

// Transactor runs a function inside a single logical store transaction.
// A non-nil error from fn aborts the transaction.
type Transactor interface {
	ReadWrite(ctx context.Context, fn func(Tx) error) error
	ReadOnly(ctx context.Context, fn func(Tx) error) error
}

// Repository provides the task operations needed by the capture service.
type Repository interface {
	Create(ctx context.Context, t *Task) error
	List(ctx context.Context) ([]Task, error)
}

// ActivityLogger logs task activities.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}
