package settings

import "context"

// Repository provides key/value persistence for planner settings.
// Get returns repository.ErrNotFound for keys that were never written.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
