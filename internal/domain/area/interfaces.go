package area

import "context"

// Repository provides key/value persistence for the area registry.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
