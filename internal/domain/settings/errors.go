package settings

import "errors"

var (
	// ErrInvalidTodayCap indicates a cap that is not a positive integer.
	ErrInvalidTodayCap = errors.New("today cap must be a positive integer")
	// ErrInvalidDate indicates a planning date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("planning date must be YYYY-MM-DD")
)
