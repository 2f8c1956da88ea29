package area

import "errors"

var (
	// ErrInvalidAreaID indicates an empty area id.
	ErrInvalidAreaID = errors.New("area id is required")
	// ErrInboxImmutable indicates an attempt to re-add the reserved inbox area.
	ErrInboxImmutable = errors.New("inbox area is reserved")
)
