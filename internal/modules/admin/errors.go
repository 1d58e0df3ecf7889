package admin

import "errors"

var (
	ErrSlugTaken        = errors.New("slug already in use")
	ErrInvalidStatus    = errors.New("invalid lead status")
	ErrInvalidDirection = errors.New("invalid reorder direction")

	// ErrReorderIncomplete means the first of the two swap writes
	// succeeded and the second failed, so the backend may hold a partial
	// swap. Callers must not update their local list state.
	ErrReorderIncomplete = errors.New("reorder partially applied")
)
