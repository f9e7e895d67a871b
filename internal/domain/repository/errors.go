package repository

import "errors"

// Closed set of storage errors. Implementations translate driver-specific
// failures into these before returning; callers match with errors.Is and
// raw driver errors never cross the repository boundary.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate unique field")
	ErrInvalidID  = errors.New("invalid identifier")
	ErrInvalidRef = errors.New("referenced record does not exist")
	ErrStaleToken = errors.New("refresh token already rotated")
)
