package terrain

import "errors"

var (
	// ErrOutOfRange marks a coordinate that resolves outside the configured
	// grid or chunk bounds. Always non-fatal: batch operations skip the tile.
	ErrOutOfRange = errors.New("out of range")

	// ErrValidation marks rejected operation input (e.g. a lasso with fewer
	// than three points). No mutation has been performed.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration marks a rejected grid configuration. The previous
	// configuration stays in effect.
	ErrConfiguration = errors.New("invalid configuration")
)
