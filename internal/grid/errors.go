package grid

import "errors"

var (
	// ErrInvalidArgument is returned for negative spacing, row or column values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded is returned when a mutation would leave more
	// children than rows*columns cells.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
