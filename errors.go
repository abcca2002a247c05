package relaypager

import "errors"

var (
	// ErrInvalidArgument is returned for malformed pagination arguments:
	// negative page sizes or mixed forward/backward arguments.
	ErrInvalidArgument = errors.New("invalid pagination argument")

	// ErrInvalidCursor is returned for opaque cursor tokens that cannot be
	// decoded.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrPageSizeExceeded is returned when the requested page size is above
	// the configured maximum.
	ErrPageSizeExceeded = errors.New("page size exceeded")
)
