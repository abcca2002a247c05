package relaypager

import "fmt"

// DefaultPageSize is used when the client did not request a page size.
const DefaultPageSize = 10

// GuardPageSize enforces the configured maximum page size. A nil maximum
// means unlimited. Applied once, after argument resolution and before query
// execution.
func GuardPageSize(requested int, max *int) error {
	if max != nil && requested > *max {
		return fmt.Errorf("%w: requested %d rows, maximum is %d", ErrPageSizeExceeded, requested, *max)
	}

	return nil
}
