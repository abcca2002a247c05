package relaypager

import "fmt"

// PaginationOrder is the direction of a paginated walk over the dataset.
type PaginationOrder string

const (
	// OrderUnspecified means no pagination arguments were supplied. It
	// behaves as forward pagination with the default page size.
	OrderUnspecified PaginationOrder = ""
	OrderForward     PaginationOrder = "FORWARD"
	OrderBackward    PaginationOrder = "BACKWARD"
)

// RawConnectionArgs is the client-supplied argument set of the Relay
// connection convention. Nil means the argument was absent.
type RawConnectionArgs struct {
	After  *string
	First  *int
	Before *string
	Last   *int
}

// ConnectionArgs is the resolved, canonical form of RawConnectionArgs.
// A non-empty Cursor implies a non-unspecified Order.
type ConnectionArgs struct {
	// Cursor is the opaque start token, empty when paginating from the edge
	// of the dataset.
	Cursor string
	// Order is the resolved pagination direction.
	Order PaginationOrder
	// PageSize is the requested number of rows, DefaultPageSize when the
	// client did not ask for a specific size.
	PageSize int
}

// ResolveConnectionArgs validates the raw connection arguments and resolves
// the pagination direction, cursor and page size. Forward arguments (after,
// first) and backward arguments (before, last) are mutually exclusive.
//
// The function is pure and performs no I/O.
func ResolveConnectionArgs(raw RawConnectionArgs) (ConnectionArgs, error) {
	var (
		order    PaginationOrder
		cursor   string
		pageSize = DefaultPageSize
	)

	if raw.After != nil {
		order = OrderForward
		cursor = *raw.After
	}
	if raw.First != nil {
		if *raw.First < 0 {
			return ConnectionArgs{}, fmt.Errorf("%w: 'first' must be a non-negative integer", ErrInvalidArgument)
		}

		order = OrderForward
		pageSize = *raw.First
	}

	if raw.Before != nil {
		if order == OrderForward {
			return ConnectionArgs{}, errSingleDirection()
		}

		order = OrderBackward
		cursor = *raw.Before
	}
	if raw.Last != nil {
		if *raw.Last < 0 {
			return ConnectionArgs{}, fmt.Errorf("%w: 'last' must be a non-negative integer", ErrInvalidArgument)
		}
		if order == OrderForward {
			return ConnectionArgs{}, errSingleDirection()
		}

		order = OrderBackward
		pageSize = *raw.Last
	}

	return ConnectionArgs{
		Cursor:   cursor,
		Order:    order,
		PageSize: pageSize,
	}, nil
}

func errSingleDirection() error {
	return fmt.Errorf(
		"%w: can only paginate in a single direction, set only one of (after, first) and (before, last)",
		ErrInvalidArgument,
	)
}
