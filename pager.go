package relaypager

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListArgs is the protocol-agnostic argument set recognized by List. It is
// intended for API payloads; inline it into request types:
//
//	type ListUsersRequest struct {
//	    Paging relaypager.ListArgs `json:",inline"`
//	}
type ListArgs struct {
	// Filters are pre-parsed filter predicates, e.g. from an external
	// filter-expression parser. They apply to both the page and the total
	// count.
	Filters []Predicate
	// Order is a list of "column asc|desc" sort expressions.
	Order []string
	// Offset, when set, switches to plain LIMIT/OFFSET pagination: First (or
	// the default) becomes the page size and the cursor arguments are
	// ignored. The response carries no cursors in this mode.
	Offset *int

	After  *string
	First  *int
	Before *string
	Last   *int
}

type ListOption func(*listConfig)

type listConfig struct {
	maxPageSize   *int
	columnMapping ColumnMapping
}

// WithMaxPageSize caps the page size clients may request. Requests above the
// cap fail with ErrPageSizeExceeded.
func WithMaxPageSize(max int) ListOption {
	return func(cfg *listConfig) {
		cfg.maxPageSize = &max
	}
}

// WithColumnMapping resolves external sort aliases in ListArgs.Order to
// internal column names.
func WithColumnMapping(mapping ColumnMapping) ListOption {
	return func(cfg *listConfig) {
		cfg.columnMapping = mapping
	}
}

// List is the one-call pagination flow: resolve the arguments, build the
// query plan, run it and assemble the page. Walking forward pages until
// PageInfo.HasNextPage is false yields every matching row exactly once.
func List[T any](
	ctx context.Context,
	db *gorm.DB,
	source Source[T],
	args ListArgs,
	opts ...ListOption,
) (*ConnectionResult[T], error) {
	var cfg listConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	explicit, err := ParseSort(args.Order, cfg.columnMapping)
	if err != nil {
		return nil, err
	}

	plan, err := buildPlan(db, source, args, explicit, cfg.maxPageSize)
	if err != nil {
		return nil, err
	}

	return ExecutePlan(ctx, plan, source)
}

func buildPlan(
	db *gorm.DB,
	meta TableMeta,
	args ListArgs,
	explicit Orderings,
	maxPageSize *int,
) (*QueryPlan, error) {
	if args.Offset != nil {
		pageSize := DefaultPageSize
		if args.First != nil {
			if *args.First < 0 {
				return nil, fmt.Errorf("%w: 'first' must be a non-negative integer", ErrInvalidArgument)
			}

			pageSize = *args.First
		}
		if err := GuardPageSize(pageSize, maxPageSize); err != nil {
			return nil, err
		}

		return BuildOffsetPlan(db, meta, args.Filters, explicit, pageSize, *args.Offset)
	}

	connArgs, err := ResolveConnectionArgs(RawConnectionArgs{
		After:  args.After,
		First:  args.First,
		Before: args.Before,
		Last:   args.Last,
	})
	if err != nil {
		return nil, err
	}
	if err := GuardPageSize(connArgs.PageSize, maxPageSize); err != nil {
		return nil, err
	}

	return BuildConnectionPlan(db, meta, args.Filters, explicit, connArgs)
}
