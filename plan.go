package relaypager

import (
	"fmt"

	"gorm.io/gorm"
)

// Predicate is an opaque boolean filter over the table, typically produced by
// an external filter-expression parser. The engine only knows how to AND it
// into a query; predicates apply to both the main and the count query.
type Predicate interface {
	Apply(*gorm.DB) *gorm.DB
}

// Expr is a raw SQL predicate with placeholder arguments.
//
// Example:
//
//	Expr{SQL: "domain_name = ?", Vars: []any{"default"}}
type Expr struct {
	SQL  string
	Vars []any
}

// Apply implements Predicate.
func (e Expr) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(e.SQL, e.Vars...)
}

var _ Predicate = Expr{}

// TableMeta names the table a query plan is built over.
type TableMeta interface {
	// Table is the table name used in FROM clauses and cursor subqueries.
	Table() string
	// PrimaryKeyColumn is the single ascending unique column used as the
	// pagination tie-breaker.
	PrimaryKeyColumn() string
	// TypeName is the logical row type name encoded into cursors.
	TypeName() string
}

// QueryPlan is the composed pair of queries for one request: the main query
// with ordering, filters, cursor condition and limit, and the count query
// with filters only. A plan belongs to a single request and is never shared.
type QueryPlan struct {
	Main  *gorm.DB
	Count *gorm.DB

	Cursor   string
	Order    PaginationOrder
	PageSize int

	offsetMode bool
}

// BuildConnectionPlan composes the keyset-pagination query plan: base query
// over meta's table, the ORDER BY plan terminated by the primary key, the
// filter predicates (in both queries), the cursor condition when a cursor is
// present (main query only) and LIMIT PageSize+1 (main query only) so that
// one over-fetched row signals "more pages exist" without a second round
// trip.
func BuildConnectionPlan(
	db *gorm.DB,
	meta TableMeta,
	predicates []Predicate,
	explicit Orderings,
	args ConnectionArgs,
) (*QueryPlan, error) {
	if err := explicit.validate(); err != nil {
		return nil, fmt.Errorf("cannot build query plan: %w", err)
	}

	planned := planOrdering(explicit, args.Order, meta.PrimaryKeyColumn())

	main := planned.Apply(newQuery(db, meta))
	count := newQuery(db, meta)
	for _, predicate := range predicates {
		main = predicate.Apply(main)
		count = predicate.Apply(count)
	}

	if args.Cursor != "" {
		cursor, err := DecodeCursor(args.Cursor)
		if err != nil {
			return nil, err
		}

		main = main.Clauses(buildCursorCondition(
			meta.Table(),
			meta.PrimaryKeyColumn(),
			planned[:len(planned)-1],
			cursor.RowID,
			args.Order,
		))
	}

	main = main.Limit(args.PageSize + 1)

	return &QueryPlan{
		Main:     main,
		Count:    count,
		Cursor:   args.Cursor,
		Order:    args.Order,
		PageSize: args.PageSize,
	}, nil
}

// BuildOffsetPlan composes the plain LIMIT/OFFSET query plan for callers that
// pass an offset instead of a cursor: explicit orderings verbatim plus the
// primary key ascending, filters in both queries, no cursor condition and no
// over-fetch.
func BuildOffsetPlan(
	db *gorm.DB,
	meta TableMeta,
	predicates []Predicate,
	explicit Orderings,
	pageSize int,
	offset int,
) (*QueryPlan, error) {
	if err := explicit.validate(); err != nil {
		return nil, fmt.Errorf("cannot build query plan: %w", err)
	}

	planned := planOrdering(explicit, OrderUnspecified, meta.PrimaryKeyColumn())

	main := planned.Apply(newQuery(db, meta))
	count := newQuery(db, meta)
	for _, predicate := range predicates {
		main = predicate.Apply(main)
		count = predicate.Apply(count)
	}

	main = main.Limit(pageSize).Offset(offset)

	return &QueryPlan{
		Main:       main,
		Count:      count,
		PageSize:   pageSize,
		offsetMode: true,
	}, nil
}

// newQuery starts an independent query chain so that main and count clauses
// never leak into each other while both inherit the caller's base conditions.
func newQuery(db *gorm.DB, meta TableMeta) *gorm.DB {
	return db.Session(&gorm.Session{}).Table(meta.Table())
}
