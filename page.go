package relaypager

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// Source describes one paginated entity: where its rows live and how to read
// a fetched row's primary key. Supply one Source per entity instead of
// deriving per-entity connection types.
type Source[T any] interface {
	TableMeta
	// PrimaryKeyOf returns the primary key of a fetched row, used to encode
	// edge cursors.
	PrimaryKeyOf(T) any
}

// Edge is a (node, cursor) pair per the Relay connection convention.
type Edge[T any] struct {
	Node   T
	Cursor string
}

// PageInfo describes the boundaries of a page. Cursors are nil for empty
// pages and in offset mode.
type PageInfo struct {
	StartCursor     *string
	EndCursor       *string
	HasPreviousPage bool
	HasNextPage     bool
}

// ConnectionResult is a fully assembled page.
type ConnectionResult[T any] struct {
	Edges      []Edge[T]
	PageInfo   PageInfo
	TotalCount int64
}

// ExecutePlan runs both queries of the plan and assembles the page. The main
// and count query carry no ordering dependency; when they run outside a
// shared read transaction, TotalCount may be stale relative to Edges under
// concurrent writes.
func ExecutePlan[T any](ctx context.Context, plan *QueryPlan, source Source[T]) (*ConnectionResult[T], error) {
	var rows []T
	if err := plan.Main.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("execute main query: %w", err)
	}

	var total int64
	if err := plan.Count.WithContext(ctx).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("execute count query: %w", err)
	}

	return assemblePage(plan, source, rows, total)
}

// assemblePage trims the over-fetched row, restores the user-visible order
// for backward pages and builds edges and page info.
//
// NOTE: hasNextPage is only computed for forward pagination and
// hasPreviousPage only for backward pagination; the respective other flag
// stays false even when a cursor was supplied. Existing consumers depend on
// this.
func assemblePage[T any](plan *QueryPlan, source Source[T], rows []T, total int64) (*ConnectionResult[T], error) {
	var hasMore bool
	if !plan.offsetMode {
		hasMore = len(rows) > plan.PageSize
		if hasMore {
			rows = rows[:plan.PageSize]
		}
		if plan.Order == OrderBackward {
			rows = lo.Reverse(rows)
		}
	}

	edges := make([]Edge[T], 0, len(rows))
	for _, row := range rows {
		edge := Edge[T]{Node: row}
		if !plan.offsetMode {
			cursor, err := EncodeCursor(source.TypeName(), source.PrimaryKeyOf(row))
			if err != nil {
				return nil, err
			}
			edge.Cursor = cursor
		}

		edges = append(edges, edge)
	}

	var info PageInfo
	if !plan.offsetMode {
		if len(edges) > 0 {
			info.StartCursor = &edges[0].Cursor
			info.EndCursor = &edges[len(edges)-1].Cursor
		}

		if plan.Order == OrderBackward {
			info.HasPreviousPage = hasMore
		} else {
			info.HasNextPage = hasMore
		}
	}

	return &ConnectionResult[T]{
		Edges:      edges,
		PageInfo:   info,
		TotalCount: total,
	}, nil
}
