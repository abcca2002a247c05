package relaypager

import (
	"fmt"

	"gorm.io/gorm/clause"
)

// buildCursorCondition produces the WHERE fragment selecting rows strictly
// after (forward) or before (backward) the cursor row.
//
// explicit must be the planned orderings WITHOUT the trailing primary-key
// term, i.e. with directions already resolved for the pagination order.
//
// With no explicit columns the condition is a single primary-key comparison.
// With explicit columns, each column contributes
//
//	col OP (SELECT col FROM table WHERE pk = ?)
//	OR (col = (SELECT col FROM table WHERE pk = ?) AND pk OP' ?)
//
// where OP follows the resolved column direction and OP' follows the
// pagination order. The per-column conditions are ANDed together.
//
// NOTE: the tie-break is applied independently per column instead of as one
// lexicographically chained comparison. With two or more explicit columns
// this can admit rows a strict keyset comparison would exclude. Downstream
// consumers rely on the current page boundaries, so keep this shape.
//
// When the cursor row no longer exists, the scalar subqueries yield NULL and
// every comparison against them is unknown; the affected rows silently drop
// out instead of raising an error.
func buildCursorCondition(
	table string,
	pkColumn string,
	explicit Orderings,
	rowID any,
	order PaginationOrder,
) clause.Expression {
	pkOperator := OperatorGT
	if order == OrderBackward {
		pkOperator = OperatorLT
	}

	pkComparison := clause.Expr{
		SQL:  fmt.Sprintf("%s %s ?", pkColumn, pkOperator),
		Vars: []any{rowID},
	}

	if len(explicit) == 0 {
		return pkComparison
	}

	conditions := make([]clause.Expression, 0, len(explicit))
	for _, ordering := range explicit {
		subquery := fmt.Sprintf("(SELECT %s FROM %s WHERE %s = ?)", ordering.Column, table, pkColumn)

		advance := clause.Expr{
			SQL:  fmt.Sprintf("%s %s %s", ordering.Column, ordering.Direction.ForOperator(), subquery),
			Vars: []any{rowID},
		}
		tie := clause.And(
			clause.Expr{
				SQL:  fmt.Sprintf("%s %s %s", ordering.Column, operatorEq, subquery),
				Vars: []any{rowID},
			},
			pkComparison,
		)

		conditions = append(conditions, clause.Or(advance, tie))
	}

	if len(conditions) == 1 {
		return conditions[0]
	}

	return clause.And(conditions...)
}
