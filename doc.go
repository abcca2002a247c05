// Package relaypager implements Relay-style connection pagination for GORM.
//
// Overview
//
// relaypager turns the standard connection arguments (after, first, before,
// last) into a deterministic keyset query plan:
//   - forward pagination selects rows strictly after the cursor row, backward
//     pagination selects rows strictly before it, both under a total order
//     terminated by the primary key as a tie-breaker.
//   - "has more" detection uses a single over-fetched row instead of a second
//     round trip.
//   - cursor conditions over non-key ordering columns are expressed with
//     correlated scalar subqueries, so cursors stay opaque "type:id" tokens.
//
// Key concepts
//   - Source: per-entity capability interface naming the table, the primary
//     key column and how to read a row's key.
//   - Predicate: opaque filter fragments supplied by an external parser,
//     ANDed into both the main and the count query.
//   - QueryPlan: the composed main + count queries for one request.
//   - List: the one-call orchestration from raw arguments to a
//     ConnectionResult with edges, page info and total count.
//
// A plain LIMIT/OFFSET mode is available for callers that pass an offset
// instead of a cursor.
package relaypager
