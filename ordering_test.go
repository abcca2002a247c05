package relaypager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Direction_forOrder(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		order     PaginationOrder
		want      Direction
	}{
		{"forward keeps asc", DirectionASC, OrderForward, DirectionASC},
		{"forward keeps desc", DirectionDESC, OrderForward, DirectionDESC},
		{"unspecified keeps asc", DirectionASC, OrderUnspecified, DirectionASC},
		{"backward flips asc", DirectionASC, OrderBackward, DirectionDESC},
		{"backward flips desc", DirectionDESC, OrderBackward, DirectionASC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.direction.forOrder(tt.order))
		})
	}
}

func Test_planOrdering(t *testing.T) {
	explicit := Orderings{
		{Column: "created_at", Direction: DirectionDESC},
		{Column: "name", Direction: DirectionASC},
	}

	tests := []struct {
		name     string
		explicit Orderings
		order    PaginationOrder
		want     Orderings
	}{
		{
			name:  "no explicit columns, forward",
			order: OrderForward,
			want:  Orderings{{Column: "id", Direction: DirectionASC}},
		},
		{
			name:  "no explicit columns, backward",
			order: OrderBackward,
			want:  Orderings{{Column: "id", Direction: DirectionDESC}},
		},
		{
			name:     "forward keeps explicit directions and appends pk asc",
			explicit: explicit,
			order:    OrderForward,
			want: Orderings{
				{Column: "created_at", Direction: DirectionDESC},
				{Column: "name", Direction: DirectionASC},
				{Column: "id", Direction: DirectionASC},
			},
		},
		{
			name:     "backward flips explicit directions and appends pk desc",
			explicit: explicit,
			order:    OrderBackward,
			want: Orderings{
				{Column: "created_at", Direction: DirectionASC},
				{Column: "name", Direction: DirectionDESC},
				{Column: "id", Direction: DirectionDESC},
			},
		},
		{
			name:     "unspecified behaves as forward",
			explicit: explicit,
			order:    OrderUnspecified,
			want: Orderings{
				{Column: "created_at", Direction: DirectionDESC},
				{Column: "name", Direction: DirectionASC},
				{Column: "id", Direction: DirectionASC},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planOrdering(tt.explicit, tt.order, "id")
			require.Equal(t, tt.want, got)

			// The tie-breaker term is always last.
			assert.Equal(t, "id", got[len(got)-1].Column)
		})
	}
}

func Test_Orderings_ToSQL(t *testing.T) {
	orderings := Orderings{
		{Column: "a", Direction: DirectionASC},
		{Column: "b", Direction: DirectionDESC},
	}

	assert.Equal(t, []string{"a ASC", "b DESC"}, orderings.ToSQLSlice())
	assert.Equal(t, "a ASC, b DESC", orderings.ToSQL())
}

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name      string
		orderings Orderings
		wantErr   bool
	}{
		{"empty list is valid", nil, false},
		{"plain columns", Orderings{{Column: "created_at", Direction: DirectionASC}}, false},
		{"qualified column", Orderings{{Column: "users.id", Direction: DirectionDESC}}, false},
		{"bad direction", Orderings{{Column: "id", Direction: "SIDEWAYS"}}, true},
		{"injection attempt", Orderings{{Column: "id; DROP TABLE users", Direction: DirectionASC}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.orderings.validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ParseSort(t *testing.T) {
	mapping := ColumnMapping{
		"name":    "users.name",
		"created": "users.created_at",
	}

	tests := []struct {
		name    string
		exprs   []string
		mapping ColumnMapping
		want    Orderings
		wantErr string
	}{
		{
			name:    "aliases resolve through the mapping",
			exprs:   []string{"name asc", "created desc"},
			mapping: mapping,
			want: Orderings{
				{Column: "users.name", Direction: DirectionASC},
				{Column: "users.created_at", Direction: DirectionDESC},
			},
		},
		{
			name:  "nil mapping uses column names verbatim",
			exprs: []string{"name ASC"},
			want:  Orderings{{Column: "name", Direction: DirectionASC}},
		},
		{
			name:    "unknown alias suggests the closest one",
			exprs:   []string{"nmae asc"},
			mapping: mapping,
			wantErr: "closest: 'name'",
		},
		{
			name:    "missing direction",
			exprs:   []string{"name"},
			mapping: mapping,
			wantErr: "invalid ordering string format",
		},
		{
			name:    "bad direction",
			exprs:   []string{"name sideways"},
			mapping: mapping,
			wantErr: "invalid ordering direction",
		},
		{
			name:    "forbidden symbols without a mapping",
			exprs:   []string{"name;drop asc"},
			wantErr: "forbidden symbols",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.exprs, tt.mapping)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
