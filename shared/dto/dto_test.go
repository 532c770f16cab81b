package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "eq with table",
			filter:        Filter{Field: "destination", Value: "Bali", Operator: FilterOperatorEq, Table: "tours"},
			expectedWhere: "tours.destination = :destination",
			expectedArgs:  map[string]any{"destination": "Bali"},
		},
		{
			name:          "like",
			filter:        Filter{Field: "title", Value: "escape", Operator: FilterOperatorLike},
			expectedWhere: "LOWER(title) LIKE LOWER(:title) ",
			expectedArgs:  map[string]any{"title": "%escape%"},
		},
		{
			name:          "in with slice",
			filter:        Filter{Field: "category", Value: []string{"adventure", "beach"}, Operator: FilterOperatorIn},
			expectedWhere: "category IN (:category_0, :category_1) ",
			expectedArgs:  map[string]any{"category_0": "adventure", "category_1": "beach"},
		},
		{
			name:          "greater eq with arg name",
			filter:        Filter{ArgName: "price_min", Field: "price", Value: 500, Operator: FilterOperatorGreaterEq},
			expectedWhere: "price >= :price_min",
			expectedArgs:  map[string]any{"price_min": 500},
		},
		{
			name:          "less eq",
			filter:        Filter{ArgName: "price_max", Field: "price", Value: 2000, Operator: FilterOperatorLessEq},
			expectedWhere: "price <= :price_max",
			expectedArgs:  map[string]any{"price_max": 2000},
		},
		{
			name:          "is null",
			filter:        Filter{Field: "deleted_at", Operator: FilterIsNull},
			expectedWhere: "deleted_at IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name:          "plain query",
			filter:        Filter{Value: "duration_days BETWEEN 4 AND 7", Operator: FilterPlainQuery},
			expectedWhere: "(duration_days BETWEEN 4 AND 7)",
			expectedArgs:  map[string]any{},
		},
		{
			name:          "unknown operator",
			filter:        Filter{Field: "price", Value: 10, Operator: "between"},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			where, args := test.filter.GetWhereClause()

			assert.Equal(t, test.expectedWhere, where)
			assert.Equal(t, test.expectedArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("defaults to AND", func(t *testing.T) {
		group := FilterGroup{
			Filters: []any{
				Filter{Field: "destination", Value: "Bali", Operator: FilterOperatorEq},
				Filter{ArgName: "price_max", Field: "price", Value: 2000, Operator: FilterOperatorLessEq},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(destination = :destination AND price <= :price_max)", where)
		assert.Equal(t, map[string]any{"destination": "Bali", "price_max": 2000}, args)
	})

	t.Run("nested group with OR", func(t *testing.T) {
		group := FilterGroup{
			Operator: FilterGroupOperatorAnd,
			Filters: []any{
				Filter{Field: "destination", Value: "Bali", Operator: FilterOperatorEq},
				FilterGroup{
					Operator: FilterGroupOperatorOr,
					Filters: []any{
						Filter{ArgName: "dur_short", Field: "duration_days", Value: 3, Operator: FilterOperatorLessEq},
						Filter{ArgName: "dur_long", Field: "duration_days", Value: 15, Operator: FilterOperatorGreaterEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(destination = :destination AND (duration_days <= :dur_short OR duration_days >= :dur_long))", where)
		assert.Len(t, args, 3)
	})
}

func TestQueryParamsFromRequest(t *testing.T) {
	t.Run("populates from query string", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/bookings?page=3&limit=25&sort_by=price&sort_dir=asc", nil)

		var params QueryParams
		params.FromRequest(r, false)

		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 25, params.Limit)
		assert.Equal(t, "price", params.SortBy)
		assert.Equal(t, SortDirAsc, params.SortDir)
	})

	t.Run("applies defaults when requested", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/bookings", nil)

		var params QueryParams
		params.FromRequest(r, true)

		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 10, params.Limit)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/bookings?page=-1&limit=abc&sort_dir=sideways", nil)

		var params QueryParams
		params.FromRequest(r, false)

		assert.Zero(t, params.Page)
		assert.Zero(t, params.Limit)
		assert.Empty(t, params.SortDir)
	})
}
