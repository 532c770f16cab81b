package shared

import (
	"rathh/shared/dto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	boolTrue := true
	boolFalse := false

	tests := []struct {
		name     string
		value    string
		expected *bool
	}{
		{name: "empty string", value: "", expected: nil},
		{name: "true", value: "true", expected: &boolTrue},
		{name: "false", value: "false", expected: &boolFalse},
		{name: "numeric true", value: "1", expected: &boolTrue},
		{name: "invalid", value: "not-a-bool", expected: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ConvertStringToBool(test.value)
			if test.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, *test.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "single page", total: 5, limit: 10, expected: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, CalculateTotalPage(test.total, test.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "tour:search:client-1", BuildCacheKey("tour", "search", "client-1"))
	assert.Equal(t, "single", BuildCacheKey("single"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "destination", Value: "Bali", Operator: dto.FilterOperatorEq},
		},
	}

	first := BuildCacheKeyWithQuery("tours", params, filter)
	second := BuildCacheKeyWithQuery("tours", params, filter)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "tours:"))

	params.Page = 2
	third := BuildCacheKeyWithQuery("tours", params, filter)
	assert.NotEqual(t, first, third)
}

func TestRandomSuffix(t *testing.T) {
	first := RandomSuffix(6)
	second := RandomSuffix(6)

	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}

func TestTransformFields(t *testing.T) {
	type tourUpdate struct {
		Title       string    `db:"title"`
		Destination string    `db:"destination"`
		Price       float64   `db:"price"`
		StartDate   time.Time `db:"start_date"`
		Untagged    string
	}

	update := tourUpdate{
		Title: "Bali Escape",
		Price: 1200,
	}

	fields := TransformFields(update, "admin")

	assert.Equal(t, "Bali Escape", fields["title"])
	assert.Equal(t, float64(1200), fields["price"])
	assert.Equal(t, "admin", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
	assert.NotContains(t, fields, "destination")
	assert.NotContains(t, fields, "start_date")
}

func TestFilterByID(t *testing.T) {
	filter := FilterByID("tour-123", "id", "tours")

	assert.Len(t, filter.Filters, 1)

	inner, ok := filter.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", inner.Field)
	assert.Equal(t, "tour-123", inner.Value)
	assert.Equal(t, dto.FilterOperatorEq, inner.Operator)
	assert.Equal(t, "tours", inner.Table)
}
