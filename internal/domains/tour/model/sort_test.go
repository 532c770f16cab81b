package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortFixture() []Tour {
	return []Tour{
		{ID: "a", Price: 2000, PopularityScore: 4.2, DurationDays: 7, StartDate: "2026-03-10", EndDate: "2026-03-16"},
		{ID: "b", Price: 800, PopularityScore: 4.9, DurationDays: 2, StartDate: "2026-02-01", EndDate: "2026-02-02"},
		{ID: "c", Price: 2000, PopularityScore: 3.1, DurationDays: 15, StartDate: "2026-05-01", EndDate: "2026-05-15"},
		{ID: "d", Price: 1200, PopularityScore: 4.9, DurationDays: 4, StartDate: "2026-01-20", EndDate: "2026-01-23"},
	}
}

func ids(tours []Tour) []string {
	out := make([]string, len(tours))
	for i, tour := range tours {
		out[i] = tour.ID
	}

	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected []string
	}{
		{name: "popularity descending", key: SortPopularity, expected: []string{"b", "d", "a", "c"}},
		{name: "price ascending", key: SortPrice, expected: []string{"b", "d", "a", "c"}},
		{name: "duration ascending", key: SortDuration, expected: []string{"b", "d", "a", "c"}},
		{name: "start date ascending", key: SortStartDate, expected: []string{"d", "b", "a", "c"}},
		{name: "end date ascending", key: SortEndDate, expected: []string{"d", "b", "a", "c"}},
		{name: "unknown key falls back to popularity", key: "rating", expected: []string{"b", "d", "a", "c"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ids(Sort(sortFixture(), test.key)))
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tours := sortFixture()
	Sort(tours, SortPrice)

	assert.Equal(t, ids(sortFixture()), ids(tours))
}

func TestSortIdempotent(t *testing.T) {
	once := Sort(sortFixture(), SortPrice)
	twice := Sort(once, SortPrice)

	assert.Equal(t, ids(once), ids(twice))
}

func TestSortNoResidualInfluence(t *testing.T) {
	direct := Sort(sortFixture(), SortPrice)
	viaPopularity := Sort(Sort(sortFixture(), SortPopularity), SortPrice)

	// b and d tie on popularity and a and c tie on price, so a stable sort
	// must yield the same order either way.
	assert.Equal(t, ids(direct), ids(viaPopularity))
}

func TestSortStableOnEqualKeys(t *testing.T) {
	sorted := Sort(sortFixture(), SortPrice)

	// a precedes c in the input and both cost 2000.
	assert.Equal(t, []string{"a", "c"}, ids(sorted)[2:])
}
