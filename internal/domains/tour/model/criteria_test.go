package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testFloor   = 0
	testCeiling = 5000
)

func TestBucketForDays(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		expected string
	}{
		{name: "one day", days: 1, expected: DurationShort},
		{name: "three days", days: 3, expected: DurationShort},
		{name: "four days", days: 4, expected: DurationMedium},
		{name: "seven days", days: 7, expected: DurationMedium},
		{name: "eight days", days: 8, expected: DurationLong},
		{name: "fourteen days", days: 14, expected: DurationLong},
		{name: "fifteen days", days: 15, expected: DurationExtended},
		{name: "month long", days: 30, expected: DurationExtended},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, BucketForDays(test.days))
		})
	}
}

func TestSetDateRangeDerivesDuration(t *testing.T) {
	t.Run("five day span adds medium bucket", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetDateRange("2026-03-01", "2026-03-05")

		assert.Contains(t, criteria.Durations, DurationMedium)
	})

	t.Run("derivation is additive only", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.ToggleDuration(DurationExtended)
		criteria.SetDateRange("2026-03-01", "2026-03-02")

		assert.ElementsMatch(t, []string{DurationExtended, DurationShort}, criteria.Durations)
	})

	t.Run("does not duplicate an existing bucket", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.ToggleDuration(DurationShort)
		criteria.SetDateRange("2026-03-01", "2026-03-03")

		assert.Equal(t, []string{DurationShort}, criteria.Durations)
	})

	t.Run("incomplete range derives nothing", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetDateRange("2026-03-01", "")

		assert.Empty(t, criteria.Durations)
		assert.Equal(t, "2026-03-01", criteria.StartDate)
	})

	t.Run("inverted range derives nothing", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetDateRange("2026-03-10", "2026-03-01")

		assert.Empty(t, criteria.Durations)
	})
}

func TestPriceClamping(t *testing.T) {
	t.Run("negative min clamps to floor", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetPriceMin(-50, testFloor)

		assert.Equal(t, 0, criteria.PriceMin)
	})

	t.Run("oversized max clamps to ceiling", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetPriceMax(9999, testCeiling)

		assert.Equal(t, 5000, criteria.PriceMax)
	})

	t.Run("min above current max clamps to max", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetPriceMax(2000, testCeiling)
		criteria.SetPriceMin(3000, testFloor)

		assert.Equal(t, 2000, criteria.PriceMin)
	})

	t.Run("max below current min clamps to min", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetPriceMin(1500, testFloor)
		criteria.SetPriceMax(100, testCeiling)

		assert.Equal(t, 1500, criteria.PriceMax)
	})

	t.Run("clamp widens unset bounds to full span", func(t *testing.T) {
		var criteria FilterCriteria
		criteria.Clamp(testFloor, testCeiling)

		assert.Equal(t, testFloor, criteria.PriceMin)
		assert.Equal(t, testCeiling, criteria.PriceMax)
	})

	t.Run("clamp forces out-of-range bounds into span", func(t *testing.T) {
		criteria := FilterCriteria{PriceMin: -10, PriceMax: 99999}
		criteria.Clamp(testFloor, testCeiling)

		assert.Equal(t, testFloor, criteria.PriceMin)
		assert.Equal(t, testCeiling, criteria.PriceMax)
	})
}

func TestActiveFilterCount(t *testing.T) {
	t.Run("default criteria count zero", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)

		assert.Zero(t, criteria.ActiveFilterCount(testFloor, testCeiling))
	})

	t.Run("one category and a start date count two", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.ToggleCategory("culture")
		criteria.StartDate = "2026-03-01"

		assert.Equal(t, 2, criteria.ActiveFilterCount(testFloor, testCeiling))
	})

	t.Run("narrowed price range counts one", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.SetPriceMax(2500, testCeiling)

		assert.Equal(t, 1, criteria.ActiveFilterCount(testFloor, testCeiling))
	})

	t.Run("every axis counted", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.ToggleCategory("culture")
		criteria.ToggleCategory("festival")
		criteria.ToggleDuration(DurationShort)
		criteria.ToggleDestination("Hyderabad, Telangana")
		criteria.SetPriceMin(500, testFloor)
		criteria.SetDateRange("2026-03-01", "2026-03-05")

		// 2 categories + 2 durations (medium derived) + 1 destination +
		// price + start + end
		assert.Equal(t, 8, criteria.ActiveFilterCount(testFloor, testCeiling))
	})
}

func TestToggleAndReset(t *testing.T) {
	criteria := NewFilterCriteria(testFloor, testCeiling)

	criteria.ToggleCategory("culture")
	assert.Equal(t, []string{"culture"}, criteria.Categories)

	criteria.ToggleCategory("culture")
	assert.Empty(t, criteria.Categories)

	criteria.SelectAllDurations()
	assert.Len(t, criteria.Durations, 4)

	criteria.SelectAllDestinations([]string{"Warangal, Telangana", "Krishna District, AP"})
	criteria.SetPriceMax(3000, testCeiling)
	criteria.SetDateRange("2026-04-01", "2026-04-20")

	criteria.Reset(testFloor, testCeiling)

	assert.Equal(t, NewFilterCriteria(testFloor, testCeiling), criteria)
	assert.Zero(t, criteria.ActiveFilterCount(testFloor, testCeiling))
}

func TestCriteriaMatches(t *testing.T) {
	category := "culture"
	tour := Tour{
		ID:           "tour_001",
		Name:         "Deccan Heritage Walk",
		Location:     "Hyderabad, Telangana",
		Price:        1500,
		DurationDays: 5,
		StartDate:    "2026-03-10",
		EndDate:      "2026-03-14",
		Category:     &category,
	}

	tests := []struct {
		name     string
		mutate   func(c *FilterCriteria)
		expected bool
	}{
		{name: "empty criteria match", mutate: func(*FilterCriteria) {}, expected: true},
		{
			name:     "matching category",
			mutate:   func(c *FilterCriteria) { c.ToggleCategory("culture") },
			expected: true,
		},
		{
			name:     "non matching category",
			mutate:   func(c *FilterCriteria) { c.ToggleCategory("wildlife") },
			expected: false,
		},
		{
			name:     "matching duration bucket",
			mutate:   func(c *FilterCriteria) { c.ToggleDuration(DurationMedium) },
			expected: true,
		},
		{
			name:     "non matching duration bucket",
			mutate:   func(c *FilterCriteria) { c.ToggleDuration(DurationExtended) },
			expected: false,
		},
		{
			name:     "price below min",
			mutate:   func(c *FilterCriteria) { c.SetPriceMin(2000, testFloor) },
			expected: false,
		},
		{
			name:     "tour starts before requested start",
			mutate:   func(c *FilterCriteria) { c.StartDate = "2026-03-15" },
			expected: false,
		},
		{
			name:     "tour inside requested window",
			mutate:   func(c *FilterCriteria) { c.StartDate = "2026-03-01"; c.EndDate = "2026-03-31" },
			expected: true,
		},
		{
			name:     "non matching destination",
			mutate:   func(c *FilterCriteria) { c.ToggleDestination("Kochi, Kerala") },
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			criteria := NewFilterCriteria(testFloor, testCeiling)
			test.mutate(&criteria)

			assert.Equal(t, test.expected, criteria.Matches(tour))
		})
	}

	t.Run("uncategorised tour excluded by category filter", func(t *testing.T) {
		criteria := NewFilterCriteria(testFloor, testCeiling)
		criteria.ToggleCategory("culture")

		plain := tour
		plain.Category = nil

		assert.False(t, criteria.Matches(plain))
	})
}
