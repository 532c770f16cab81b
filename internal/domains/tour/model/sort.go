package model

import (
	"slices"
	"sort"
)

// Sort keys for re-ordering a result set. Sorting never triggers a search.
const (
	SortPopularity = "popularity" // descending
	SortPrice      = "price"      // ascending
	SortDuration   = "duration"   // ascending
	SortStartDate  = "start_date" // ascending, lexicographic on date stamps
	SortEndDate    = "end_date"   // ascending, lexicographic on date stamps
)

// Sort returns a copy of tours ordered by the given key. The sort is stable,
// so equal keys keep their incoming relative order, and the input slice is
// never mutated. Unknown keys fall back to popularity.
func Sort(tours []Tour, key string) []Tour {
	sorted := slices.Clone(tours)

	switch key {
	case SortPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortDuration:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DurationDays < sorted[j].DurationDays
		})
	case SortStartDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StartDate < sorted[j].StartDate
		})
	case SortEndDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EndDate < sorted[j].EndDate
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PopularityScore > sorted[j].PopularityScore
		})
	}

	return sorted
}
