package model

import (
	"slices"
	"time"

	"rathh/shared/constant"
)

// Duration buckets grouping tours by trip length in days.
const (
	DurationShort    = "short"    // 1-3 days
	DurationMedium   = "medium"   // 4-7 days
	DurationLong     = "long"     // 8-14 days
	DurationExtended = "extended" // 15+ days
)

// BucketForDays maps a trip length in days onto its duration bucket.
func BucketForDays(days int) string {
	switch {
	case days <= 3:
		return DurationShort
	case days <= 7:
		return DurationMedium
	case days <= 14:
		return DurationLong
	default:
		return DurationExtended
	}
}

// MatchesBucket reports whether a trip length falls inside the bucket.
func MatchesBucket(days int, bucket string) bool {
	return BucketForDays(days) == bucket
}

// FilterCriteria is the composed set of search constraints. All axes start
// empty or at the full price span; each is mutated independently and the
// whole value resets atomically.
type FilterCriteria struct {
	StartDate    string   `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate      string   `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	Durations    []string `json:"durations"    validate:"omitempty,dive,oneof=short medium long extended"`
	Categories   []string `json:"categories"   validate:"omitempty,dive,max=100"`
	Destinations []string `json:"destinations" validate:"omitempty,dive,max=100"`
	PriceMin     int      `json:"price_min"`
	PriceMax     int      `json:"price_max"`
}

// NewFilterCriteria returns empty criteria spanning the full price range.
func NewFilterCriteria(floor, ceiling int) FilterCriteria {
	return FilterCriteria{
		PriceMin: floor,
		PriceMax: ceiling,
	}
}

func toggle(values []string, value string) []string {
	if idx := slices.Index(values, value); idx >= 0 {
		return slices.Delete(values, idx, idx+1)
	}

	return append(values, value)
}

func (c *FilterCriteria) ToggleCategory(category string) {
	c.Categories = toggle(c.Categories, category)
}

func (c *FilterCriteria) SelectAllCategories(categories []string) {
	c.Categories = slices.Clone(categories)
}

func (c *FilterCriteria) ToggleDuration(bucket string) {
	c.Durations = toggle(c.Durations, bucket)
}

func (c *FilterCriteria) SelectAllDurations() {
	c.Durations = []string{DurationShort, DurationMedium, DurationLong, DurationExtended}
}

func (c *FilterCriteria) ToggleDestination(destination string) {
	c.Destinations = toggle(c.Destinations, destination)
}

func (c *FilterCriteria) SelectAllDestinations(destinations []string) {
	c.Destinations = slices.Clone(destinations)
}

// SetDateRange records the selected dates. When both ends are set, the
// matching duration bucket is added to the selected durations. The derived
// addition never removes a bucket selected manually.
func (c *FilterCriteria) SetDateRange(startDate, endDate string) {
	c.StartDate = startDate
	c.EndDate = endDate

	if startDate == "" || endDate == "" {
		return
	}

	start, errStart := time.Parse(constant.DateStampFormat, startDate)
	end, errEnd := time.Parse(constant.DateStampFormat, endDate)

	if errStart != nil || errEnd != nil || end.Before(start) {
		return
	}

	days := int(end.Sub(start).Hours()/24) + 1

	bucket := BucketForDays(days)
	if !slices.Contains(c.Durations, bucket) {
		c.Durations = append(c.Durations, bucket)
	}
}

// SetPriceMin commits a minimum price edit, clamped into [floor, current max].
func (c *FilterCriteria) SetPriceMin(value, floor int) {
	c.PriceMin = min(max(value, floor), c.PriceMax)
}

// SetPriceMax commits a maximum price edit, clamped into [current min, ceiling].
func (c *FilterCriteria) SetPriceMax(value, ceiling int) {
	c.PriceMax = max(min(value, ceiling), c.PriceMin)
}

// Clamp forces both price bounds into [floor, ceiling] keeping min <= max.
// Unset bounds (both zero) widen to the full span.
func (c *FilterCriteria) Clamp(floor, ceiling int) {
	if c.PriceMin == 0 && c.PriceMax == 0 {
		c.PriceMin = floor
		c.PriceMax = ceiling

		return
	}

	c.PriceMin = min(max(c.PriceMin, floor), ceiling)
	c.PriceMax = min(max(c.PriceMax, floor), ceiling)

	if c.PriceMin > c.PriceMax {
		c.PriceMin = c.PriceMax
	}
}

// ActiveFilterCount tallies how many filter axes deviate from the default:
// one per selected category, duration and destination, one when the price
// range is narrower than the full span, one per set date.
func (c *FilterCriteria) ActiveFilterCount(floor, ceiling int) int {
	count := len(c.Categories) + len(c.Durations) + len(c.Destinations)

	if c.PriceMin != floor || c.PriceMax != ceiling {
		count++
	}

	if c.StartDate != "" {
		count++
	}

	if c.EndDate != "" {
		count++
	}

	return count
}

// Reset clears every axis back to its default in one step.
func (c *FilterCriteria) Reset(floor, ceiling int) {
	*c = NewFilterCriteria(floor, ceiling)
}

// Matches applies the criteria to a single tour in memory. An empty axis
// never excludes a tour.
func (c *FilterCriteria) Matches(tour Tour) bool {
	if len(c.Categories) > 0 {
		if tour.Category == nil || !slices.Contains(c.Categories, *tour.Category) {
			return false
		}
	}

	if len(c.Destinations) > 0 && !slices.Contains(c.Destinations, tour.Location) {
		return false
	}

	if len(c.Durations) > 0 {
		matched := false

		for _, bucket := range c.Durations {
			if MatchesBucket(tour.DurationDays, bucket) {
				matched = true

				break
			}
		}

		if !matched {
			return false
		}
	}

	price := int(tour.Price)
	if price < c.PriceMin || price > c.PriceMax {
		return false
	}

	if c.StartDate != "" && tour.StartDate < c.StartDate {
		return false
	}

	if c.EndDate != "" && tour.EndDate > c.EndDate {
		return false
	}

	return true
}
