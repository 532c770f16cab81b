package model

import "rathh/shared/model"

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID              = "id"
	FieldName            = "name"
	FieldLocation        = "location"
	FieldPrice           = "price"
	FieldOffer           = "offer"
	FieldPopularityScore = "popularity_score"
	FieldBookingCount    = "booking_count"
	FieldMaxGuests       = "max_guests"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldDurationDays    = "duration_days"
	FieldDescription     = "description"
	FieldImageURL        = "image_url"
	FieldCategory        = "category"
)

// Tour is a catalog entry. Start and end dates are date stamps
// (YYYY-MM-DD) so lexicographic ordering matches chronological ordering.
type Tour struct {
	ID              string  `db:"id"               json:"id"`
	Name            string  `db:"name"             json:"name"`
	Location        string  `db:"location"         json:"location"`
	Price           float64 `db:"price"            json:"price"`
	Offer           *string `db:"offer"            json:"offer"`
	PopularityScore float64 `db:"popularity_score" json:"popularity_score"`
	BookingCount    int     `db:"booking_count"    json:"booking_count"`
	MaxGuests       int     `db:"max_guests"       json:"max_guests"`
	StartDate       string  `db:"start_date"       json:"start_date"`
	EndDate         string  `db:"end_date"         json:"end_date"`
	DurationDays    int     `db:"duration_days"    json:"duration_days"`
	Description     string  `db:"description"      json:"description"`
	ImageURL        string  `db:"image_url"        json:"image_url"`
	Category        *string `db:"category"         json:"category"`
	model.Metadata
}
