package model

import (
	"time"

	"rathh/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldClientID      = "client_id"
	FieldTripID        = "trip_id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldEmail         = "email"
	FieldConfirmedAt   = "confirmed_at"
	FieldTravelerCount = "traveler_count"
	FieldTotal         = "total"
)

// Booking is the durable record written when a checkout confirms. The slot
// record in the key-value store is the hot copy; this row is the ledger.
type Booking struct {
	ID             string    `db:"id"               json:"id"`
	BookingID      string    `db:"booking_id"       json:"booking_id"`
	ClientID       string    `db:"client_id"        json:"client_id"`
	TripID         string    `db:"trip_id"          json:"trip_id"`
	StartDate      string    `db:"start_date"       json:"start_date"`
	EndDate        string    `db:"end_date"         json:"end_date"`
	GroupType      string    `db:"group_type"       json:"group_type"`
	PricePerPerson float64   `db:"price_per_person" json:"price_per_person"`
	TravelerCount  int       `db:"traveler_count"   json:"traveler_count"`
	Subtotal       float64   `db:"subtotal"         json:"subtotal"`
	Tax            float64   `db:"tax"              json:"tax"`
	Total          float64   `db:"total"            json:"total"`
	FirstName      string    `db:"first_name"       json:"first_name"`
	LastName       string    `db:"last_name"        json:"last_name"`
	Email          string    `db:"email"            json:"email"`
	Phone          string    `db:"phone"            json:"phone"`
	Address1       string    `db:"address1"         json:"address1"`
	Address2       string    `db:"address2"         json:"address2"`
	City           string    `db:"city"             json:"city"`
	State          string    `db:"state"            json:"state"`
	PostalCode     string    `db:"postal_code"      json:"postal_code"`
	Country        string    `db:"country"          json:"country"`
	ConfirmedAt    time.Time `db:"confirmed_at"     json:"confirmed_at"`
	model.Metadata
}
