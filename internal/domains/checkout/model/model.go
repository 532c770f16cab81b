package model

import (
	"time"

	"rathh/config"
)

// Simulation-mode payment placeholders. The card form is pre-filled with
// these values and validation is bypassed entirely.
const (
	SimulatedCardNumber = "4242 4242 4242 4242"
	SimulatedNameOnCard = "Dev User"
	SimulatedExpiry     = "12/28"
	SimulatedCVC        = "123"
)

// BookingSession is the read-only booking context handed off from trip
// selection. It is written once by the upstream flow and deleted when the
// booking is confirmed.
type BookingSession struct {
	TripID         string  `json:"trip_id"          validate:"required,max=100"`
	StartDate      string  `json:"start_date"       validate:"omitempty,datetime=2006-01-02"`
	EndDate        string  `json:"end_date"         validate:"omitempty,datetime=2006-01-02"`
	PricePerPerson float64 `json:"price_per_person" validate:"min=0"`
	GroupType      string  `json:"group_type"       validate:"omitempty,max=50"`
}

// TravelerDetails is the traveler form. First name, email and phone are
// required; everything else is optional but bounded.
type TravelerDetails struct {
	FirstName  string `json:"first_name"  validate:"required,min=1,max=100"`
	LastName   string `json:"last_name"   validate:"omitempty,max=100"`
	Email      string `json:"email"       validate:"required,email,max=255"`
	Phone      string `json:"phone"       validate:"required,min=1,max=30"`
	Address1   string `json:"address1"    validate:"omitempty,max=200"`
	Address2   string `json:"address2"    validate:"omitempty,max=200"`
	City       string `json:"city"        validate:"omitempty,max=100"`
	State      string `json:"state"       validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=20"`
	Country    string `json:"country"     validate:"omitempty,max=100"`
}

// PaymentDetails is the payment form. In live payment mode all four fields
// must be non-empty; in simulation mode the form is always valid.
type PaymentDetails struct {
	CardNumber string `json:"card_number"  validate:"omitempty,max=30"`
	NameOnCard string `json:"name_on_card" validate:"omitempty,max=100"`
	Expiry     string `json:"expiry"       validate:"omitempty,max=10"`
	CVC        string `json:"cvc"          validate:"omitempty,max=10"`
}

// Valid reports whether the payment form passes the confirmation gate for
// the given payment mode.
func (p PaymentDetails) Valid(paymentMode string) bool {
	if paymentMode == config.PaymentModeSimulation {
		return true
	}

	return p.CardNumber != "" && p.NameOnCard != "" && p.Expiry != "" && p.CVC != ""
}

// CheckoutDraft is the auto-saved in-progress form state. It is replaced
// whole on every save and deleted when the booking is confirmed.
type CheckoutDraft struct {
	Traveler      TravelerDetails `json:"traveler"`
	Payment       PaymentDetails  `json:"payment"`
	TravelerCount int             `json:"traveler_count" validate:"min=1"`
}

// NewCheckoutDraft returns the lazily created default draft: one traveler,
// and in simulation payment mode the card form pre-filled.
func NewCheckoutDraft(paymentMode string) CheckoutDraft {
	draft := CheckoutDraft{
		TravelerCount: 1,
	}

	if paymentMode == config.PaymentModeSimulation {
		draft.Payment = PaymentDetails{
			CardNumber: SimulatedCardNumber,
			NameOnCard: SimulatedNameOnCard,
			Expiry:     SimulatedExpiry,
			CVC:        SimulatedCVC,
		}
	}

	return draft
}

// IncrementTravelers adds one traveler. Capacity is the caller's context, so
// no upper bound is enforced here.
func (d *CheckoutDraft) IncrementTravelers() {
	d.TravelerCount++
}

// DecrementTravelers removes one traveler. Below one it is a no-op, not an
// error.
func (d *CheckoutDraft) DecrementTravelers() {
	if d.TravelerCount > 1 {
		d.TravelerCount--
	}
}

// Quote is the pricing breakdown for a session and traveler count.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeQuote derives the pricing breakdown:
// subtotal = price per person x travelers, tax = subtotal x rate.
func ComputeQuote(pricePerPerson float64, travelerCount int, taxRate float64) Quote {
	subtotal := pricePerPerson * float64(travelerCount)
	tax := subtotal * taxRate

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// FinalBooking is the write-once record created at confirmation time.
type FinalBooking struct {
	BookingID      string          `json:"booking_id"`
	TripID         string          `json:"trip_id"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	GroupType      string          `json:"group_type"`
	PricePerPerson float64         `json:"price_per_person"`
	TravelerCount  int             `json:"traveler_count"`
	Subtotal       float64         `json:"subtotal"`
	Tax            float64         `json:"tax"`
	Total          float64         `json:"total"`
	Traveler       TravelerDetails `json:"traveler"`
	ConfirmedAt    time.Time       `json:"confirmed_at"`
}
