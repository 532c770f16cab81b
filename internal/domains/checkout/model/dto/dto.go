package dto

import (
	"rathh/internal/domains/checkout/model"
)

// CreateSessionRequest is written by the trip-selection flow before checkout
// is entered.
type CreateSessionRequest struct {
	TripID         string  `json:"trip_id"          validate:"required,max=100"`
	StartDate      string  `json:"start_date"       validate:"omitempty,datetime=2006-01-02"`
	EndDate        string  `json:"end_date"         validate:"omitempty,datetime=2006-01-02"`
	PricePerPerson float64 `json:"price_per_person" validate:"min=0"`
	GroupType      string  `json:"group_type"       validate:"omitempty,max=50"`
}

func (r *CreateSessionRequest) ToModel() model.BookingSession {
	return model.BookingSession{
		TripID:         r.TripID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		PricePerPerson: r.PricePerPerson,
		GroupType:      r.GroupType,
	}
}

type SessionResponse struct {
	TripID         string  `json:"trip_id"`
	StartDate      string  `json:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
	GroupType      string  `json:"group_type"`
}

func (r *SessionResponse) FromModel(session model.BookingSession) {
	r.TripID = session.TripID
	r.StartDate = session.StartDate
	r.EndDate = session.EndDate
	r.PricePerPerson = session.PricePerPerson
	r.GroupType = session.GroupType
}

// DraftTraveler mirrors the traveler form without the required-field rules:
// a draft may hold any partially filled state, only length bounds apply.
type DraftTraveler struct {
	FirstName  string `json:"first_name"  validate:"omitempty,max=100"`
	LastName   string `json:"last_name"   validate:"omitempty,max=100"`
	Email      string `json:"email"       validate:"omitempty,max=255"`
	Phone      string `json:"phone"       validate:"omitempty,max=30"`
	Address1   string `json:"address1"    validate:"omitempty,max=200"`
	Address2   string `json:"address2"    validate:"omitempty,max=200"`
	City       string `json:"city"        validate:"omitempty,max=100"`
	State      string `json:"state"       validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=20"`
	Country    string `json:"country"     validate:"omitempty,max=100"`
}

func (t *DraftTraveler) ToModel() model.TravelerDetails {
	return model.TravelerDetails{
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Phone:      t.Phone,
		Address1:   t.Address1,
		Address2:   t.Address2,
		City:       t.City,
		State:      t.State,
		PostalCode: t.PostalCode,
		Country:    t.Country,
	}
}

type DraftPayment struct {
	CardNumber string `json:"card_number"  validate:"omitempty,max=30"`
	NameOnCard string `json:"name_on_card" validate:"omitempty,max=100"`
	Expiry     string `json:"expiry"       validate:"omitempty,max=10"`
	CVC        string `json:"cvc"          validate:"omitempty,max=10"`
}

func (p *DraftPayment) ToModel() model.PaymentDetails {
	return model.PaymentDetails{
		CardNumber: p.CardNumber,
		NameOnCard: p.NameOnCard,
		Expiry:     p.Expiry,
		CVC:        p.CVC,
	}
}

// SaveDraftRequest replaces the whole draft slot with the submitted state.
type SaveDraftRequest struct {
	Traveler      DraftTraveler `json:"traveler"`
	Payment       DraftPayment  `json:"payment"`
	TravelerCount int           `json:"traveler_count" validate:"min=1"`
}

func (r *SaveDraftRequest) ToModel() model.CheckoutDraft {
	return model.CheckoutDraft{
		Traveler:      r.Traveler.ToModel(),
		Payment:       r.Payment.ToModel(),
		TravelerCount: r.TravelerCount,
	}
}

type DraftResponse struct {
	Traveler      model.TravelerDetails `json:"traveler"`
	Payment       model.PaymentDetails  `json:"payment"`
	TravelerCount int                   `json:"traveler_count"`
}

func (r *DraftResponse) FromModel(draft model.CheckoutDraft) {
	r.Traveler = draft.Traveler
	r.Payment = draft.Payment
	r.TravelerCount = draft.TravelerCount
}

type QuoteResponse struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	TravelerCount int     `json:"traveler_count"`
}

func (r *QuoteResponse) FromModel(quote model.Quote, travelerCount int) {
	r.Subtotal = quote.Subtotal
	r.Tax = quote.Tax
	r.Total = quote.Total
	r.TravelerCount = travelerCount
}

// ConfirmResponse carries the booking outcome plus the navigation hint to
// the confirmation view.
type ConfirmResponse struct {
	BookingID  string  `json:"booking_id"`
	Total      float64 `json:"total"`
	RedirectTo string  `json:"redirect_to"`
}

type FinalBookingResponse struct {
	model.FinalBooking
}

// BookingConfirmedEvent is published to Kafka when a checkout confirms.
type BookingConfirmedEvent struct {
	BookingID     string  `json:"booking_id"`
	TripID        string  `json:"trip_id"`
	Email         string  `json:"email"`
	TravelerCount int     `json:"traveler_count"`
	Total         float64 `json:"total"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
