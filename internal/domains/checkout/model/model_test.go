package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rathh/config"
	"rathh/shared/validator"
)

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name             string
		pricePerPerson   float64
		travelerCount    int
		expectedSubtotal float64
		expectedTax      float64
		expectedTotal    float64
	}{
		{name: "single traveler", pricePerPerson: 1000, travelerCount: 1, expectedSubtotal: 1000, expectedTax: 50, expectedTotal: 1050},
		{name: "two travelers", pricePerPerson: 1200, travelerCount: 2, expectedSubtotal: 2400, expectedTax: 120, expectedTotal: 2520},
		{name: "free trip", pricePerPerson: 0, travelerCount: 5, expectedSubtotal: 0, expectedTax: 0, expectedTotal: 0},
		{name: "large group", pricePerPerson: 799.5, travelerCount: 10, expectedSubtotal: 7995, expectedTax: 399.75, expectedTotal: 8394.75},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			quote := ComputeQuote(test.pricePerPerson, test.travelerCount, 0.05)

			assert.InDelta(t, test.expectedSubtotal, quote.Subtotal, 1e-9)
			assert.InDelta(t, test.expectedTax, quote.Tax, 1e-9)
			assert.InDelta(t, test.expectedTotal, quote.Total, 1e-9)
			assert.GreaterOrEqual(t, quote.Total, quote.Subtotal)
		})
	}
}

func TestTravelerCount(t *testing.T) {
	t.Run("decrement at one is a no-op", func(t *testing.T) {
		draft := NewCheckoutDraft(config.PaymentModeLive)
		draft.DecrementTravelers()

		assert.Equal(t, 1, draft.TravelerCount)
	})

	t.Run("increment then decrement", func(t *testing.T) {
		draft := NewCheckoutDraft(config.PaymentModeLive)
		draft.IncrementTravelers()
		draft.IncrementTravelers()
		draft.DecrementTravelers()

		assert.Equal(t, 2, draft.TravelerCount)
	})
}

func TestNewCheckoutDraft(t *testing.T) {
	t.Run("simulation mode pre-fills payment", func(t *testing.T) {
		draft := NewCheckoutDraft(config.PaymentModeSimulation)

		assert.Equal(t, 1, draft.TravelerCount)
		assert.Equal(t, SimulatedCardNumber, draft.Payment.CardNumber)
		assert.Equal(t, SimulatedNameOnCard, draft.Payment.NameOnCard)
		assert.Equal(t, SimulatedExpiry, draft.Payment.Expiry)
		assert.Equal(t, SimulatedCVC, draft.Payment.CVC)
	})

	t.Run("live mode starts empty", func(t *testing.T) {
		draft := NewCheckoutDraft(config.PaymentModeLive)

		assert.Equal(t, PaymentDetails{}, draft.Payment)
	})
}

func TestPaymentValid(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		payment  PaymentDetails
		expected bool
	}{
		{name: "simulation always valid", mode: config.PaymentModeSimulation, payment: PaymentDetails{}, expected: true},
		{name: "live empty invalid", mode: config.PaymentModeLive, payment: PaymentDetails{}, expected: false},
		{
			name:     "live missing cvc invalid",
			mode:     config.PaymentModeLive,
			payment:  PaymentDetails{CardNumber: "4111", NameOnCard: "Asha", Expiry: "12/28"},
			expected: false,
		},
		{
			name:     "live complete valid",
			mode:     config.PaymentModeLive,
			payment:  PaymentDetails{CardNumber: "4111", NameOnCard: "Asha", Expiry: "12/28", CVC: "123"},
			expected: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.payment.Valid(test.mode))
		})
	}
}

func TestTravelerDetailsValidation(t *testing.T) {
	valid := TravelerDetails{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Phone:     "+911234567890",
	}

	t.Run("minimal valid traveler", func(t *testing.T) {
		traveler := valid

		assert.NoError(t, validator.ValidateStruct(&traveler))
	})

	t.Run("empty email blocks", func(t *testing.T) {
		traveler := valid
		traveler.Email = ""

		assert.Error(t, validator.ValidateStruct(&traveler))
	})

	t.Run("malformed email blocks", func(t *testing.T) {
		traveler := valid
		traveler.Email = "not-an-email"

		assert.Error(t, validator.ValidateStruct(&traveler))
	})

	t.Run("missing phone blocks", func(t *testing.T) {
		traveler := valid
		traveler.Phone = ""

		assert.Error(t, validator.ValidateStruct(&traveler))
	})
}
