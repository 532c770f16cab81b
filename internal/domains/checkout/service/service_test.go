package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rathh/config"
	"rathh/infras/kafka"
	kafkaMocks "rathh/infras/kafka/mocks"
	otelMocks "rathh/infras/otel/mocks"
	bookingMocks "rathh/internal/domains/booking/mocks"
	bookingModel "rathh/internal/domains/booking/model"
	checkoutMocks "rathh/internal/domains/checkout/mocks"
	"rathh/internal/domains/checkout/model"
	"rathh/internal/domains/checkout/model/dto"
	"rathh/internal/domains/checkout/service"
	"rathh/shared/failure"
	"rathh/shared/kv"
)

const clientID = "client-1"

func checkoutConfig(paymentMode string) *config.Config {
	cfg := &config.Config{}
	cfg.Checkout.TaxRate = 0.05
	cfg.Checkout.PaymentMode = paymentMode
	cfg.Kafka.BookingTopic = "travel.booking.confirmed"

	return cfg
}

func validSession() model.BookingSession {
	return model.BookingSession{
		TripID:         "tour_101",
		StartDate:      "2026-03-10",
		EndDate:        "2026-03-14",
		PricePerPerson: 1200,
		GroupType:      "private",
	}
}

func validDraft() model.CheckoutDraft {
	return model.CheckoutDraft{
		Traveler: model.TravelerDetails{
			FirstName: "Ananya",
			LastName:  "Rao",
			Email:     "ananya@example.com",
			Phone:     "+91 98480 12345",
		},
		Payment: model.PaymentDetails{
			CardNumber: model.SimulatedCardNumber,
			NameOnCard: model.SimulatedNameOnCard,
			Expiry:     model.SimulatedExpiry,
			CVC:        model.SimulatedCVC,
		},
		TravelerCount: 2,
	}
}

type checkoutFixture struct {
	repo     *checkoutMocks.MockCheckout
	bookings *bookingMocks.MockBooking
	kafka    *kafkaMocks.MockClient
	svc      service.Checkout
}

func newCheckoutFixture(t *testing.T, paymentMode string) (*gomock.Controller, *checkoutFixture) {
	ctrl := gomock.NewController(t)

	fix := &checkoutFixture{
		repo:     checkoutMocks.NewMockCheckout(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}
	fix.svc = service.New(fix.repo, fix.bookings, checkoutConfig(paymentMode), fix.kafka, otelMocks.NewOtel())

	return ctrl, fix
}

func TestCheckoutService_Session(t *testing.T) {
	t.Run("start session stores the booking context", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			PutSession(gomock.Any(), clientID, validSession()).
			Return(nil)

		res, err := fix.svc.StartSession(context.Background(), clientID, dto.CreateSessionRequest{
			TripID:         "tour_101",
			StartDate:      "2026-03-10",
			EndDate:        "2026-03-14",
			PricePerPerson: 1200,
			GroupType:      "private",
		})

		assert.NoError(t, err)
		assert.Equal(t, "tour_101", res.TripID)
		assert.Equal(t, float64(1200), res.PricePerPerson)
	})

	t.Run("start session rejects an inverted date range", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		_, err := fix.svc.StartSession(context.Background(), clientID, dto.CreateSessionRequest{
			TripID:    "tour_101",
			StartDate: "2026-03-14",
			EndDate:   "2026-03-10",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("get session not found", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			GetSession(gomock.Any(), clientID).
			Return(model.BookingSession{}, kv.Nil)

		_, err := fix.svc.GetSession(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCheckoutService_Draft(t *testing.T) {
	t.Run("missing draft defaults to one traveler with simulated payment", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			GetDraft(gomock.Any(), clientID).
			Return(model.CheckoutDraft{}, kv.Nil)

		res, err := fix.svc.GetDraft(context.Background(), clientID)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TravelerCount)
		assert.Equal(t, model.SimulatedCardNumber, res.Payment.CardNumber)
	})

	t.Run("missing draft in live mode starts with an empty card form", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeLive)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			GetDraft(gomock.Any(), clientID).
			Return(model.CheckoutDraft{}, kv.Nil)

		res, err := fix.svc.GetDraft(context.Background(), clientID)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TravelerCount)
		assert.Empty(t, res.Payment.CardNumber)
	})

	t.Run("save draft echoes the submitted state even when storage fails", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			SaveDraft(gomock.Any(), clientID, gomock.Any()).
			Return(errors.New("store unavailable"))

		res, err := fix.svc.SaveDraft(context.Background(), clientID, dto.SaveDraftRequest{
			Traveler:      dto.DraftTraveler{FirstName: "Ananya"},
			TravelerCount: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ananya", res.Traveler.FirstName)
		assert.Equal(t, 3, res.TravelerCount)
	})

	t.Run("increment persists the bumped count", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		draft := validDraft()

		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(draft, nil)
		fix.repo.EXPECT().
			SaveDraft(gomock.Any(), clientID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, saved model.CheckoutDraft) error {
				assert.Equal(t, 3, saved.TravelerCount)

				return nil
			})

		res, err := fix.svc.IncrementTravelers(context.Background(), clientID)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TravelerCount)
	})

	t.Run("decrement stops at one traveler", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		draft := validDraft()
		draft.TravelerCount = 1

		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(draft, nil)
		fix.repo.EXPECT().SaveDraft(gomock.Any(), clientID, gomock.Any()).Return(nil)

		res, err := fix.svc.DecrementTravelers(context.Background(), clientID)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TravelerCount)
	})
}

func TestCheckoutService_Quote(t *testing.T) {
	t.Run("derives the breakdown from session price and draft count", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(validDraft(), nil)

		res, err := fix.svc.Quote(context.Background(), clientID)

		assert.NoError(t, err)
		assert.InDelta(t, 2400, res.Subtotal, 0.001)
		assert.InDelta(t, 120, res.Tax, 0.001)
		assert.InDelta(t, 2520, res.Total, 0.001)
		assert.Equal(t, 2, res.TravelerCount)
	})

	t.Run("missing draft quotes for one traveler", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(model.CheckoutDraft{}, kv.Nil)

		res, err := fix.svc.Quote(context.Background(), clientID)

		assert.NoError(t, err)
		assert.InDelta(t, 1260, res.Total, 0.001)
		assert.Equal(t, 1, res.TravelerCount)
	})

	t.Run("quote requires a session", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			GetSession(gomock.Any(), clientID).
			Return(model.BookingSession{}, kv.Nil)

		_, err := fix.svc.Quote(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCheckoutService_Confirm(t *testing.T) {
	t.Run("confirms, records the ledger row and clears the slots", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		published := make(chan struct{})

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(validDraft(), nil)
		fix.bookings.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row bookingModel.Booking) error {
				assert.Equal(t, clientID, row.ClientID)
				assert.Equal(t, "tour_101", row.TripID)
				assert.InDelta(t, 2400, row.Subtotal, 0.001)
				assert.InDelta(t, 120, row.Tax, 0.001)
				assert.InDelta(t, 2520, row.Total, 0.001)
				assert.Equal(t, "ananya@example.com", row.Email)

				return nil
			})
		fix.repo.EXPECT().
			PutFinal(gomock.Any(), clientID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, final model.FinalBooking) error {
				assert.True(t, strings.HasPrefix(final.BookingID, "bk_"))
				assert.Equal(t, 2, final.TravelerCount)

				return nil
			})
		fix.repo.EXPECT().DeleteSession(gomock.Any(), clientID).Return(nil)
		fix.repo.EXPECT().DeleteDraft(gomock.Any(), clientID).Return(nil)
		fix.kafka.EXPECT().
			SendMessages(gomock.Any(), "travel.booking.confirmed", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 1)
				event, ok := messages[0].Value.(dto.BookingConfirmedEvent)
				assert.True(t, ok)
				assert.InDelta(t, 2520, event.Total, 0.001)

				close(published)

				return nil
			})

		res, err := fix.svc.Confirm(context.Background(), clientID)
		<-published

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.BookingID, "bk_"))
		assert.InDelta(t, 2520, res.Total, 0.001)
		assert.Equal(t, "/booking-confirmation", res.RedirectTo)
	})

	t.Run("blocked on an incomplete traveler form", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		draft := validDraft()
		draft.Traveler.Email = ""

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(draft, nil)

		_, err := fix.svc.Confirm(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("blocked on an empty card form in live mode", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeLive)
		defer ctrl.Finish()

		draft := validDraft()
		draft.Payment = model.PaymentDetails{}

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(draft, nil)

		_, err := fix.svc.Confirm(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("empty card form passes the gate in simulation mode", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		draft := validDraft()
		draft.Payment = model.PaymentDetails{}

		published := make(chan struct{})

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(draft, nil)
		fix.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		fix.repo.EXPECT().PutFinal(gomock.Any(), clientID, gomock.Any()).Return(nil)
		fix.repo.EXPECT().DeleteSession(gomock.Any(), clientID).Return(nil)
		fix.repo.EXPECT().DeleteDraft(gomock.Any(), clientID).Return(nil)
		fix.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, ...kafka.Message) error {
				close(published)

				return nil
			})

		_, err := fix.svc.Confirm(context.Background(), clientID)
		<-published

		assert.NoError(t, err)
	})

	t.Run("confirm without a session is not found", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			GetSession(gomock.Any(), clientID).
			Return(model.BookingSession{}, kv.Nil)

		_, err := fix.svc.Confirm(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("ledger write failure aborts the confirmation", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().GetSession(gomock.Any(), clientID).Return(validSession(), nil)
		fix.repo.EXPECT().GetDraft(gomock.Any(), clientID).Return(validDraft(), nil)
		fix.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := fix.svc.Confirm(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestCheckoutService_GetFinal(t *testing.T) {
	t.Run("returns the confirmed booking", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		final := model.FinalBooking{BookingID: "bk_1_abc", Total: 2520}

		fix.repo.EXPECT().GetFinal(gomock.Any(), clientID).Return(final, nil)

		res, err := fix.svc.GetFinal(context.Background(), clientID)

		assert.NoError(t, err)
		assert.Equal(t, "bk_1_abc", res.BookingID)
	})

	t.Run("not found before any confirmation", func(t *testing.T) {
		ctrl, fix := newCheckoutFixture(t, config.PaymentModeSimulation)
		defer ctrl.Finish()

		fix.repo.EXPECT().
			GetFinal(gomock.Any(), clientID).
			Return(model.FinalBooking{}, kv.Nil)

		_, err := fix.svc.GetFinal(context.Background(), clientID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
