package service

import (
	"context"
	"errors"
	"fmt"

	"rathh/config"
	"rathh/infras/kafka"
	"rathh/infras/otel"
	bookingModel "rathh/internal/domains/booking/model"
	bookingRepo "rathh/internal/domains/booking/repository"
	"rathh/internal/domains/checkout/model"
	"rathh/internal/domains/checkout/model/dto"
	"rathh/internal/domains/checkout/repository"
	"rathh/shared"
	"rathh/shared/constant"
	"rathh/shared/failure"
	"rathh/shared/kv"
	gModel "rathh/shared/model"
	"rathh/shared/timezone"
	"rathh/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	bookingIDPrefix         = "bk"
	confirmationRedirectURL = "/booking-confirmation"
)

type Checkout interface {
	StartSession(ctx context.Context, clientID string, req dto.CreateSessionRequest) (dto.SessionResponse, error)
	GetSession(ctx context.Context, clientID string) (dto.SessionResponse, error)
	GetDraft(ctx context.Context, clientID string) (dto.DraftResponse, error)
	SaveDraft(ctx context.Context, clientID string, req dto.SaveDraftRequest) (dto.DraftResponse, error)
	IncrementTravelers(ctx context.Context, clientID string) (dto.DraftResponse, error)
	DecrementTravelers(ctx context.Context, clientID string) (dto.DraftResponse, error)
	Quote(ctx context.Context, clientID string) (dto.QuoteResponse, error)
	Confirm(ctx context.Context, clientID string) (dto.ConfirmResponse, error)
	GetFinal(ctx context.Context, clientID string) (dto.FinalBookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Checkout
	bookings bookingRepo.Booking
	cfg      *config.Config
	kafka    kafka.Client
	otel     otel.Otel
}

func New(repo repository.Checkout, bookings bookingRepo.Booking, cfg *config.Config, kafkaClient kafka.Client, otl otel.Otel) Checkout {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		kafka:    kafkaClient,
		otel:     otl,
	}
}

// StartSession writes the client's booking context slot, replacing any
// previous session whole.
func (s *serviceImpl) StartSession(ctx context.Context, clientID string, req dto.CreateSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	session := req.ToModel()

	if session.StartDate != constant.Empty && session.EndDate != constant.Empty && session.EndDate < session.StartDate {
		return res, failure.BadRequestFromString("end date must not be before start date") //nolint:wrapcheck
	}

	if err = s.repo.PutSession(ctx, clientID, session); err != nil {
		log.Error().Err(err).Msg("failed to save booking session")

		return res, fmt.Errorf("failed to save booking session: %w", err)
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) GetSession(ctx context.Context, clientID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.getSession(ctx, clientID)
	if err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

// GetDraft returns the client's in-progress form state. A client with no
// saved draft gets the default draft; nothing is persisted until the first
// save.
func (s *serviceImpl) GetDraft(ctx context.Context, clientID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.getDraft(ctx, clientID)
	if err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

// SaveDraft replaces the draft slot with the submitted state. A storage
// fault must not interrupt the form, so it is logged and the submitted state
// is echoed back as if the save had succeeded.
func (s *serviceImpl) SaveDraft(ctx context.Context, clientID string, req dto.SaveDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := req.ToModel()

	if err = s.repo.SaveDraft(ctx, clientID, draft); err != nil {
		log.Error().Err(err).Str("clientID", clientID).Msg("failed to save checkout draft")
	}

	res.FromModel(draft)

	return res, nil
}

// IncrementTravelers adds one traveler to the draft and persists it.
func (s *serviceImpl) IncrementTravelers(ctx context.Context, clientID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IncrementTravelers")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.adjustTravelers(ctx, clientID, func(draft *model.CheckoutDraft) {
		draft.IncrementTravelers()
	})
}

// DecrementTravelers removes one traveler from the draft and persists it.
// At one traveler the count stays put.
func (s *serviceImpl) DecrementTravelers(ctx context.Context, clientID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DecrementTravelers")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.adjustTravelers(ctx, clientID, func(draft *model.CheckoutDraft) {
		draft.DecrementTravelers()
	})
}

// Quote derives the pricing breakdown from the session price and the draft
// traveler count.
func (s *serviceImpl) Quote(ctx context.Context, clientID string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.getSession(ctx, clientID)
	if err != nil {
		return res, err
	}

	draft, err := s.getDraft(ctx, clientID)
	if err != nil {
		return res, err
	}

	quote := model.ComputeQuote(session.PricePerPerson, draft.TravelerCount, s.cfg.Checkout.TaxRate)

	res.FromModel(quote, draft.TravelerCount)

	return res, nil
}

// Confirm runs the confirmation gate against the stored draft, writes the
// final booking record plus the durable ledger row, and clears the session
// and draft slots. The confirmed event is published in the background.
func (s *serviceImpl) Confirm(ctx context.Context, clientID string) (res dto.ConfirmResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.getSession(ctx, clientID)
	if err != nil {
		return res, err
	}

	draft, err := s.getDraft(ctx, clientID)
	if err != nil {
		return res, err
	}

	if vErr := validator.ValidateStruct(&draft.Traveler); vErr != nil {
		return res, failure.UnprocessableEntity(vErr.Error()) //nolint:wrapcheck
	}

	if !draft.Payment.Valid(s.cfg.Checkout.PaymentMode) {
		return res, failure.UnprocessableEntity("payment details are incomplete") //nolint:wrapcheck
	}

	now := timezone.Now()
	quote := model.ComputeQuote(session.PricePerPerson, draft.TravelerCount, s.cfg.Checkout.TaxRate)
	bookingID := fmt.Sprintf("%s_%d_%s", bookingIDPrefix, now.UnixMilli(), shared.RandomSuffix(4))

	final := model.FinalBooking{
		BookingID:      bookingID,
		TripID:         session.TripID,
		StartDate:      session.StartDate,
		EndDate:        session.EndDate,
		GroupType:      session.GroupType,
		PricePerPerson: session.PricePerPerson,
		TravelerCount:  draft.TravelerCount,
		Subtotal:       quote.Subtotal,
		Tax:            quote.Tax,
		Total:          quote.Total,
		Traveler:       draft.Traveler,
		ConfirmedAt:    now,
	}

	if err = s.bookings.Insert(ctx, s.toBookingRow(clientID, final)); err != nil {
		log.Error().Err(err).Msg("failed to record booking")

		return res, fmt.Errorf("failed to record booking: %w", err)
	}

	if err = s.repo.PutFinal(ctx, clientID, final); err != nil {
		log.Error().Err(err).Msg("failed to save final booking")

		return res, fmt.Errorf("failed to save final booking: %w", err)
	}

	go s.finishConfirmation(ctx, clientID, final)

	res.BookingID = bookingID
	res.Total = quote.Total
	res.RedirectTo = confirmationRedirectURL

	return res, nil
}

func (s *serviceImpl) GetFinal(ctx context.Context, clientID string) (res dto.FinalBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFinal")
	defer scope.End()
	defer scope.TraceIfError(err)

	final, err := s.repo.GetFinal(ctx, clientID)
	if errors.Is(err, kv.Nil) {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get final booking")

		return res, fmt.Errorf("failed to get final booking: %w", err)
	}

	res.FinalBooking = final

	return res, nil
}

func (s *serviceImpl) getSession(ctx context.Context, clientID string) (session model.BookingSession, err error) {
	session, err = s.repo.GetSession(ctx, clientID)
	if errors.Is(err, kv.Nil) {
		return session, failure.NotFound("booking session not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get booking session")

		return session, fmt.Errorf("failed to get booking session: %w", err)
	}

	return session, nil
}

func (s *serviceImpl) getDraft(ctx context.Context, clientID string) (draft model.CheckoutDraft, err error) {
	draft, err = s.repo.GetDraft(ctx, clientID)
	if errors.Is(err, kv.Nil) {
		return model.NewCheckoutDraft(s.cfg.Checkout.PaymentMode), nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get checkout draft")

		return draft, fmt.Errorf("failed to get checkout draft: %w", err)
	}

	return draft, nil
}

func (s *serviceImpl) adjustTravelers(ctx context.Context, clientID string, adjust func(*model.CheckoutDraft)) (res dto.DraftResponse, err error) {
	draft, err := s.getDraft(ctx, clientID)
	if err != nil {
		return res, err
	}

	adjust(&draft)

	if err = s.repo.SaveDraft(ctx, clientID, draft); err != nil {
		log.Error().Err(err).Str("clientID", clientID).Msg("failed to save checkout draft")
	}

	res.FromModel(draft)

	return res, nil
}

// finishConfirmation clears the consumed slots and publishes the confirmed
// event. All of it is best effort: the booking already stands.
func (s *serviceImpl) finishConfirmation(ctx context.Context, clientID string, final model.FinalBooking) {
	c := context.WithoutCancel(ctx)

	if err := s.repo.DeleteSession(c, clientID); err != nil {
		log.Error().Err(err).Str("clientID", clientID).Msg("failed to delete booking session")
	}

	if err := s.repo.DeleteDraft(c, clientID); err != nil {
		log.Error().Err(err).Str("clientID", clientID).Msg("failed to delete checkout draft")
	}

	event := dto.BookingConfirmedEvent{
		BookingID:     final.BookingID,
		TripID:        final.TripID,
		Email:         final.Traveler.Email,
		TravelerCount: final.TravelerCount,
		Total:         final.Total,
		ConfirmedAt:   timezone.Format(final.ConfirmedAt, constant.DateFormat),
	}

	message := kafka.Message{
		Key:   final.BookingID,
		Value: event,
	}

	if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("bookingID", final.BookingID).Msg("failed to publish booking confirmed event")
	}
}

func (s *serviceImpl) toBookingRow(clientID string, final model.FinalBooking) bookingModel.Booking {
	return bookingModel.Booking{
		ID:             uuid.NewString(),
		BookingID:      final.BookingID,
		ClientID:       clientID,
		TripID:         final.TripID,
		StartDate:      final.StartDate,
		EndDate:        final.EndDate,
		GroupType:      final.GroupType,
		PricePerPerson: final.PricePerPerson,
		TravelerCount:  final.TravelerCount,
		Subtotal:       final.Subtotal,
		Tax:            final.Tax,
		Total:          final.Total,
		FirstName:      final.Traveler.FirstName,
		LastName:       final.Traveler.LastName,
		Email:          final.Traveler.Email,
		Phone:          final.Traveler.Phone,
		Address1:       final.Traveler.Address1,
		Address2:       final.Traveler.Address2,
		City:           final.Traveler.City,
		State:          final.Traveler.State,
		PostalCode:     final.Traveler.PostalCode,
		Country:        final.Traveler.Country,
		ConfirmedAt:    final.ConfirmedAt,
		Metadata:       gModel.NewMetadata(final.ConfirmedAt, clientID),
	}
}
