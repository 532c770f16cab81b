package checkout

import (
	"net/http"

	"rathh/infras/otel"
	"rathh/internal/domains/checkout/model/dto"
	"rathh/internal/domains/checkout/service"
	"rathh/shared/constant"
	"rathh/shared/validator"
	"rathh/transport/http/middleware"
	"rathh/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkout
	otel    otel.Otel
	client  middleware.ClientIdentity
}

func New(service service.Checkout, otel otel.Otel, client middleware.ClientIdentity) Handler {
	return Handler{
		service: service,
		otel:    otel,
		client:  client,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.Use(handler.client.Resolve)

		routerGroup.Put("/session", handler.StartSession)
		routerGroup.Get("/session", handler.GetSession)
		routerGroup.Put("/draft", handler.SaveDraft)
		routerGroup.Get("/draft", handler.GetDraft)
		routerGroup.Post("/travelers/increment", handler.IncrementTravelers)
		routerGroup.Post("/travelers/decrement", handler.DecrementTravelers)
		routerGroup.Get("/quote", handler.Quote)
		routerGroup.Post("/confirm", handler.Confirm)
		routerGroup.Get("/confirmation", handler.GetFinal)
	})
}

// StartSession writes the booking context for checkout.
// @Summary Start a checkout session
// @Description Store the trip context handed off from trip selection. Replaces any previous session.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Create Session Request"
// @Success 200 {object} dto.SessionResponse "Session stored"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/session [put]
// @Security BearerAuth
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	req := dto.CreateSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	clientID := middleware.ClientIDFromContext(ctx)

	res, err := handler.service.StartSession(ctx, clientID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start checkout session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSession returns the stored booking context.
// @Summary Get the checkout session
// @Description Return the trip context for this client's checkout.
// @Tags Checkout
// @Produce json
// @Success 200 {object} dto.SessionResponse "Stored session"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/session [get]
// @Security BearerAuth
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	res, err := handler.service.GetSession(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkout session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SaveDraft replaces the in-progress checkout form state.
// @Summary Save the checkout draft
// @Description Auto-save endpoint for the checkout form. The stored draft is replaced whole.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.SaveDraftRequest true "Save Draft Request"
// @Success 200 {object} dto.DraftResponse "Saved draft"
// @Failure 400 {object} response.Error
// @Router /v1/checkout/draft [put]
// @Security BearerAuth
func (handler *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveDraft")
	defer scope.End()

	req := dto.SaveDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SaveDraft(ctx, middleware.ClientIDFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save checkout draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDraft returns the in-progress checkout form state.
// @Summary Get the checkout draft
// @Description Return the stored draft, or the default draft when none has been saved yet.
// @Tags Checkout
// @Produce json
// @Success 200 {object} dto.DraftResponse "Draft state"
// @Failure 500 {object} response.Error
// @Router /v1/checkout/draft [get]
// @Security BearerAuth
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.GetDraft(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkout draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// IncrementTravelers adds one traveler to the draft.
// @Summary Add a traveler
// @Description Bump the draft traveler count by one and persist it.
// @Tags Checkout
// @Produce json
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 500 {object} response.Error
// @Router /v1/checkout/travelers/increment [post]
// @Security BearerAuth
func (handler *Handler) IncrementTravelers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IncrementTravelers")
	defer scope.End()

	res, err := handler.service.IncrementTravelers(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to increment travelers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DecrementTravelers removes one traveler from the draft.
// @Summary Remove a traveler
// @Description Lower the draft traveler count by one, never below one.
// @Tags Checkout
// @Produce json
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 500 {object} response.Error
// @Router /v1/checkout/travelers/decrement [post]
// @Security BearerAuth
func (handler *Handler) DecrementTravelers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecrementTravelers")
	defer scope.End()

	res, err := handler.service.DecrementTravelers(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decrement travelers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Quote returns the pricing breakdown for the current session and draft.
// @Summary Get the checkout quote
// @Description Derive subtotal, tax and total from the session price and draft traveler count.
// @Tags Checkout
// @Produce json
// @Success 200 {object} dto.QuoteResponse "Pricing breakdown"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/quote [get]
// @Security BearerAuth
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	res, err := handler.service.Quote(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute quote")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Confirm finalizes the booking.
// @Summary Confirm the booking
// @Description Run the confirmation gate, write the booking and clear the checkout slots.
// @Tags Checkout
// @Produce json
// @Success 201 {object} dto.ConfirmResponse "Booking confirmed"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	res, err := handler.service.Confirm(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed: " + res.BookingID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFinal returns the confirmed booking for this client.
// @Summary Get the booking confirmation
// @Description Return the final booking record shown on the confirmation view.
// @Tags Checkout
// @Produce json
// @Success 200 {object} dto.FinalBookingResponse "Confirmed booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/confirmation [get]
// @Security BearerAuth
func (handler *Handler) GetFinal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFinal")
	defer scope.End()

	res, err := handler.service.GetFinal(ctx, middleware.ClientIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking confirmation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
