package booking

import (
	"net/http"

	"rathh/infras/otel"
	"rathh/internal/domains/booking/service"
	"rathh/shared"
	"rathh/shared/constant"
	gDto "rathh/shared/dto"
	"rathh/transport/http/middleware"
	"rathh/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamTripID   = "trip_id"
	requestParamEmail    = "email"
	requestParamUpcoming = "upcoming"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
	client  middleware.ClientIdentity
}

func New(service service.Booking, otel otel.Otel, client middleware.ClientIdentity) Handler {
	return Handler{
		service: service,
		otel:    otel,
		client:  client,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.client.Resolve)

		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Get("/{id}/receipt", handler.Receipt)
	})
}

// GetBookings lists confirmed bookings.
// @Summary List bookings
// @Description Page through the booking ledger, optionally narrowed by trip id or traveler email.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param trip_id query string false "Narrow to a trip"
// @Param email query string false "Narrow to a traveler email"
// @Param upcoming query bool false "true for trips not yet departed, false for trips already ended"
// @Success 200 {object} dto.GetBookingsResponse "Bookings page"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	tripID := r.URL.Query().Get(requestParamTripID)
	email := r.URL.Query().Get(requestParamEmail)
	upcoming := shared.ConvertStringToBool(r.URL.Query().Get(requestParamUpcoming))

	res, err := handler.service.GetBookings(ctx, queryParams, tripID, email, upcoming)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBooking returns one booking.
// @Summary Get a booking
// @Description Return the booking with the given public booking id.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Receipt downloads the booking receipt.
// @Summary Download a booking receipt
// @Description Render the booking receipt as a PDF download.
// @Tags Booking
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} file "Receipt PDF"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/receipt [get]
// @Security BearerAuth
func (handler *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Receipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	content, filename, err := handler.service.Receipt(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render booking receipt")

		response.WithError(w, err)

		return
	}

	response.WithPDF(w, filename, content)
}
