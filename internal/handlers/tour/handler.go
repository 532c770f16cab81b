package tour

import (
	"net/http"

	"rathh/infras/otel"
	"rathh/internal/domains/tour/model/dto"
	"rathh/internal/domains/tour/service"
	"rathh/shared/constant"
	"rathh/shared/validator"
	"rathh/transport/http/middleware"
	"rathh/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tour
	otel    otel.Otel
	client  middleware.ClientIdentity
}

func New(service service.Tour, otel otel.Otel, client middleware.ClientIdentity) Handler {
	return Handler{
		service: service,
		otel:    otel,
		client:  client,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Post("/search", handler.Search)
		routerGroup.With(handler.client.Resolve).Post("/{id}/image", handler.UploadImage)
	})

	router.Route("/search/params", func(routerGroup chi.Router) {
		routerGroup.Use(handler.client.Resolve)
		routerGroup.Put("/", handler.SaveSearchParams)
		routerGroup.Get("/", handler.GetSearchParams)
	})
}

// Search runs the tour search pipeline.
// @Summary Search tours
// @Description Filter and sort the tour catalog by category, duration, destination, price range and travel window.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.SearchToursRequest true "Search Tours Request"
// @Success 200 {object} dto.SearchToursResponse "Matching tours"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/search [post]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	req := dto.SearchToursRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search tours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SaveSearchParams stores the client's destination search handoff.
// @Summary Save search params
// @Description Store the destination search parameters handed off to the results view. Last write wins.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.SearchParams true "Search Params"
// @Success 200 {object} response.Message "Search params saved"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/params [put]
// @Security BearerAuth
func (handler *Handler) SaveSearchParams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveSearchParams")
	defer scope.End()

	req := dto.SearchParams{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	clientID := middleware.ClientIDFromContext(ctx)

	if err := handler.service.SaveSearchParams(ctx, clientID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save search params")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Search params saved")
}

// GetSearchParams returns the stored search handoff.
// @Summary Get search params
// @Description Return the destination search parameters previously stored for this client.
// @Tags Tour
// @Produce json
// @Success 200 {object} dto.SearchParams "Stored search params"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/params [get]
// @Security BearerAuth
func (handler *Handler) GetSearchParams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSearchParams")
	defer scope.End()

	clientID := middleware.ClientIDFromContext(ctx)

	res, err := handler.service.GetSearchParams(ctx, clientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get search params")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadImage attaches an image to a tour.
// @Summary Upload a tour image
// @Description Upload an image for the given tour. A previously attached image is replaced.
// @Tags Tour
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Tour ID"
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("rejected image upload")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload tour image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
