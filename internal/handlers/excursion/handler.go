package excursion

import (
	"net/http"

	"tourbook/infras/otel"
	"tourbook/internal/domains/excursion/model"
	"tourbook/internal/domains/excursion/model/dto"
	"tourbook/internal/domains/excursion/service"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/validator"
	"tourbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const queryParamImageURL = "url"

type Handler struct {
	service service.Excursion
	otel    otel.Otel
}

func New(service service.Excursion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/excursiones", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExcursion)
		routerGroup.Get("/", handler.GetExcursions)
		routerGroup.Get("/estado", handler.GetStatus)
		routerGroup.Get("/categorias", handler.GetCategories)
		routerGroup.Get("/ubicaciones", handler.GetLocations)
		routerGroup.Get("/destacadas", handler.GetFeatured)
		routerGroup.Get("/{id}", handler.GetExcursionByID)
		routerGroup.Put("/{id}", handler.UpdateExcursion)
		routerGroup.Delete("/{id}", handler.DeleteExcursion)
		routerGroup.Post("/{id}/imagenes", handler.UploadImage)
		routerGroup.Delete("/{id}/imagenes", handler.RemoveImage)
	})
}

// CreateExcursion handles the creation of a new excursion.
// @Summary Create a new excursion
// @Description Create an excursion. Nombre, precio, ubicacion and duracion are required.
// @Tags Excursion
// @Accept json
// @Produce json
// @Param request body dto.CreateExcursionRequest true "Create Excursion Request"
// @Success 201 {object} response.Created
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/excursiones [post]
// @Security BearerAuth
func (handler *Handler) CreateExcursion(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExcursion")
	defer scope.End()

	req := dto.CreateExcursionRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	excursion, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create excursion")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Excursion created successfully by user " + user)

	response.WithCreated(writer, excursion.ID)
}

// GetExcursions lists excursions in store order.
// @Summary List excursions
// @Description Both filters are case-insensitive exact matches and may be combined.
// @Tags Excursion
// @Produce json
// @Param categoria query string false "Filter by category"
// @Param ubicacion query string false "Filter by location"
// @Success 200 {array} model.Excursion
// @Router /v1/excursiones [get]
func (handler *Handler) GetExcursions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExcursions")
	defer scope.End()

	filter := dto.ExcursionFilter{
		Categoria: r.URL.Query().Get(constant.QueryParamCategory),
		Ubicacion: r.URL.Query().Get(constant.QueryParamLocation),
	}

	excursions := handler.service.List(ctx, filter)

	scope.AddEvent("Excursions retrieved successfully")

	response.WithJSON(w, http.StatusOK, excursions)
}

// GetExcursionByID retrieves an excursion by its identifier.
// @Summary Get an excursion by ID
// @Tags Excursion
// @Produce json
// @Param id path string true "Excursion ID"
// @Success 200 {object} model.Excursion
// @Failure 404 {object} response.Message
// @Router /v1/excursiones/{id} [get]
func (handler *Handler) GetExcursionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExcursionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	excursion, ok := handler.service.Get(ctx, id)
	if !ok {
		response.WithNotFound(w, model.EntityName+" not found")

		return
	}

	response.WithJSON(w, http.StatusOK, excursion)
}

// UpdateExcursion merges the supplied fields into an existing excursion.
// @Summary Update an excursion
// @Tags Excursion
// @Accept json
// @Produce json
// @Param id path string true "Excursion ID"
// @Param request body dto.UpdateExcursionRequest true "Update Excursion Request"
// @Success 200 {object} model.Excursion
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/excursiones/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateExcursion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExcursion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateExcursionRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	excursion, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update excursion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, excursion)
}

// DeleteExcursion deletes an excursion by its identifier.
// @Summary Delete an excursion
// @Tags Excursion
// @Produce json
// @Param id path string true "Excursion ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/excursiones/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteExcursion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExcursion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete excursion")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Excursion deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Excursion deleted successfully")
}

// GetCategories lists the distinct categories in first-seen order.
// @Summary List excursion categories
// @Tags Excursion
// @Produce json
// @Success 200 {array} string
// @Router /v1/excursiones/categorias [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Categories(ctx))
}

// GetLocations lists the distinct locations in first-seen order.
// @Summary List excursion locations
// @Tags Excursion
// @Produce json
// @Success 200 {array} string
// @Router /v1/excursiones/ubicaciones [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Locations(ctx))
}

// GetFeatured lists featured excursions.
// @Summary List featured excursions
// @Tags Excursion
// @Produce json
// @Success 200 {array} model.Excursion
// @Router /v1/excursiones/destacadas [get]
func (handler *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeatured")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Featured(ctx))
}

// GetStatus reports the request state of the excursion store.
// @Summary Excursion store status
// @Tags Excursion
// @Produce json
// @Success 200 {object} store.Status
// @Router /v1/excursiones/estado [get]
// @Security BearerAuth
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExcursionStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Status(ctx))
}

// UploadImage stores an image and attaches it to the excursion.
// @Summary Upload an excursion image
// @Description The first image becomes the primary one, later ones join the gallery.
// @Tags Excursion
// @Accept json
// @Produce json
// @Param id path string true "Excursion ID"
// @Param request body dto.UploadImageRequest true "Base64 data URL"
// @Success 200 {object} model.Excursion
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/excursiones/{id}/imagenes [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UploadImageRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	excursion, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to upload excursion image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, excursion)
}

// RemoveImage detaches an image from the excursion.
// @Summary Remove an excursion image
// @Tags Excursion
// @Produce json
// @Param id path string true "Excursion ID"
// @Param url query string true "Image URL"
// @Success 200 {object} model.Excursion
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/excursiones/{id}/imagenes [delete]
// @Security BearerAuth
func (handler *Handler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	imageURL := r.URL.Query().Get(queryParamImageURL)
	if imageURL == "" {
		err := failure.BadRequestFromString(queryParamImageURL + " is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	excursion, err := handler.service.RemoveImage(ctx, id, imageURL)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to remove excursion image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, excursion)
}
