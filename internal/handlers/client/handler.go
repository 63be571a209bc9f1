package client

import (
	"net/http"

	"tourbook/infras/otel"
	"tourbook/internal/domains/client/model"
	"tourbook/internal/domains/client/model/dto"
	"tourbook/internal/domains/client/service"
	"tourbook/shared"
	"tourbook/shared/constant"
	"tourbook/shared/validator"
	"tourbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clientes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/estado", handler.GetStatus)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Put("/{id}", handler.UpdateClient)
		routerGroup.Delete("/{id}", handler.DeleteClient)
	})
}

// CreateClient handles the creation of a new client.
// @Summary Create a new client
// @Description Only nombre is required. The id is assigned as CLI-### after the highest existing one.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Created
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/clientes [post]
// @Security BearerAuth
func (handler *Handler) CreateClient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	client, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client created successfully by user " + user)

	response.WithCreated(writer, client.ID)
}

// GetClients lists clients in store order.
// @Summary List clients
// @Tags Client
// @Produce json
// @Param estado query string false "Filter by status"
// @Param recientes query boolean false "Registered in the last 30 days"
// @Param recurrentes query boolean false "More than one reservation"
// @Param vip query boolean false "VIP clients"
// @Success 200 {array} model.Client
// @Router /v1/clientes [get]
// @Security BearerAuth
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	query := r.URL.Query()

	filter := dto.ClientFilter{
		Estado:      query.Get(constant.QueryParamStatus),
		Recientes:   shared.ConvertStringToBool(query.Get(constant.QueryParamRecent)),
		Recurrentes: shared.ConvertStringToBool(query.Get(constant.QueryParamRecurring)),
		VIP:         shared.ConvertStringToBool(query.Get(constant.QueryParamVIP)),
	}

	clients := handler.service.List(ctx, filter)

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves a client by its identifier.
// @Summary Get a client by ID
// @Tags Client
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} model.Client
// @Failure 404 {object} response.Message
// @Router /v1/clientes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	client, ok := handler.service.Get(ctx, id)
	if !ok {
		response.WithNotFound(w, model.EntityName+" not found")

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient merges the supplied fields into an existing client.
// @Summary Update a client
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} model.Client
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/clientes/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClientRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	client, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// DeleteClient deletes a client by its identifier. Reservations keep their copy of the name.
// @Summary Delete a client
// @Tags Client
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/clientes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client deleted successfully")
}

// GetStatus reports the request state of the client store.
// @Summary Client store status
// @Tags Client
// @Produce json
// @Success 200 {object} store.Status
// @Router /v1/clientes/estado [get]
// @Security BearerAuth
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Status(ctx))
}
