package search

import (
	"net/http"

	"tourbook/infras/otel"
	"tourbook/internal/domains/search/service"
	"tourbook/shared/constant"
	"tourbook/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Search
	otel    otel.Otel
}

func New(service service.Search, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/buscar", handler.Search)
}

// Search runs the unified search over excursions, clients, reservations and admin pages.
// @Summary Unified search
// @Description Results are grouped by type in the order excursions, clients, reservations, pages.
// @Tags Search
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} model.Result
// @Router /v1/buscar [get]
// @Security BearerAuth
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	query := r.URL.Query().Get(constant.RequestParamQuery)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	response.WithJSON(w, http.StatusOK, handler.service.Search(ctx, query))
}
