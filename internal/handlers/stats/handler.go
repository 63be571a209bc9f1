package stats

import (
	"net/http"

	"tourbook/infras/otel"
	"tourbook/internal/domains/stats/service"
	"tourbook/shared/constant"
	"tourbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/estadisticas", handler.GetDashboard)
}

// GetDashboard returns the dashboard statistics.
// @Summary Dashboard statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} model.Stats
// @Failure 500 {object} response.Message
// @Router /v1/estadisticas [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	stats, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute dashboard statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
