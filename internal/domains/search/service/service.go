package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"tourbook/config"
	"tourbook/infras/otel"
	clientModel "tourbook/internal/domains/client/model"
	clientRepo "tourbook/internal/domains/client/repository"
	excursionModel "tourbook/internal/domains/excursion/model"
	excursionRepo "tourbook/internal/domains/excursion/repository"
	reservationModel "tourbook/internal/domains/reservation/model"
	reservationRepo "tourbook/internal/domains/reservation/repository"
	"tourbook/internal/domains/search/model"
	"tourbook/shared/constant"
	"tourbook/shared/lookup"
)

type Search interface {
	Search(ctx context.Context, query string) []model.Result
}

type serviceImpl struct {
	excursions   excursionRepo.Excursion
	clients      clientRepo.Client
	reservations reservationRepo.Reservation
	maxPerType   int
	otel         otel.Otel
}

func New(
	excursions excursionRepo.Excursion,
	clients clientRepo.Client,
	reservations reservationRepo.Reservation,
	cfg *config.Config,
	otel otel.Otel,
) Search {
	maxPerType := cfg.App.Search.MaxPerType
	if maxPerType <= 0 {
		maxPerType = model.DefaultMaxPerType
	}

	return &serviceImpl{
		excursions:   excursions,
		clients:      clients,
		reservations: reservations,
		maxPerType:   maxPerType,
		otel:         otel,
	}
}

// Search matches the query as a case-insensitive substring. Results are
// grouped as excursions, clients, reservations and pages, each group in
// store order. A blank query returns nothing without reading the stores.
func (s *serviceImpl) Search(ctx context.Context, query string) []model.Result {
	needle := lookup.Normalize(query)
	if needle == constant.Empty {
		return []model.Result{}
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".search.Search")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, needle)

	results := []model.Result{}

	excursions := lookup.Take(s.excursions.GetAll(ctx), s.maxPerType, func(e excursionModel.Excursion) bool {
		return lookup.ContainsAny(needle, e.Nombre, e.DescripcionCorta)
	})
	for _, e := range excursions {
		results = append(results, model.Result{
			ID:          model.ResultID(model.TypeExcursion, e.ID),
			Type:        model.TypeExcursion,
			Title:       e.Nombre,
			Description: e.DescripcionCorta,
			URL:         "/admin/excursiones/" + e.ID,
		})
	}

	clients := lookup.Take(s.clients.GetAll(ctx), s.maxPerType, func(c clientModel.Client) bool {
		return lookup.ContainsAny(needle, c.Nombre, c.Email)
	})
	for _, c := range clients {
		results = append(results, model.Result{
			ID:          model.ResultID(model.TypeClient, c.ID),
			Type:        model.TypeClient,
			Title:       c.Nombre,
			Description: c.Email,
			URL:         "/admin/clientes/" + c.ID,
		})
	}

	reservations := lookup.Take(s.reservations.GetAll(ctx), s.maxPerType, func(r reservationModel.Reservation) bool {
		return lookup.ContainsAny(needle, r.ClienteNombre, r.ExcursionNombre, r.ID)
	})
	for _, r := range reservations {
		results = append(results, model.Result{
			ID:          model.ResultID(model.TypeReservation, r.ID),
			Type:        model.TypeReservation,
			Title:       r.ID + " · " + r.ClienteNombre,
			Description: r.ExcursionNombre,
			URL:         "/admin/reservas/" + r.ID,
		})
	}

	for _, p := range model.Pages() {
		if !lookup.ContainsAny(needle, p.Title, p.Description) {
			continue
		}

		results = append(results, model.Result{
			ID:          model.ResultID(model.TypePage, p.Slug),
			Type:        model.TypePage,
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
		})
	}

	scope.SetAttribute("results", len(results))

	return results
}
