package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"tourbook/config"
	"tourbook/infras/otel"
	clientModel "tourbook/internal/domains/client/model"
	clientRepo "tourbook/internal/domains/client/repository"
	excursionModel "tourbook/internal/domains/excursion/model"
	excursionRepo "tourbook/internal/domains/excursion/repository"
	reservationModel "tourbook/internal/domains/reservation/model"
	reservationRepo "tourbook/internal/domains/reservation/repository"
	"tourbook/internal/domains/stats/model"
	"tourbook/shared/cache"
	"tourbook/shared/constant"
	"tourbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheStats = "stats"

type Stats interface {
	Dashboard(ctx context.Context) (model.Stats, error)
}

type serviceImpl struct {
	excursions   excursionRepo.Excursion
	clients      clientRepo.Client
	reservations reservationRepo.Reservation
	cache        cache.RedisCache
	cfg          *config.Config
	otel         otel.Otel
	instance     string
}

func New(
	excursions excursionRepo.Excursion,
	clients clientRepo.Client,
	reservations reservationRepo.Reservation,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Stats {
	return &serviceImpl{
		excursions:   excursions,
		clients:      clients,
		reservations: reservations,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
		instance:     uuid.NewString(),
	}
}

// cacheKey changes with every mutation of any of the three stores. Store
// versions are per process, so the key is scoped to this instance.
func (s *serviceImpl) cacheKey() string {
	version := fmt.Sprintf("%d.%d.%d",
		s.excursions.Store().Version(),
		s.clients.Store().Version(),
		s.reservations.Store().Version(),
	)

	return cache.BuildCacheKey(cacheStats, "dashboard", s.instance, version)
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res model.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	useCache := s.cfg.Cache.TTL > 0
	cacheKey := s.cacheKey()

	if useCache {
		if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for dashboard stats")

			return res, nil
		}
	}

	res = Compute(
		s.excursions.GetAll(ctx),
		s.clients.GetAll(ctx),
		s.reservations.GetAll(ctx),
	)

	if useCache {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save dashboard stats to cache")
			}
		}()
	}

	return res, nil
}

// Compute aggregates the three collections. Cancelled reservations count in
// the per-status totals only.
func Compute(
	excursions []excursionModel.Excursion,
	clients []clientModel.Client,
	reservations []reservationModel.Reservation,
) model.Stats {
	res := model.Stats{
		Clientes:       model.ClientStats{Total: len(clients), PorEstado: map[string]int{}},
		Excursiones:    model.ExcursionStats{Total: len(excursions)},
		Reservas:       model.ReservationStats{Total: len(reservations), PorEstado: map[string]int{}},
		TopExcursiones: []model.TopExcursion{},
	}

	recent := clientModel.RegisteredWithin(constant.RecentDays, timezone.Now())

	for _, c := range clients {
		res.Clientes.PorEstado[c.Estado]++

		if c.VIP {
			res.Clientes.VIP++
		}

		if recent(c) {
			res.Clientes.Recientes++
		}
	}

	names := make(map[string]string, len(excursions))

	for _, e := range excursions {
		names[e.ID] = e.Nombre

		if e.Estado == excursionModel.StatusActive {
			res.Excursiones.Activas++
		}

		if e.Destacada {
			res.Excursiones.Destacadas++
		}
	}

	ranking := map[string]*model.TopExcursion{}
	order := []string{}
	confirmed := reservationModel.Confirmed()

	for _, r := range reservations {
		res.Reservas.PorEstado[r.Estado]++

		if r.Estado == reservationModel.StatusCancelled {
			continue
		}

		res.Reservas.Personas += r.Personas

		if confirmed(r) {
			res.Ingresos += r.Total
		}

		top, ok := ranking[r.ExcursionID]
		if !ok {
			name, known := names[r.ExcursionID]
			if !known {
				name = r.ExcursionNombre
			}

			top = &model.TopExcursion{ExcursionID: r.ExcursionID, Nombre: name}
			ranking[r.ExcursionID] = top
			order = append(order, r.ExcursionID)
		}

		top.Reservas++
		top.Ingresos += r.Total
	}

	for _, id := range order {
		res.TopExcursiones = append(res.TopExcursiones, *ranking[id])
	}

	slices.SortStableFunc(res.TopExcursiones, func(a, b model.TopExcursion) int {
		return b.Reservas - a.Reservas
	})

	if len(res.TopExcursiones) > model.TopLimit {
		res.TopExcursiones = res.TopExcursiones[:model.TopLimit]
	}

	return res
}
