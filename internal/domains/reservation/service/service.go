package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tourbook/config"
	"tourbook/infras/otel"
	clientRepo "tourbook/internal/domains/client/repository"
	excursionRepo "tourbook/internal/domains/excursion/repository"
	"tourbook/internal/domains/reservation/model"
	"tourbook/internal/domains/reservation/model/dto"
	"tourbook/internal/domains/reservation/repository"
	"tourbook/shared/constant"
	"tourbook/shared/lookup"
	"tourbook/shared/notification"
	"tourbook/shared/operation"
	"tourbook/shared/store"
	"tourbook/shared/validator"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, req dto.CreateReservationRequest) (model.Reservation, error)
	Get(ctx context.Context, id string) (model.Reservation, bool)
	Update(ctx context.Context, id string, req dto.UpdateReservationRequest) (model.Reservation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter dto.ReservationFilter) []model.Reservation
	ByStatus(ctx context.Context, status string) []model.Reservation
	ByClient(ctx context.Context, clientID string) []model.Reservation
	ByExcursion(ctx context.Context, excursionID string) []model.Reservation
	Status(ctx context.Context) store.Status
}

type serviceImpl struct {
	repo       repository.Reservation
	clients    clientRepo.Client
	excursions excursionRepo.Excursion
	seeder     store.Seeder[model.Reservation]
	runner     operation.Runner
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	clients clientRepo.Client,
	excursions excursionRepo.Excursion,
	seeder store.Seeder[model.Reservation],
	runner operation.Runner,
	cfg *config.Config,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		clients:    clients,
		excursions: excursions,
		seeder:     seeder,
		runner:     runner,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Load(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	delay := time.Duration(s.cfg.App.Latency.LoadMillis) * time.Millisecond

	if err = s.repo.Store().Load(ctx, s.seeder, delay); err != nil {
		log.Error().Err(err).Msg("failed to load reservations")

		return fmt.Errorf("failed to load reservations: %w", err)
	}

	log.Info().Int("count", s.repo.Count(ctx)).Msg("reservations loaded")

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationCreate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Insert(ctx, func(current []model.Reservation) (model.Reservation, error) {
			return s.resolve(ctx, req, req.ToModel(store.NextSequentialID(current, model.IDOf, model.IDPrefix))), nil
		})
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Reserva creada", fmt.Sprintf("Reserva %s registrada", res.ID)), nil
	})

	return res, err
}

// resolve fills names and total from the referenced client and excursion.
// Dangling references are kept as they are.
func (s *serviceImpl) resolve(ctx context.Context, req dto.CreateReservationRequest, r model.Reservation) model.Reservation {
	if r.ClienteNombre == constant.Empty {
		if client, ok := s.clients.Get(ctx, r.ClienteID); ok {
			r.ClienteNombre = client.Nombre
		}
	}

	excursion, found := s.excursions.Get(ctx, r.ExcursionID)
	if !found {
		log.Warn().Str("excursion_id", r.ExcursionID).Msg("reservation references an unknown excursion")

		return r
	}

	if r.ExcursionNombre == constant.Empty {
		r.ExcursionNombre = excursion.Nombre
	}

	if req.Total == nil {
		r.Total = excursion.Precio * float64(r.Personas)
	}

	return r
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.Reservation, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()

	return s.repo.Get(ctx, id)
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationUpdate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Update(ctx, id, func(current model.Reservation) (model.Reservation, error) {
			return req.Apply(current), nil
		})
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Reserva actualizada", fmt.Sprintf("Reserva %s actualizada", res.ID)), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.runner.Run(ctx, s.repo.Store(), store.OperationDelete, func(ctx context.Context) (notification.Notification, error) {
		removed, err := s.repo.Delete(ctx, id)
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Reserva eliminada", fmt.Sprintf("Reserva %s eliminada", removed.ID)), nil
	})
}

func (s *serviceImpl) List(ctx context.Context, filter dto.ReservationFilter) []model.Reservation {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.List")
	defer scope.End()

	preds := []lookup.Predicate[model.Reservation]{}

	if filter.Estado != constant.Empty {
		preds = append(preds, model.ByStatus(filter.Estado))
	}

	if filter.Cliente != constant.Empty {
		preds = append(preds, model.ByClient(filter.Cliente))
	}

	if filter.Excursion != constant.Empty {
		preds = append(preds, model.ByExcursion(filter.Excursion))
	}

	return s.repo.GetAll(ctx, preds...)
}

func (s *serviceImpl) ByStatus(ctx context.Context, status string) []model.Reservation {
	return s.repo.GetAll(ctx, model.ByStatus(status))
}

func (s *serviceImpl) ByClient(ctx context.Context, clientID string) []model.Reservation {
	return s.repo.GetAll(ctx, model.ByClient(clientID))
}

func (s *serviceImpl) ByExcursion(ctx context.Context, excursionID string) []model.Reservation {
	return s.repo.GetAll(ctx, model.ByExcursion(excursionID))
}

func (s *serviceImpl) Status(_ context.Context) store.Status {
	return s.repo.Store().Status()
}
