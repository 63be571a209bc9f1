package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/internal/domains/client/model"
	"tourbook/internal/domains/client/model/dto"
	"tourbook/internal/domains/client/repository"
	"tourbook/shared/constant"
	"tourbook/shared/lookup"
	"tourbook/shared/notification"
	"tourbook/shared/operation"
	"tourbook/shared/store"
	"tourbook/shared/timezone"
	"tourbook/shared/validator"

	"github.com/rs/zerolog/log"
)

type Client interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, req dto.CreateClientRequest) (model.Client, error)
	Get(ctx context.Context, id string) (model.Client, bool)
	Update(ctx context.Context, id string, req dto.UpdateClientRequest) (model.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter dto.ClientFilter) []model.Client
	ByStatus(ctx context.Context, status string) []model.Client
	Active(ctx context.Context) []model.Client
	Recent(ctx context.Context) []model.Client
	Recurring(ctx context.Context) []model.Client
	VIP(ctx context.Context) []model.Client
	Status(ctx context.Context) store.Status
}

type serviceImpl struct {
	repo   repository.Client
	seeder store.Seeder[model.Client]
	runner operation.Runner
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Client, seeder store.Seeder[model.Client], runner operation.Runner, cfg *config.Config, otel otel.Otel) Client {
	return &serviceImpl{
		repo:   repo,
		seeder: seeder,
		runner: runner,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Load(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	delay := time.Duration(s.cfg.App.Latency.LoadMillis) * time.Millisecond

	if err = s.repo.Store().Load(ctx, s.seeder, delay); err != nil {
		log.Error().Err(err).Msg("failed to load clients")

		return fmt.Errorf("failed to load clients: %w", err)
	}

	log.Info().Int("count", s.repo.Count(ctx)).Msg("clients loaded")

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (res model.Client, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationCreate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Insert(ctx, func(current []model.Client) (model.Client, error) {
			return req.ToModel(store.NextSequentialID(current, model.IDOf, model.IDPrefix)), nil
		})
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Cliente creado", fmt.Sprintf("%s ha sido registrado", res.Nombre)), nil
	})

	return res, err
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.Client, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Get")
	defer scope.End()

	return s.repo.Get(ctx, id)
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateClientRequest) (res model.Client, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationUpdate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Update(ctx, id, func(current model.Client) (model.Client, error) {
			return req.Apply(current), nil
		})
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Cliente actualizado", fmt.Sprintf("Los datos de %s han sido guardados", res.Nombre)), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.runner.Run(ctx, s.repo.Store(), store.OperationDelete, func(ctx context.Context) (notification.Notification, error) {
		removed, err := s.repo.Delete(ctx, id)
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Cliente eliminado", fmt.Sprintf("%s ha sido eliminado", removed.Nombre)), nil
	})
}

func (s *serviceImpl) List(ctx context.Context, filter dto.ClientFilter) []model.Client {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.List")
	defer scope.End()

	preds := []lookup.Predicate[model.Client]{}

	if filter.Estado != "" {
		preds = append(preds, model.ByStatus(filter.Estado))
	}

	if filter.Recientes != nil && *filter.Recientes {
		preds = append(preds, model.RegisteredWithin(constant.RecentDays, timezone.Now()))
	}

	if filter.Recurrentes != nil && *filter.Recurrentes {
		preds = append(preds, model.Recurring())
	}

	if filter.VIP != nil {
		vip := *filter.VIP
		preds = append(preds, func(c model.Client) bool { return c.VIP == vip })
	}

	return s.repo.GetAll(ctx, preds...)
}

func (s *serviceImpl) ByStatus(ctx context.Context, status string) []model.Client {
	return s.repo.GetAll(ctx, model.ByStatus(status))
}

func (s *serviceImpl) Active(ctx context.Context) []model.Client {
	return s.repo.GetAll(ctx, model.Active())
}

// Recent lists clients registered in the last 30 days.
func (s *serviceImpl) Recent(ctx context.Context) []model.Client {
	return s.repo.GetAll(ctx, model.RegisteredWithin(constant.RecentDays, timezone.Now()))
}

func (s *serviceImpl) Recurring(ctx context.Context) []model.Client {
	return s.repo.GetAll(ctx, model.Recurring())
}

func (s *serviceImpl) VIP(ctx context.Context) []model.Client {
	return s.repo.GetAll(ctx, model.VIP())
}

func (s *serviceImpl) Status(_ context.Context) store.Status {
	return s.repo.Store().Status()
}
