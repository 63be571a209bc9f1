package repository

import (
	"context"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/internal/domains/reservation/model"
	"tourbook/shared/constant"
	"tourbook/shared/lookup"
	gRepo "tourbook/shared/repository"
	"tourbook/shared/seed"
	"tourbook/shared/store"
)

const seedQuery = `SELECT id, cliente_id, cliente_nombre, excursion_id, excursion_nombre,
	to_char(fecha, 'YYYY-MM-DD') AS fecha, personas, estado, total
FROM reservas ORDER BY posicion`

type Reservation interface {
	Insert(ctx context.Context, build func(current []model.Reservation) (model.Reservation, error)) (model.Reservation, error)
	Get(ctx context.Context, id string) (model.Reservation, bool)
	GetAll(ctx context.Context, preds ...lookup.Predicate[model.Reservation]) []model.Reservation
	Count(ctx context.Context) int
	Update(ctx context.Context, id string, patch func(current model.Reservation) (model.Reservation, error)) (model.Reservation, error)
	Delete(ctx context.Context, id string) (model.Reservation, error)
	Store() *store.Store[model.Reservation]
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(st *store.Store[model.Reservation], otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, st, otel),
	}
}

func NewStore() *store.Store[model.Reservation] {
	return store.New(model.StoreName, model.IDOf)
}

func NewSeeder(cfg *config.Config, db *postgres.Connection) store.Seeder[model.Reservation] {
	if cfg.Seed.Source == constant.SeedSourcePostgres {
		return seed.NewQuery[model.Reservation](db, model.TableName, seedQuery)
	}

	return seed.NewStatic(model.Fixtures())
}
