package repository

import (
	"context"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/internal/domains/client/model"
	"tourbook/shared/constant"
	"tourbook/shared/lookup"
	gRepo "tourbook/shared/repository"
	"tourbook/shared/seed"
	"tourbook/shared/store"
)

const seedQuery = `SELECT id, nombre, email, telefono, to_char(fecha_registro, 'YYYY-MM-DD') AS fecha_registro, reservas,
	to_char(ultima_reserva, 'YYYY-MM-DD') AS ultima_reserva, estado, vip,
	COALESCE(direccion, '') AS direccion, COALESCE(notas, '') AS notas,
	COALESCE(preferencias, '') AS preferencias, categorias_preferidas
FROM clientes ORDER BY posicion`

type Client interface {
	Insert(ctx context.Context, build func(current []model.Client) (model.Client, error)) (model.Client, error)
	Get(ctx context.Context, id string) (model.Client, bool)
	GetAll(ctx context.Context, preds ...lookup.Predicate[model.Client]) []model.Client
	Count(ctx context.Context) int
	Update(ctx context.Context, id string, patch func(current model.Client) (model.Client, error)) (model.Client, error)
	Delete(ctx context.Context, id string) (model.Client, error)
	Store() *store.Store[model.Client]
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
}

func New(st *store.Store[model.Client], otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, st, otel),
	}
}

// NewStore returns the empty client store filled later by the loader.
func NewStore() *store.Store[model.Client] {
	return store.New(model.StoreName, model.IDOf)
}

// NewSeeder picks the configured seed source.
func NewSeeder(cfg *config.Config, db *postgres.Connection) store.Seeder[model.Client] {
	if cfg.Seed.Source == constant.SeedSourcePostgres {
		return seed.NewQuery[model.Client](db, model.TableName, seedQuery)
	}

	return seed.NewStatic(model.Fixtures())
}
