package repository

import (
	"context"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/internal/domains/excursion/model"
	"tourbook/shared/constant"
	"tourbook/shared/lookup"
	gRepo "tourbook/shared/repository"
	"tourbook/shared/seed"
	"tourbook/shared/store"
)

const seedQuery = `SELECT id, nombre, COALESCE(descripcion_corta, '') AS descripcion_corta,
	COALESCE(descripcion, '') AS descripcion, precio, precio_anterior, ubicacion, duracion,
	max_personas, destacada, categoria, estado, COALESCE(imagen, '') AS imagen,
	imagenes, incluye, no_incluye, horarios, COALESCE(punto_encuentro, '') AS punto_encuentro
FROM excursiones ORDER BY posicion`

type Excursion interface {
	Insert(ctx context.Context, build func(current []model.Excursion) (model.Excursion, error)) (model.Excursion, error)
	Get(ctx context.Context, id string) (model.Excursion, bool)
	GetAll(ctx context.Context, preds ...lookup.Predicate[model.Excursion]) []model.Excursion
	Count(ctx context.Context) int
	Update(ctx context.Context, id string, patch func(current model.Excursion) (model.Excursion, error)) (model.Excursion, error)
	Delete(ctx context.Context, id string) (model.Excursion, error)
	Store() *store.Store[model.Excursion]
}

type repositoryImpl struct {
	gRepo.Repository[model.Excursion]
}

func New(st *store.Store[model.Excursion], otel otel.Otel) Excursion {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, st, otel),
	}
}

func NewStore() *store.Store[model.Excursion] {
	return store.New(model.StoreName, model.IDOf)
}

// NewSeeder picks the configured seed source.
func NewSeeder(cfg *config.Config, db *postgres.Connection) store.Seeder[model.Excursion] {
	if cfg.Seed.Source == constant.SeedSourcePostgres {
		return seed.NewQuery[model.Excursion](db, model.TableName, seedQuery)
	}

	return seed.NewStatic(model.Fixtures())
}
