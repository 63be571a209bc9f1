// Package repository exposes an entity store through context-aware, traced
// accessors. Domain repositories embed Repository and add their lookups.
package repository

import (
	"context"
	"errors"
	"fmt"

	"tourbook/infras/otel"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/lookup"
	"tourbook/shared/store"
)

type Repository[T any] struct {
	store   *store.Store[T]
	otel    otel.Otel
	entitas string
}

func NewRepository[T any](entitasName string, st *store.Store[T], otl otel.Otel) Repository[T] {
	return Repository[T]{
		store:   st,
		otel:    otl,
		entitas: entitasName,
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

// Store returns the underlying store for request-state bookkeeping.
func (repo *Repository[T]) Store() *store.Store[T] {
	return repo.store
}

func (repo *Repository[T]) notFound() error {
	return failure.NotFound(repo.entitas + " not found")
}

// Insert appends the entity produced by build. build sees the current collection.
func (repo *Repository[T]) Insert(ctx context.Context, build func(current []T) (T, error)) (res T, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = repo.store.Insert(build)
	if err != nil {
		return res, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return res, nil
}

func (repo *Repository[T]) Get(ctx context.Context, id string) (T, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	scope.SetAttribute("id", id)

	return repo.store.Find(id)
}

// GetAll returns the entities matching every predicate, in collection order.
func (repo *Repository[T]) GetAll(ctx context.Context, preds ...lookup.Predicate[T]) []T {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	res := repo.store.Filter(lookup.All(preds...))
	scope.SetAttribute("count", len(res))

	return res
}

func (repo *Repository[T]) Count(ctx context.Context) int {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	return repo.store.Len()
}

// Update applies patch in place. An unknown id yields a not found failure.
func (repo *Repository[T]) Update(ctx context.Context, id string, patch func(current T) (T, error)) (res T, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("id", id)

	res, err = repo.store.Replace(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return res, repo.notFound()
	}

	if err != nil {
		return res, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return res, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) (res T, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("id", id)

	res, err = repo.store.Remove(id)
	if errors.Is(err, store.ErrNotFound) {
		return res, repo.notFound()
	}

	return res, err
}
