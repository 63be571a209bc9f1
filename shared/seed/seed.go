// Package seed provides the sources a store is filled from on start-up.
package seed

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"tourbook/infras/postgres"

	"github.com/rs/zerolog/log"
)

var ErrNoConnection = errors.New("seed database is not connected")

// Static serves a fixed fixture list.
type Static[T any] struct {
	items []T
}

func NewStatic[T any](items []T) Static[T] {
	return Static[T]{items: items}
}

func (s Static[T]) Seed(_ context.Context) ([]T, error) {
	return slices.Clone(s.items), nil
}

// Query reads the seed rows with a select statement on the read connection.
type Query[T any] struct {
	db     *postgres.Connection
	entity string
	query  string
}

func NewQuery[T any](db *postgres.Connection, entity, query string) Query[T] {
	return Query[T]{db: db, entity: entity, query: query}
}

func (q Query[T]) Seed(ctx context.Context) ([]T, error) {
	if q.db == nil || q.db.Read == nil {
		return nil, ErrNoConnection
	}

	var items []T
	if err := q.db.Read.SelectContext(ctx, &items, q.query); err != nil {
		log.Error().Err(err).Str("entity", q.entity).Msg("failed to read seed rows")

		return nil, fmt.Errorf("failed to load %s: %w", q.entity, err)
	}

	log.Info().Str("entity", q.entity).Int("rows", len(items)).Msg("seed rows loaded")

	return items, nil
}
