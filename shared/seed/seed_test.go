package seed_test

import (
	"context"
	"testing"

	"tourbook/infras/postgres"
	"tourbook/shared/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Seed(t *testing.T) {
	fixtures := []string{"CLI-001", "CLI-002"}
	source := seed.NewStatic(fixtures)

	got, err := source.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixtures, got)

	got[0] = "changed"
	again, _ := source.Seed(context.Background())
	assert.Equal(t, "CLI-001", again[0], "callers get their own copy")
}

func TestQuery_SeedWithoutConnection(t *testing.T) {
	tests := []struct {
		name string
		db   *postgres.Connection
	}{
		{name: "nil connection", db: nil},
		{name: "nil read pool", db: &postgres.Connection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := seed.NewQuery[string](tt.db, "client", "SELECT id FROM clientes")

			_, err := source.Seed(context.Background())
			assert.ErrorIs(t, err, seed.ErrNoConnection)
		})
	}
}
