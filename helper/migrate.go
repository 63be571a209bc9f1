package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"tourbook/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type step struct {
	run     func(mig *migrate.Migrate) error
	failure string
	success string
}

var steps = map[string]step{
	"up": {
		run:     func(mig *migrate.Migrate) error { return mig.Up() },
		failure: "error running migrations",
		success: "Catalog tables migrated",
	},
	"step-up": {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(1) },
		failure: "error running next migration",
		success: "Applied next catalog migration",
	},
	"down": {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		failure: "error rolling back migration",
		success: "Rolled back last catalog migration",
	},
	"drop": {
		run:     func(mig *migrate.Migrate) error { return mig.Down() },
		failure: "error rolling back migrations",
		success: "Catalog tables dropped",
	},
}

func databaseURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	name := write.Name
	if cfg.DB.Postgres.Prefix != "" {
		name = cfg.DB.Postgres.Prefix + name
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		name,
		write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)
}

// Run applies one migration action against the write database.
func Run(cfg *config.Config, action string) error {
	s, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := migrate.New(migrationsSource, databaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := s.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", s.failure, err)
	}

	log.Info().Str("action", action).Msg(s.success)

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, "up")
}

func StepUp(cfg *config.Config) error {
	return Run(cfg, "step-up")
}

func Down(cfg *config.Config) error {
	return Run(cfg, "down")
}

func Drop(cfg *config.Config) error {
	return Run(cfg, "drop")
}
