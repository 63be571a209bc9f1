package main

import (
	"tourbook/config"
	"tourbook/di"
	"tourbook/helper"
	"tourbook/shared/constant"
	"tourbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						Tourbook API
// @version					1.0
// @description				Back office for a tour operator: excursion catalog, clients, reservations, search and dashboard statistics.
// @BasePath					/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate && cfg.Seed.Source == constant.SeedSourcePostgres {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
