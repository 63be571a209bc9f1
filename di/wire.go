//go:build wireinject
// +build wireinject

package di

import (
	"tourbook/config"
	"tourbook/infras/jwt"
	"tourbook/infras/kafka"
	"tourbook/infras/metrics"
	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/infras/redis"
	"tourbook/infras/s3"
	"tourbook/permissions"
	"tourbook/shared/cache"
	"tourbook/shared/notification"
	"tourbook/transport/http"
	"tourbook/transport/http/middleware"
	"tourbook/transport/http/router"

	authService "tourbook/internal/domains/auth/service"
	clientRepository "tourbook/internal/domains/client/repository"
	clientService "tourbook/internal/domains/client/service"
	excursionRepository "tourbook/internal/domains/excursion/repository"
	excursionService "tourbook/internal/domains/excursion/service"
	reservationRepository "tourbook/internal/domains/reservation/repository"
	reservationService "tourbook/internal/domains/reservation/service"
	searchService "tourbook/internal/domains/search/service"
	statsService "tourbook/internal/domains/stats/service"
	userRepository "tourbook/internal/domains/user/repository"

	authHandler "tourbook/internal/handlers/auth"
	clientHandler "tourbook/internal/handlers/client"
	excursionHandler "tourbook/internal/handlers/excursion"
	reservationHandler "tourbook/internal/handlers/reservation"
	searchHandler "tourbook/internal/handlers/search"
	statsHandler "tourbook/internal/handlers/stats"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notification.New,
	provideRunner,
)

var excursionDomain = wire.NewSet(
	excursionRepository.NewStore,
	excursionRepository.NewSeeder,
	excursionRepository.New,
	excursionService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.NewStore,
	clientRepository.NewSeeder,
	clientRepository.New,
	clientService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.NewStore,
	reservationRepository.NewSeeder,
	reservationRepository.New,
	reservationService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	excursionDomain,
	clientDomain,
	reservationDomain,
	searchService.New,
	statsService.New,
	authDomain,
	provideLoaders,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	excursionHandler.New,
	clientHandler.New,
	reservationHandler.New,
	searchHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
