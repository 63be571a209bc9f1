package router

import (
	"net/http"

	"tourbook/config"
	"tourbook/docs"
	"tourbook/infras/metrics"
	"tourbook/internal/handlers/auth"
	"tourbook/internal/handlers/client"
	"tourbook/internal/handlers/excursion"
	"tourbook/internal/handlers/reservation"
	"tourbook/internal/handlers/search"
	"tourbook/internal/handlers/stats"
	"tourbook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Excursion   excursion.Handler
	Client      client.Handler
	Reservation reservation.Handler
	Search      search.Handler
	Stats       stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	authRole       middleware.AuthRole
	metrics        metrics.Recorder
	cfg            *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.app.RequestID, r.app.Tracing, r.app.RateLimit())

	if corsCfg := r.cfg.App.CORS; corsCfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	if r.cfg.Metrics.Enable {
		router.Method(http.MethodGet, r.cfg.Metrics.Path, r.metrics.Handler())
	}

	docs.SwaggerInfo.Title = r.cfg.App.Name
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.authRole.APIKey, r.authRole.Auth, r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Excursion.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Search.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})
}

func New(
	domainHandlers DomainHandlers,
	app middleware.AppMiddleware,
	authRole middleware.AuthRole,
	metrics metrics.Recorder,
	cfg *config.Config,
) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
		metrics:        metrics,
		cfg:            cfg,
	}
}
