package di

import (
	"time"

	"tourbook/config"
	"tourbook/infras/metrics"
	clientService "tourbook/internal/domains/client/service"
	excursionService "tourbook/internal/domains/excursion/service"
	reservationService "tourbook/internal/domains/reservation/service"
	"tourbook/shared/notification"
	"tourbook/shared/operation"
	"tourbook/transport/http"
)

func provideRunner(cfg *config.Config, notifier notification.Notifier, recorder metrics.Recorder) operation.Runner {
	latency := time.Duration(cfg.App.Latency.OperationMillis) * time.Millisecond

	return operation.NewRunner(latency, notifier, recorder)
}

// provideLoaders lists the stores filled in the background when the server starts.
func provideLoaders(
	excursions excursionService.Excursion,
	clients clientService.Client,
	reservations reservationService.Reservation,
) http.Loaders {
	return http.Loaders{excursions, clients, reservations}
}
