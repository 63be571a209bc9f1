package handler

import (
	"net/http"

	"tourbook/config"
	"tourbook/di"
	"tourbook/shared/logger"
)

// Handler is the serverless entrypoint. Each cold start builds its own server.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
