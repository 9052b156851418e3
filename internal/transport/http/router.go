package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apierrors "yieldscan/internal/errors"
	"yieldscan/internal/services"
)

// NewRouter assembles the API router over the fund service.
func NewRouter(service *services.FundService, logger *slog.Logger) chi.Router {
	errorHandler := apierrors.NewErrorHandler(logger)
	fundHandler := NewFundHandler(service, logger, errorHandler)
	healthHandler := NewHealthHandler(service, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/facets", fundHandler.Facets)
		r.Mount("/funds", fundHandler.Routes())
	})

	return r
}
