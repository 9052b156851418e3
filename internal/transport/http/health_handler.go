package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yieldscan/internal/services"
)

// HealthHandler reports data availability and snapshot freshness.
type HealthHandler struct {
	service *services.FundService
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service *services.FundService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("component", "health_handler")),
	}
}

// HealthCheck handles GET /api/health. The envelope status mirrors the
// snapshot state so probes can match on it like any other endpoint.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health(r.Context())
	render.JSON(w, r, map[string]interface{}{
		"status": health.Status,
		"data":   health,
	})
}
