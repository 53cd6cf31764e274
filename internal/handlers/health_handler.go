// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tabebui/internal/config"
	"tabebui/internal/webutil"
)

// Pinger はDBの疎通確認
type Pinger func(ctx context.Context) error

type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HealthHandler struct {
	ping   Pinger
	logger *slog.Logger
}

func NewHealthHandler(ping Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{ping: ping, logger: logger}
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, HealthStatus{Status: "unavailable", Version: config.AppVersion}, h.logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, HealthStatus{Status: "ok", Version: config.AppVersion}, h.logger)
}
