package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"trivia-backend/application/ports"
)

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	store  ports.HealthChecker
	logger *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store ports.HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "healthy")
}

// Ready handles GET /ready. It fails while the store cannot be reached.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Readiness check failed", zap.Error(err))
		writeStatus(w, http.StatusServiceUnavailable, "unavailable")
		return
	}
	writeStatus(w, http.StatusOK, "ready")
}

func writeStatus(w http.ResponseWriter, status int, state string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"status":"` + state + `"}`))
}
