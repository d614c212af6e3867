package transport

import (
	"net/http"

	"barcode-scanner/internal/database"
	"barcode-scanner/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Database map[string]string `json:"database,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	db     database.Service
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db database.Service, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health pings the database
// @Summary health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.Health(r.Context())
	if err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		middleware.RespondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Message: "Database unreachable",
			Error:   err.Error(),
		})
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Message:  "Barcode scanner API is running",
		Database: stats,
	})
}
