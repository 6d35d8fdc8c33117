package handler

import (
	"net/http"
	"time"

	"cashper-api/pkg/database"
	"cashper-api/pkg/logger"
	"cashper-api/pkg/redis"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db     *database.PostgresDB
	redis  *redis.Client // may be nil
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redisClient,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Checks    map[string]string `json:"checks"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "cashper-api",
		Checks:    map[string]string{},
	}
	status := http.StatusOK

	if err := h.db.Health(ctx); err != nil {
		h.logger.WithError(err).Error("Database health check failed")
		response.Checks["database"] = "unhealthy"
		response.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	} else {
		response.Checks["database"] = "healthy"
	}

	if h.redis != nil {
		if err := h.redis.Health(ctx); err != nil {
			// Redis is an optimization, not a dependency; degraded, not down
			h.logger.WithError(err).Warn("Redis health check failed")
			response.Checks["redis"] = "unhealthy"
		} else {
			response.Checks["redis"] = "healthy"
		}
	}

	writeJSON(w, status, response, h.logger)
}
