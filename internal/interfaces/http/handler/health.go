package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/resale/backend/internal/infrastructure/persistence"
)

// HealthHandler reports process and dependency health
type HealthHandler struct {
	BaseHandler
	db    *persistence.Database
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler. Both dependencies are
// optional; nil checks are skipped.
func NewHealthHandler(db *persistence.Database, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Register attaches the health route at the engine root, outside the
// versioned API group
func (h *HealthHandler) Register(engine *gin.Engine) {
	engine.GET("/healthz", h.Healthz)
}

// HealthStatus is the body of GET /healthz
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz reports liveness and dependency status
func (h *HealthHandler) Healthz(c *gin.Context) {
	status := HealthStatus{Status: "ok", Checks: map[string]string{}}
	code := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status.Checks["database"] = "down"
			status.Status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			status.Checks["database"] = "up"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			status.Checks["redis"] = "down"
			status.Status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			status.Checks["redis"] = "up"
		}
	}

	c.JSON(code, status)
}
