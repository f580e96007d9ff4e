package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"gatepass/internal/cache"
)

// HealthHandler reports whether the service's backing stores are reachable.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB, cache *cache.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// HealthResponse represents the health check body.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Health godoc
// @Summary Liveness check
// @Description Fails only when the database is unreachable. Redis is optional.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()
	resp := HealthResponse{Status: "ok", Database: "ok", Redis: "ok"}
	status := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.Logger().Errorf("healthz: database: %v", err)
		resp.Status, resp.Database = "unavailable", "unavailable"
		status = http.StatusServiceUnavailable
	}

	if err := h.cache.Ping(ctx); err != nil {
		resp.Redis = "unavailable"
	}

	return c.JSON(status, resp)
}
