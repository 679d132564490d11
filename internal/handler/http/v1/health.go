package v1

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck проверка одной зависимости, nil означает что она доступна
type HealthCheck func(ctx context.Context) error

// HealthChecker отчет о состоянии зависимостей сервиса
type HealthChecker struct {
	checks map[string]HealthCheck
}

func NewHealthChecker(checks map[string]HealthCheck) *HealthChecker {
	return &HealthChecker{checks: checks}
}

func (h *HealthChecker) Register(r gin.IRoutes) {
	r.GET("/healthz", h.Handle)
}

// @Summary Dependency health
// @Description Reports the status of Postgres, Redis, MQTT and RabbitMQ
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "All dependencies are up"
// @Failure 503 {object} map[string]interface{} "At least one dependency is down"
// @Router /healthz [get]
func (h *HealthChecker) Handle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	deps := gin.H{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			deps[name] = gin.H{"status": "down", "error": err.Error()}
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = gin.H{"status": "up"}
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":       overall,
		"dependencies": deps,
	})
}
