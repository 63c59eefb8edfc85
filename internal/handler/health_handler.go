package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler takes the configured backing stores by name. Stores that
// are not configured are simply left out.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	res := gin.H{"status": "healthy"}

	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			slog.Error("health check failed", "check", name, "error", err)
			res[name] = "disconnected"
			status = http.StatusServiceUnavailable
			continue
		}
		res[name] = "connected"
	}

	if status != http.StatusOK {
		res["status"] = "unhealthy"
	}

	c.JSON(status, res)
}
