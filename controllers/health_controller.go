package controllers

import (
	"context"
	"net/http"
	"time"

	"hotel-management/response"

	"github.com/gin-gonic/gin"
)

// Pinger là một phụ thuộc có thể kiểm tra sống/chết (database, redis)
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Checks  map[string]Pinger
	Timeout time.Duration
}

func NewHealthController(checks map[string]Pinger) HealthController {
	return HealthController{Checks: checks, Timeout: 2 * time.Second}
}

// Health godoc
// @Summary  Liveness of the API and its database and redis
// @Tags     health
// @Produce  json
// @Success  200 {object} response.HealthBody
// @Failure  503 {object} response.HealthBody
// @Router   /health [get]
func (h HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	body := response.HealthBody{Status: "ok", Checks: make(map[string]string, len(h.Checks))}
	status := http.StatusOK
	for name, check := range h.Checks {
		if err := check.Ping(ctx); err != nil {
			body.Checks[name] = err.Error()
			body.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		body.Checks[name] = "ok"
	}
	c.JSON(status, body)
}
