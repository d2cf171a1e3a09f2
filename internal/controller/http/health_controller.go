package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/observability"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
)

const readinessTimeout = 2 * time.Second

// ReadinessCheck reports whether a backing store is reachable
type ReadinessCheck func(ctx context.Context) error

// HealthController serves liveness, readiness and metrics endpoints
type HealthController struct {
	ready    ReadinessCheck
	breakers *resilience.CircuitBreakerRegistry
	metrics  *observability.MetricsProvider
}

// NewHealthController creates a new HealthController instance. Any argument
// may be nil.
func NewHealthController(ready ReadinessCheck, breakers *resilience.CircuitBreakerRegistry, metrics *observability.MetricsProvider) *HealthController {
	return &HealthController{
		ready:    ready,
		breakers: breakers,
		metrics:  metrics,
	}
}

// RegisterRoutes registers the health routes on the root router
func (c *HealthController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", c.Health)
	router.GET("/ready", c.Ready)
	if c.metrics != nil && c.metrics.Path() != "" {
		router.GET(c.metrics.Path(), gin.WrapH(c.metrics.Handler()))
	}
}

// Health reports that the process is serving
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Ready pings the database
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /ready [get]
func (c *HealthController) Ready(ctx *gin.Context) {
	body := gin.H{"status": "ready"}
	if c.breakers != nil {
		body["circuit_breakers"] = c.breakers.States()
	}

	if c.ready != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readinessTimeout)
		defer cancel()
		if err := c.ready(pingCtx); err != nil {
			_ = ctx.Error(err)
			body["status"] = "unavailable"
			ctx.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}
	ctx.JSON(http.StatusOK, body)
}
