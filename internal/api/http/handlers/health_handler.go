package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/observability"
	"github.com/jontropati/storefront/internal/persistence"
)

// HealthHandler responds to the liveness string and health probes.
type HealthHandler struct {
	serviceName string
	version     string
	mongo       *persistence.Mongo
	redis       *persistence.Redis
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, mongo *persistence.Mongo, redis *persistence.Redis, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, mongo: mongo, redis: redis, metrics: metrics}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("JontroPati Server is Running!")
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.mongo.Ping(ctx); err != nil {
		depStatus["mongodb"] = err.Error()
		ready = false
	} else {
		depStatus["mongodb"] = "ok"
	}

	if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	requests, errs := h.metrics.Totals()

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
			"requests":     requests,
			"errors":       errs,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message":      "one or more dependencies unavailable",
		"dependencies": depStatus,
	})
}
