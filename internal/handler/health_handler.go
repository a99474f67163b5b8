package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
)

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status            string `json:"status"`
	Uptime            uint64 `json:"uptime"`
	DatabaseConnected bool   `json:"database_connected"`
	Timestamp         string `json:"timestamp"`
}

// HealthCheck handles the health check endpoint
func (h *Handler) HealthCheck(c echo.Context) error {
	resp := HealthResponse{
		Status:            "OK",
		Uptime:            uint64(time.Since(h.startedAt).Seconds()),
		DatabaseConnected: true,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if err := h.store.Ping(c.Request().Context()); err != nil {
		logger.FromContext(c).Error("Health check failed to reach database", zap.Error(err))
		resp.Status = "DEGRADED"
		resp.DatabaseConnected = false
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}

// MetricsHandler exposes Prometheus metrics
func MetricsHandler(c echo.Context) error {
	prometheus.GetPrometheusHandler().ServeHTTP(c.Response(), c.Request())
	return nil
}
