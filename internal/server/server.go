// Package server assembles the HTTP boundary and runs it until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/qads-development/QADS-Backend/internal/handler"
	"github.com/qads-development/QADS-Backend/internal/middleware"
	"github.com/qads-development/QADS-Backend/pkg/config"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// New builds the echo instance with global middleware and all routes
func New(h *handler.Handler, sessions middleware.SessionResolver, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(prometheus.MetricsMiddleware())
	e.Use(logger.Middleware(log))

	// Public routes
	e.GET("/health", h.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)
	e.POST("/onboarding", h.Onboard)
	e.POST("/login", h.Login)

	// API routes - all require a session
	api := e.Group("/api")
	api.Use(middleware.SessionAuth(sessions))

	api.GET("/dashboard", h.GetDashboard)

	employees := api.Group("/employees")
	employees.GET("", h.ListEmployees)
	employees.POST("", h.CreateEmployee)
	employees.DELETE("/:id", h.DeleteEmployee)
	employees.PUT("/:id/payment", h.UpdateEmployeePayment)

	tasks := api.Group("/tasks")
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.PUT("/:id", h.UpdateTaskStatus)
	tasks.DELETE("/:id", h.DeleteTask)

	events := api.Group("/events")
	events.GET("", h.ListEvents)
	events.POST("", h.CreateEvent)
	events.DELETE("/:id", h.DeleteEvent)

	e.RouteNotFound("/*", handler.NotFound)

	return e
}

// Run serves e until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, e *echo.Echo, cfg config.ServerConfig, log *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server", zap.String("address", cfg.Address()))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
