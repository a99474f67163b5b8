package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/pkg/logger"
)

// GetDashboard returns the client's summary figures
func (h *Handler) GetDashboard(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	stats, err := h.store.DashboardStats(c.Request().Context(), clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to compute dashboard stats")
	}
	return respondOK(c, http.StatusOK, "Dashboard stats retrieved", stats)
}
