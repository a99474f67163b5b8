package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
)

// CreateEventRequest defines the body for a calendar entry.
// Omitted optional fields are stored as empty strings.
type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date" validate:"required"`
	StartTime   *string `json:"start_time"`
	EndDate     string  `json:"end_date" validate:"required"`
	EndTime     *string `json:"end_time"`
	Color       string  `json:"color"`
}

// ListEvents returns the client's events by start date
func (h *Handler) ListEvents(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	events, err := h.store.ListEvents(c.Request().Context(), clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to list events")
	}
	return respondOK(c, http.StatusOK, "Events retrieved", events)
}

// CreateEvent adds a calendar entry
func (h *Handler) CreateEvent(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	var req CreateEventRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid event request", zap.Error(err))
		return respondError(c, http.StatusBadRequest, msg)
	}

	event := model.NewEvent(clientID, req.Title, valueOrEmpty(req.Description), model.EventSchedule{
		StartDate: req.StartDate,
		StartTime: valueOrEmpty(req.StartTime),
		EndDate:   req.EndDate,
		EndTime:   valueOrEmpty(req.EndTime),
	}, req.Color)
	if err := h.store.CreateEvent(c.Request().Context(), event); err != nil {
		return respondStoreError(c, log, err, "Failed to create event")
	}

	log.Info("Event created", zap.String("event_id", event.ID))
	return respondOK(c, http.StatusCreated, "Event created", event)
}

// DeleteEvent removes one of the client's events
func (h *Handler) DeleteEvent(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}
	id := c.Param("id")

	deleted, err := h.store.DeleteEvent(c.Request().Context(), id, clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to delete event")
	}
	if deleted == 0 {
		log.Warn("Event not found", zap.String("event_id", id))
		prometheus.RecordNotOwned("event", "delete")
		return respondError(c, http.StatusNotFound, "Event not found")
	}

	log.Info("Event deleted", zap.String("event_id", id))
	return respondOK(c, http.StatusOK, "Event deleted", nil)
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
