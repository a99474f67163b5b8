package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
)

// CreateTaskRequest defines the body for adding a task
type CreateTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// UpdateTaskRequest sets a task's done flag. The flag must be present.
type UpdateTaskRequest struct {
	Done *bool `json:"done" validate:"required"`
}

// ListTasks returns the client's tasks, newest first
func (h *Handler) ListTasks(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	tasks, err := h.store.ListTasks(c.Request().Context(), clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to list tasks")
	}
	return respondOK(c, http.StatusOK, "Tasks retrieved", tasks)
}

// CreateTask adds a task to the client's list
func (h *Handler) CreateTask(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid task request", zap.Error(err))
		return respondError(c, http.StatusBadRequest, "Invalid request data")
	}

	task := model.NewTask(clientID, req.Title, req.Priority)
	if err := h.store.CreateTask(c.Request().Context(), task); err != nil {
		return respondStoreError(c, log, err, "Failed to create task")
	}

	log.Info("Task created", zap.String("task_id", task.ID))
	return respondOK(c, http.StatusCreated, "Task created", task)
}

// UpdateTaskStatus sets a task's done flag
func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}
	id := c.Param("id")

	var req UpdateTaskRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid task update request", zap.Error(err))
		return respondError(c, http.StatusBadRequest, msg)
	}

	updated, err := h.store.UpdateTaskDone(c.Request().Context(), id, clientID, *req.Done)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to update task")
	}
	if updated == 0 {
		log.Warn("Task not found", zap.String("task_id", id))
		prometheus.RecordNotOwned("task", "update_done")
		return respondError(c, http.StatusNotFound, "Task not found")
	}

	return respondOK(c, http.StatusOK, "Task updated", nil)
}

// DeleteTask removes one of the client's tasks
func (h *Handler) DeleteTask(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}
	id := c.Param("id")

	deleted, err := h.store.DeleteTask(c.Request().Context(), id, clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to delete task")
	}
	if deleted == 0 {
		log.Warn("Task not found", zap.String("task_id", id))
		prometheus.RecordNotOwned("task", "delete")
		return respondError(c, http.StatusNotFound, "Task not found")
	}

	log.Info("Task deleted", zap.String("task_id", id))
	return respondOK(c, http.StatusOK, "Task deleted", nil)
}
