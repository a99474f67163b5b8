package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
)

// CreateEmployeeRequest defines the body for adding an employee
type CreateEmployeeRequest struct {
	Name   string  `json:"name" validate:"required"`
	Title  string  `json:"title"`
	Salary float64 `json:"salary" validate:"gte=0"`
	Status string  `json:"status"`
}

// UpdateEmployeePaymentRequest sets an employee's paid flag. The flag must be present.
type UpdateEmployeePaymentRequest struct {
	Paid *bool `json:"paid" validate:"required"`
}

// ListEmployees returns the client's employees sorted by name
func (h *Handler) ListEmployees(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	employees, err := h.store.ListEmployees(c.Request().Context(), clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to list employees")
	}

	log.Debug("Employees retrieved", zap.Int("count", len(employees)))
	return respondOK(c, http.StatusOK, "Employees retrieved", employees)
}

// CreateEmployee adds an employee to the client's roster
func (h *Handler) CreateEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}

	var req CreateEmployeeRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid employee request", zap.Error(err))
		return respondError(c, http.StatusBadRequest, msg)
	}

	employee := model.NewEmployee(clientID, req.Name, req.Title, req.Salary, req.Status)
	if err := h.store.CreateEmployee(c.Request().Context(), employee); err != nil {
		return respondStoreError(c, log, err, "Failed to create employee")
	}

	log.Info("Employee created", zap.String("employee_id", employee.ID))
	return respondOK(c, http.StatusCreated, "Employee created", employee)
}

// DeleteEmployee removes one of the client's employees
func (h *Handler) DeleteEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}
	id := c.Param("id")

	deleted, err := h.store.DeleteEmployee(c.Request().Context(), id, clientID)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to delete employee")
	}
	if deleted == 0 {
		log.Warn("Employee not found", zap.String("employee_id", id))
		prometheus.RecordNotOwned("employee", "delete")
		return respondError(c, http.StatusNotFound, "Employee not found")
	}

	log.Info("Employee deleted", zap.String("employee_id", id))
	return respondOK(c, http.StatusOK, "Employee deleted", nil)
}

// UpdateEmployeePayment marks an employee paid or unpaid
func (h *Handler) UpdateEmployeePayment(c echo.Context) error {
	log := logger.FromContext(c)
	clientID, ok := requireClientID(c)
	if !ok {
		return nil
	}
	id := c.Param("id")

	var req UpdateEmployeePaymentRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid payment request", zap.Error(err))
		return respondError(c, http.StatusBadRequest, msg)
	}

	updated, err := h.store.UpdateEmployeePaid(c.Request().Context(), id, clientID, *req.Paid)
	if err != nil {
		return respondStoreError(c, log, err, "Failed to update payment status")
	}
	if updated == 0 {
		log.Warn("Employee not found", zap.String("employee_id", id))
		prometheus.RecordNotOwned("employee", "update_paid")
		return respondError(c, http.StatusNotFound, "Employee not found")
	}

	log.Info("Payment status updated", zap.String("employee_id", id), zap.Bool("paid", *req.Paid))
	return respondOK(c, http.StatusOK, "Payment status updated", nil)
}
