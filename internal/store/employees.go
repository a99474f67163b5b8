package store

import (
	"context"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/prometheus"
)

// CreateEmployee inserts an employee that already carries its id and client id
func (s *Store) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	defer prometheus.TrackStoreOperation("create_employee")()
	return s.insert(ctx, "employee", employee)
}

// ListEmployees returns the client's employees ordered by name
func (s *Store) ListEmployees(ctx context.Context, clientID string) ([]model.Employee, error) {
	defer prometheus.TrackStoreOperation("list_employees")()
	s.mu.Lock()
	defer s.mu.Unlock()

	employees := []model.Employee{}
	if err := s.scoped(ctx, clientID).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to list employees", err)
	}
	return employees, nil
}

// DeleteEmployee removes the employee if clientID owns it and returns the
// number of rows deleted (0 or 1).
func (s *Store) DeleteEmployee(ctx context.Context, id, clientID string) (int64, error) {
	defer prometheus.TrackStoreOperation("delete_employee")()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.scopedRow(ctx, id, clientID).Delete(&model.Employee{})
	if result.Error != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to delete employee", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateEmployeePaid sets the paid flag if clientID owns the employee and
// returns the number of rows updated (0 or 1).
func (s *Store) UpdateEmployeePaid(ctx context.Context, id, clientID string, paid bool) (int64, error) {
	defer prometheus.TrackStoreOperation("update_employee_paid")()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.scopedRow(ctx, id, clientID).Model(&model.Employee{}).Update("paid", paid)
	if result.Error != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to update employee", result.Error)
	}
	return result.RowsAffected, nil
}
