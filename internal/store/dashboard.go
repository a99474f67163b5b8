package store

import (
	"context"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/prometheus"
)

// DashboardStats computes the client's summary from current rows.
//
// Each figure comes from its own scoped query and takes the store lock on
// its own, so writes landing between them can make the figures disagree
// with each other. Each figure is exact for the moment it was read.
func (s *Store) DashboardStats(ctx context.Context, clientID string) (*model.DashboardStats, error) {
	defer prometheus.TrackStoreOperation("dashboard_stats")()

	employees, err := s.countEmployees(ctx, clientID)
	if err != nil {
		return nil, err
	}
	payroll, err := s.sumSalaries(ctx, clientID)
	if err != nil {
		return nil, err
	}
	activeTasks, err := s.countActiveTasks(ctx, clientID)
	if err != nil {
		return nil, err
	}
	events, err := s.countEvents(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		TotalEmployees: employees,
		MonthlyPayroll: payroll,
		ActiveTasks:    activeTasks,
		TotalEvents:    events,
	}, nil
}

func (s *Store) countEmployees(ctx context.Context, clientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.scoped(ctx, clientID).Model(&model.Employee{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to count employees", err)
	}
	return n, nil
}

// sumSalaries totals salaries; no employees sums to 0
func (s *Store) sumSalaries(ctx context.Context, clientID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	row := s.scoped(ctx, clientID).Model(&model.Employee{}).Select("COALESCE(SUM(salary), 0.0)").Row()
	if err := row.Scan(&total); err != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to sum salaries", err)
	}
	return total, nil
}

func (s *Store) countActiveTasks(ctx context.Context, clientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.scoped(ctx, clientID).Model(&model.Task{}).Where("done = ?", false).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to count active tasks", err)
	}
	return n, nil
}

func (s *Store) countEvents(ctx context.Context, clientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.scoped(ctx, clientID).Model(&model.Event{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to count events", err)
	}
	return n, nil
}
