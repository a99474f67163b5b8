package store

import (
	"context"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/prometheus"
)

// CreateTask inserts a task that already carries its id and client id
func (s *Store) CreateTask(ctx context.Context, task *model.Task) error {
	defer prometheus.TrackStoreOperation("create_task")()
	return s.insert(ctx, "task", task)
}

// ListTasks returns the client's tasks, newest first
func (s *Store) ListTasks(ctx context.Context, clientID string) ([]model.Task, error) {
	defer prometheus.TrackStoreOperation("list_tasks")()
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []model.Task{}
	if err := s.scoped(ctx, clientID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to list tasks", err)
	}
	return tasks, nil
}

// UpdateTaskDone sets the done flag if clientID owns the task and returns
// the number of rows updated (0 or 1).
func (s *Store) UpdateTaskDone(ctx context.Context, id, clientID string, done bool) (int64, error) {
	defer prometheus.TrackStoreOperation("update_task_done")()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.scopedRow(ctx, id, clientID).Model(&model.Task{}).Update("done", done)
	if result.Error != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to update task", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteTask removes the task if clientID owns it and returns the number of
// rows deleted (0 or 1).
func (s *Store) DeleteTask(ctx context.Context, id, clientID string) (int64, error) {
	defer prometheus.TrackStoreOperation("delete_task")()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.scopedRow(ctx, id, clientID).Delete(&model.Task{})
	if result.Error != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to delete task", result.Error)
	}
	return result.RowsAffected, nil
}
