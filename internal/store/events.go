package store

import (
	"context"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/prometheus"
)

// CreateEvent inserts an event that already carries its id and client id
func (s *Store) CreateEvent(ctx context.Context, event *model.Event) error {
	defer prometheus.TrackStoreOperation("create_event")()
	return s.insert(ctx, "event", event)
}

// ListEvents returns the client's events ordered by start date
func (s *Store) ListEvents(ctx context.Context, clientID string) ([]model.Event, error) {
	defer prometheus.TrackStoreOperation("list_events")()
	s.mu.Lock()
	defer s.mu.Unlock()

	events := []model.Event{}
	if err := s.scoped(ctx, clientID).Order("start_date ASC").Find(&events).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to list events", err)
	}
	return events, nil
}

// DeleteEvent removes the event if clientID owns it and returns the number
// of rows deleted (0 or 1).
func (s *Store) DeleteEvent(ctx context.Context, id, clientID string) (int64, error) {
	defer prometheus.TrackStoreOperation("delete_event")()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.scopedRow(ctx, id, clientID).Delete(&model.Event{})
	if result.Error != nil {
		return 0, apperr.Wrap(apperr.CodeStorage, "failed to delete event", result.Error)
	}
	return result.RowsAffected, nil
}
