package store

import (
	"context"
	"errors"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/prometheus"
	"gorm.io/gorm"
)

// CreateClient inserts a new client. A username that is already taken
// fails with apperr.ErrConstraintViolation.
func (s *Store) CreateClient(ctx context.Context, client *model.Client) error {
	defer prometheus.TrackStoreOperation("create_client")()
	return s.insert(ctx, "client", client)
}

// GetClientByUsername looks a client up for login. It is the only query
// that is not scoped to a client id.
func (s *Store) GetClientByUsername(ctx context.Context, username string) (*model.Client, error) {
	defer prometheus.TrackStoreOperation("get_client_by_username")()
	s.mu.Lock()
	defer s.mu.Unlock()

	var client model.Client
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.CodeNotFoundOrNotOwned, "client not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to get client", err)
	}
	return &client, nil
}
