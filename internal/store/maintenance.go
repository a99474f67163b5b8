package store

import (
	"context"
	"fmt"
	"os"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
)

// Backup writes a consistent copy of a SQLite database to path.
// Postgres deployments are expected to use pg_dump instead.
func (s *Store) Backup(ctx context.Context, path string) error {
	defer prometheus.TrackStoreOperation("backup")()
	s.mu.Lock()
	defer s.mu.Unlock()

	if name := s.db.Dialector.Name(); name != "sqlite" {
		return apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("backup is not supported for %s databases", name))
	}
	if _, err := os.Stat(path); err == nil {
		return apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("backup target %s already exists", path))
	}

	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", path).Error; err != nil {
		return apperr.Wrap(apperr.CodeStorage, "backup failed", err)
	}
	s.logger.Info("Database backup written", zap.String("path", path))
	return nil
}

// Vacuum reclaims free space in the database file
func (s *Store) Vacuum(ctx context.Context) error {
	defer prometheus.TrackStoreOperation("vacuum")()
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Exec("VACUUM").Error; err != nil {
		return apperr.Wrap(apperr.CodeStorage, "vacuum failed", err)
	}
	s.logger.Info("Database vacuum completed")
	return nil
}
