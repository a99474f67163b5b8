// Package store is the tenant-scoped persistence layer.
//
// Every read or write of an employee, task or event row filters on the
// owning client id supplied by the caller, together with the row id where
// one is given. All statements run one at a time behind a single mutex.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store owns the database handle and serializes access to it
type Store struct {
	mu     sync.Mutex
	db     *gorm.DB
	logger *zap.Logger
}

// New migrates the schema and returns a ready Store
func New(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	s := &Store{db: db, logger: logger}

	start := time.Now()
	logger.Info("Starting database migration...")
	if err := db.AutoMigrate(&model.Client{}, &model.Employee{}, &model.Task{}, &model.Event{}); err != nil {
		logger.Error("Database migration failed", zap.Error(err))
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	logger.Info("Database migration completed successfully",
		zap.Duration("duration", time.Since(start)))

	return s, nil
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var one int
	if err := s.db.WithContext(ctx).Raw("SELECT 1").Row().Scan(&one); err != nil {
		return apperr.Wrap(apperr.CodeStorage, "database ping failed", err)
	}
	if one != 1 {
		return apperr.New(apperr.CodeStorage, "database ping returned unexpected result")
	}
	return nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// scoped restricts a query to rows owned by clientID
func (s *Store) scoped(ctx context.Context, clientID string) *gorm.DB {
	return s.db.WithContext(ctx).Where("client_id = ?", clientID)
}

// scopedRow restricts a query to the single row (id, clientID)
func (s *Store) scopedRow(ctx context.Context, id, clientID string) *gorm.DB {
	return s.db.WithContext(ctx).Where("id = ? AND client_id = ?", id, clientID)
}

// insert creates one row, classifying duplicate keys
func (s *Store) insert(ctx context.Context, entity string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Create(value).Error; err != nil {
		return classify(err, "failed to create "+entity)
	}
	return nil
}

// classify turns a driver error into a typed store error
func classify(err error, message string) error {
	if isDuplicateKey(err) {
		return apperr.Wrap(apperr.CodeConstraintViolation, message, err)
	}
	return apperr.Wrap(apperr.CodeStorage, message, err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
