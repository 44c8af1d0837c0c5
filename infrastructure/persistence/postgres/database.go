// Package postgres stores categories and questions in a relational database
// through gorm. Production uses PostgreSQL; any gorm dialector works.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trivia-backend/application/ports"
)

// PoolSettings tunes the database/sql connection pool
type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store implements ports.Store on top of gorm
type Store struct {
	db         *gorm.DB
	sqlDB      *sql.DB
	categories *CategoryRepository
	questions  *QuestionRepository
	logger     *zap.Logger
}

var _ ports.Store = (*Store)(nil)

// OpenPostgres connects to PostgreSQL using a DSN or URL
func OpenPostgres(dsn string, pool PoolSettings, logger *zap.Logger) (*Store, error) {
	return Open(postgres.Open(dsn), pool, logger)
}

// Open connects through any gorm dialector and configures the pool
func Open(dialector gorm.Dialector, pool PoolSettings, logger *zap.Logger) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	logger.Info("Database connected", zap.String("dialect", dialector.Name()))

	return &Store{
		db:         db,
		sqlDB:      sqlDB,
		categories: NewCategoryRepository(db),
		questions:  NewQuestionRepository(db),
		logger:     logger,
	}, nil
}

// Migrate creates or updates the categories and questions tables
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&categoryRecord{}, &questionRecord{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	s.logger.Info("Database migrated")
	return nil
}

// Categories implements ports.Store
func (s *Store) Categories() ports.CategoryRepository {
	return s.categories
}

// Questions implements ports.Store
func (s *Store) Questions() ports.QuestionRepository {
	return s.questions
}

// Ping implements ports.HealthChecker
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// Close implements ports.Store
func (s *Store) Close() error {
	return s.sqlDB.Close()
}
