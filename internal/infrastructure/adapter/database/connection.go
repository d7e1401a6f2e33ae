package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the database connection lifecycle: connect with retry, expose
// the handle, close on shutdown.
type Manager struct {
	config       *Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	db           *gorm.DB
}

// NewManager creates a new connection manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the connection, verifying it with a ping. Transient failures
// are retried with a fixed delay up to the configured attempt count.
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := m.open()
		if err == nil {
			m.db = db
			m.logger.Info("Database connection established", map[string]any{
				"host":     m.config.Host,
				"database": m.config.Database,
				"attempt":  attempt,
			})
			return db, nil
		}

		lastErr = err
		m.logger.Warn("Database connection failed", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
		if attempt < attempts {
			time.Sleep(m.config.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
	}

	db, err := gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// DB returns the connected database handle
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
