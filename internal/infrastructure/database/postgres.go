package database

import (
	"fmt"
	"log"

	"github.com/jamaney/mmtacos-api/internal/config"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities and creates the
// partial unique indexes that back the register's single-writer guarantees.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},

		// Register ledger
		&entity.Order{},
		&entity.CashSession{},
		&entity.OperationalDay{},
		&entity.DailySequence{},

		// Online storefront
		&entity.ClientOrder{},

		// System entities
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// At most one open day, and at most one open session per day, enforced at
	// the database so concurrent terminals cannot double-open.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_day
			ON operational_days (status) WHERE status = 'open'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_session_per_day
			ON cash_sessions (operational_day_id) WHERE status = 'open'`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
