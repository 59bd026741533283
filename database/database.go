package database

import (
	"fmt"
	"strings"
	"time"

	"quotedrop/internal/domain/billing"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/logging"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Dialector picks the gorm driver. Postgres is the production store; the
// pure-Go sqlite driver serves local development and tests.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "postgres", "postgresql":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// Open connects and migrates. It does not touch the package-level DB.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	switch db.Dialector.Name() {
	case "sqlite":
		// single writer; also keeps an in-memory database on one connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	case "postgres":
		// gen_random_uuid() in the generated DDL
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
			return nil, fmt.Errorf("enable pgcrypto extension: %w", err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&billing.Payment{},
		&proposals.Proposal{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func InitDB(driver, dsn string) error {
	dialector, err := Dialector(driver, dsn)
	if err != nil {
		return err
	}
	db, err := Open(dialector)
	if err != nil {
		return err
	}
	DB = db

	logging.L.Info("connected and migrated", zap.String("driver", db.Dialector.Name()))
	return nil
}
