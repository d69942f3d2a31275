package database

import (
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Options describes how to reach the store and size its pool
type Options struct {
	Driver       string // postgres | sqlite
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	LogLevel     gormLogger.LogLevel
}

// Connect opens the database and configures the connection pool
func Connect(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  opts.URL,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(opts.URL)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", opts.Driver)
	}

	level := opts.LogLevel
	if level == 0 {
		level = gormLogger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormLogger.New(logrus.StandardLogger(), gormLogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("database: failed to open %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: failed to get connection pool: %w", err)
	}

	// sqlite allows a single writer at a time
	if opts.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		if opts.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		}
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	utils.Info("database connection established", map[string]any{
		"driver": opts.Driver,
	})
	return db, nil
}

// Migrate creates or updates every table the service needs
func Migrate(db *gorm.DB) error {
	utils.Info("migrating database", nil)
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("database: migration failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
