package db

import (
	"fmt"
	"strings"

	"github.com/storefront-dev/storefront/internal/config"
	"github.com/storefront-dev/storefront/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// Options is the gorm configuration every connection in the service uses.
// TranslateError maps driver specific uniqueness errors to gorm.ErrDuplicatedKey.
func Options(logLevel string) *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(GormLogLevel(logLevel)),
	}
}

func ConnectDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DBDriver, cfg.DatabaseURL)

	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, Options(cfg.GormLogLevel))

	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()

	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return conn, nil
}

func MigrateDatabase(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	}

	for _, table := range tables {
		if err := conn.AutoMigrate(table); err != nil {
			return fmt.Errorf("migrate %T: %w", table, err)
		}
	}

	return nil
}

func GormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
