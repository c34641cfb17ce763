package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/matchcore/internal/config"
)

// NowFunc stamps rows in UTC at millisecond precision, the finest every
// supported dialect keeps, so pagination cursors compare exactly.
func NowFunc() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewDB initializes the database connection using the driver and DSN from config.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DB)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.DB.LogSQL {
		logLevel = logger.Info // log SQL queries
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		NowFunc:        NowFunc,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if cfg.DB.Driver == "sqlite" {
		// sqlite allows one writer; a single connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate ensures schema is in sync with models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func dialectorFor(c config.DBConfig) (gorm.Dialector, error) {
	switch c.Driver {
	case "mysql", "":
		return mysql.Open(c.DSN), nil
	case "postgres":
		return postgres.Open(c.DSN), nil
	case "sqlite":
		return sqlite.Open(c.DSN), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", c.Driver)
}
