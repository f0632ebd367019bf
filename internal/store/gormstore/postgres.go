package gormstore

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres connects to a PostgreSQL server using a DATABASE_URL
// style DSN and returns a migrated store.
func NewPostgres(dsn string, logMode bool) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: empty DSN")
	}
	// hosting providers hand out postgres:// URLs; normalize to one
	// spelling
	dsn = strings.Replace(dsn, "postgres://", "postgresql://", 1)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return newStore(db)
}
