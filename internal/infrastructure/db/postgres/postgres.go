// Package postgres is the relational store. Every entity except chat
// transcripts lives here, behind GORM.
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	DSN string
}

// Connect opens the database, configures the connection pool, and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		// Queries are logged through zerolog at the service layer, not by GORM.
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// Unique violations surface as gorm.ErrDuplicatedKey so the
		// repositories can map them to domain errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every relational entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&adminModel{},
		&categoryModel{},
		&brandModel{},
		&productModel{},
		&addressModel{},
		&cartModel{},
		&cartItemModel{},
		&orderModel{},
		&orderLineModel{},
		&paymentModel{},
		&reviewModel{},
	)
}
