package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "hangar-next/mxops/internal/models/gorm"
)

var ORMDB *gorm.DB

// InitORM opens the snapshot database. DB_DRIVER selects postgres or
// sqlite; sqlite is the default so a bare checkout runs without services.
func InitORM() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"),
			os.Getenv("PG_HOST"), os.Getenv("PG_PORT"), os.Getenv("PG_DB"))
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "mxops.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if err := db.AutoMigrate(&gormModels.StateSnapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	ORMDB = db
	log.Printf("Connected to %s via GORM", driver)
	return db, nil
}
