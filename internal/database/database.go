package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fadilmartias/mock-interview/internal/config"
	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the configured database and migrates the schema.
func Open(dbConfig *config.DBConfig, production bool) (*gorm.DB, error) {
	var (
		dialector gorm.Dialector
		err       error
	)
	switch dbConfig.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(postgresDSN(dbConfig))
	case config.DriverSQLite:
		dialector, err = sqliteDialector(dbConfig.Path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", dbConfig.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}

	switch {
	case dbConfig.Driver == config.DriverSQLite:
		// sqlite allows a single writer; one connection keeps writes serialized.
		sqlDB.SetMaxOpenConns(1)
	case !production:
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	default:
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetMaxOpenConns(200)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.TokenAccount{}, &model.Interview{}, &model.Feedback{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// MustOpen is Open for process startup.
func MustOpen(dbConfig *config.DBConfig, production bool) *gorm.DB {
	db, err := Open(dbConfig, production)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Connected to %s database", dbConfig.Driver)
	return db
}

func postgresDSN(c *config.DBConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host,
		c.User,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
		c.TimeZone,
	)
}

func sqliteDialector(path string) (gorm.Dialector, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database dir: %w", err)
	}
	return sqlite.Open(path + "?_pragma=busy_timeout(5000)"), nil
}
