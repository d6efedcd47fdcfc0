package config

import (
	"os"
	"sync"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
	// Path is the database file used by the sqlite driver.
	Path string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		driver := os.Getenv("DB_DRIVER")
		if driver == "" {
			driver = DriverPostgres
		}
		tz := os.Getenv("DB_TIMEZONE")
		if tz == "" {
			tz = "UTC"
		}
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./data/mock-interview.db"
		}
		dbConfig = &DBConfig{
			Driver:   driver,
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
			TimeZone: tz,
			Path:     path,
		}
	})
	return dbConfig
}
