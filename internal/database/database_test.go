package database

import (
	"path/filepath"
	"testing"

	"github.com/fadilmartias/mock-interview/internal/config"
)

func TestOpenSQLite(t *testing.T) {
	db, err := Open(&config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "nested", "test.db"),
	}, false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, table := range []string{"token_accounts", "interviews", "feedbacks"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	sqlDB, _ := db.DB()
	_ = sqlDB.Close()
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(&config.DBConfig{Driver: "oracle"}, false); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
