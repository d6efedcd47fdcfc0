package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTokenSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	content := "accounts:\n  test-user-1: 5\n  test-user-2: 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	seeds, err := LoadTokenSeeds(path)
	if err != nil {
		t.Fatalf("LoadTokenSeeds failed: %v", err)
	}
	if len(seeds.Accounts) != 2 || seeds.Accounts["test-user-1"] != 5 || seeds.Accounts["test-user-2"] != 0 {
		t.Fatalf("unexpected seeds: %+v", seeds.Accounts)
	}
}

func TestLoadTokenSeedsMissingFile(t *testing.T) {
	seeds, err := LoadTokenSeeds(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if len(seeds.Accounts) != 0 {
		t.Fatalf("expected no seeds, got %+v", seeds.Accounts)
	}
}

func TestLoadTokenSeedsRejectsNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	if err := os.WriteFile(path, []byte("accounts:\n  u1: -1\n"), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	if _, err := LoadTokenSeeds(path); err == nil {
		t.Fatalf("expected error for negative balance")
	}
}
