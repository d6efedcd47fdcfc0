package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TokenSeeds maps user ids to the balance they start with.
type TokenSeeds struct {
	Accounts map[string]int `yaml:"accounts"`
}

// LoadTokenSeeds reads a YAML seed file. A missing file yields no seeds.
func LoadTokenSeeds(path string) (*TokenSeeds, error) {
	seeds := &TokenSeeds{Accounts: map[string]int{}}
	if path == "" {
		return seeds, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return seeds, nil
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := validateSeeds(seeds); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return seeds, nil
}

func validateSeeds(seeds *TokenSeeds) error {
	if seeds.Accounts == nil {
		seeds.Accounts = map[string]int{}
	}
	for uid, balance := range seeds.Accounts {
		if uid == "" {
			return fmt.Errorf("account with empty user id")
		}
		if balance < 0 {
			return fmt.Errorf("account %q has negative balance %d", uid, balance)
		}
	}
	return nil
}
