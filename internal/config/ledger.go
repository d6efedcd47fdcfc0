package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

// DefaultTokenBalance is the balance a user gets on first access.
const DefaultTokenBalance = 3

type LedgerConfig struct {
	DefaultBalance int
	// SeedFile is an optional YAML file of prepopulated balances.
	SeedFile string
}

var (
	ledgerConfig *LedgerConfig
	ledgerOnce   sync.Once
)

func LoadLedgerConfig() *LedgerConfig {
	ledgerOnce.Do(func() {
		balance := DefaultTokenBalance
		if v := os.Getenv("TOKEN_DEFAULT_BALANCE"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				log.Printf("Warning: invalid TOKEN_DEFAULT_BALANCE %q, using %d", v, balance)
			} else {
				balance = n
			}
		}
		ledgerConfig = &LedgerConfig{
			DefaultBalance: balance,
			SeedFile:       os.Getenv("TOKEN_SEED_FILE"),
		}
	})
	return ledgerConfig
}
