package config

import (
	"os"
	"sync"
	"time"
)

type TokenBackendConfig struct {
	// FunctionURL points at the deployed manage-tokens function.
	FunctionURL string
	APIKey      string
	Timeout     time.Duration
	MaxRetries  int
}

var (
	tokenBackendConfig *TokenBackendConfig
	tokenBackendOnce   sync.Once
)

func LoadTokenBackendConfig() *TokenBackendConfig {
	tokenBackendOnce.Do(func() {
		timeout := 10 * time.Second
		if v := os.Getenv("TOKEN_BACKEND_TIMEOUT"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				timeout = d
			}
		}
		url := os.Getenv("TOKEN_BACKEND_URL")
		if url == "" {
			url = "http://localhost:8080/functions/manage-tokens"
		}
		tokenBackendConfig = &TokenBackendConfig{
			FunctionURL: url,
			APIKey:      os.Getenv("SUPABASE_ANON_KEY"),
			Timeout:     timeout,
			MaxRetries:  2,
		}
	})
	return tokenBackendConfig
}
