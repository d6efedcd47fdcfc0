package metrics

import (
	"sync"
	"time"
)

// Ledger counts token ledger outcomes since process start.
type Ledger struct {
	mu               sync.RWMutex
	AccountsSeeded   int64     `json:"accounts_seeded"`
	TokensConsumed   int64     `json:"tokens_consumed"`
	ConsumesDenied   int64     `json:"consumes_denied"`
	UpstreamFailures int64     `json:"upstream_failures"`
	LastUpdateTime   time.Time `json:"last_update_time"`
}

func NewLedger() *Ledger {
	return &Ledger{
		LastUpdateTime: time.Now(),
	}
}

func (m *Ledger) IncrementAccountsSeeded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AccountsSeeded++
	m.LastUpdateTime = time.Now()
}

func (m *Ledger) IncrementConsume(allowed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if allowed {
		m.TokensConsumed++
	} else {
		m.ConsumesDenied++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Ledger) IncrementUpstreamFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamFailures++
	m.LastUpdateTime = time.Now()
}

// Snapshot is a copy of the counters that is safe to serialize.
type Snapshot struct {
	AccountsSeeded   int64     `json:"accounts_seeded"`
	TokensConsumed   int64     `json:"tokens_consumed"`
	ConsumesDenied   int64     `json:"consumes_denied"`
	UpstreamFailures int64     `json:"upstream_failures"`
	LastUpdateTime   time.Time `json:"last_update_time"`
}

func (m *Ledger) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		AccountsSeeded:   m.AccountsSeeded,
		TokensConsumed:   m.TokensConsumed,
		ConsumesDenied:   m.ConsumesDenied,
		UpstreamFailures: m.UpstreamFailures,
		LastUpdateTime:   m.LastUpdateTime,
	}
}
