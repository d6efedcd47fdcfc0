package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/fadilmartias/mock-interview/internal/metrics"
	"github.com/fadilmartias/mock-interview/internal/model"
)

type TokenAccountStore interface {
	SeedIfAbsent(ctx context.Context, userID string, balance int) (bool, error)
	FindByUserID(ctx context.Context, userID string) (*model.TokenAccount, error)
	ConsumeOne(ctx context.Context, userID string) (bool, int, error)
}

type ConsumeResult struct {
	Allowed   bool
	Remaining int
}

type TokenUsecase struct {
	store          TokenAccountStore
	metrics        *metrics.Ledger
	defaultBalance int
}

func NewTokenUsecase(store TokenAccountStore, m *metrics.Ledger, defaultBalance int) *TokenUsecase {
	if m == nil {
		m = metrics.NewLedger()
	}
	return &TokenUsecase{store: store, metrics: m, defaultBalance: defaultBalance}
}

// GetCount returns the balance, seeding the default for unknown users.
func (uc *TokenUsecase) GetCount(ctx context.Context, userID string) (int, error) {
	if err := validateUserID(userID); err != nil {
		return 0, err
	}
	if err := uc.ensureAccount(ctx, userID); err != nil {
		return 0, err
	}
	account, err := uc.store.FindByUserID(ctx, userID)
	if err != nil {
		return 0, uc.upstream("read balance", userID, err)
	}
	return account.Balance, nil
}

// ConsumeToken spends one token if any is left. Running out is reported
// through Allowed, not as an error.
func (uc *TokenUsecase) ConsumeToken(ctx context.Context, userID string) (ConsumeResult, error) {
	if err := validateUserID(userID); err != nil {
		return ConsumeResult{}, err
	}
	if err := uc.ensureAccount(ctx, userID); err != nil {
		return ConsumeResult{}, err
	}
	allowed, remaining, err := uc.store.ConsumeOne(ctx, userID)
	if err != nil {
		return ConsumeResult{}, uc.upstream("consume token", userID, err)
	}
	uc.metrics.IncrementConsume(allowed)
	if !allowed {
		log.Printf("User %s has no tokens left", userID)
		return ConsumeResult{Allowed: false, Remaining: 0}, nil
	}
	return ConsumeResult{Allowed: true, Remaining: remaining}, nil
}

// Initialize seeds the account if needed and returns its balance.
func (uc *TokenUsecase) Initialize(ctx context.Context, userID string) (int, error) {
	return uc.GetCount(ctx, userID)
}

// ApplySeeds writes prepopulated balances without touching existing accounts.
func (uc *TokenUsecase) ApplySeeds(ctx context.Context, accounts map[string]int) (int, error) {
	ids := make([]string, 0, len(accounts))
	for id := range accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	created := 0
	for _, id := range ids {
		if err := validateUserID(id); err != nil {
			return created, err
		}
		ok, err := uc.store.SeedIfAbsent(ctx, id, accounts[id])
		if err != nil {
			return created, uc.upstream("seed account", id, err)
		}
		if ok {
			created++
			uc.metrics.IncrementAccountsSeeded()
		}
	}
	return created, nil
}

func (uc *TokenUsecase) Metrics() metrics.Snapshot {
	return uc.metrics.GetSnapshot()
}

func (uc *TokenUsecase) ensureAccount(ctx context.Context, userID string) error {
	created, err := uc.store.SeedIfAbsent(ctx, userID, uc.defaultBalance)
	if err != nil {
		return uc.upstream("seed account", userID, err)
	}
	if created {
		uc.metrics.IncrementAccountsSeeded()
		log.Printf("Seeded token account for %s with %d tokens", userID, uc.defaultBalance)
	}
	return nil
}

func (uc *TokenUsecase) upstream(op, userID string, err error) error {
	uc.metrics.IncrementUpstreamFailures()
	log.Printf("Warning: %s for %s failed: %v", op, userID, err)
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}

func validateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return nil
}
