package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fadilmartias/mock-interview/internal/metrics"
	"github.com/fadilmartias/mock-interview/internal/repository"
)

func newTokenUsecase(t *testing.T) (*TokenUsecase, func()) {
	t.Helper()
	db := openTestDB(t)
	uc := NewTokenUsecase(repository.NewTokenAccountRepository(db), metrics.NewLedger(), 3)
	return uc, func() { closeTestDB(t, db) }
}

func TestGetCountSeedsDefaultOnce(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		n, err := uc.GetCount(ctx, "fresh-user")
		if err != nil {
			t.Fatalf("GetCount failed: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected default 3, got %d", n)
		}
	}
	if seeded := uc.Metrics().AccountsSeeded; seeded != 1 {
		t.Fatalf("expected one seeded account, got %d", seeded)
	}
}

func TestGetCountRejectsEmptyID(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	if _, err := uc.GetCount(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ConsumeToken(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWhitespaceIDsAreAccounts(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	ctx := context.Background()

	n, err := uc.GetCount(ctx, " ")
	if err != nil || n != 3 {
		t.Fatalf("expected 3 for blank id, got %d (%v)", n, err)
	}
	res, err := uc.ConsumeToken(ctx, "\t")
	if err != nil || !res.Allowed || res.Remaining != 2 {
		t.Fatalf("expected allowed with 2 left, got %+v (%v)", res, err)
	}
	if n, _ := uc.GetCount(ctx, " "); n != 3 {
		t.Fatalf("ids must not be trimmed, got %d for %q", n, " ")
	}
}

func TestGetCountAcceptsOddIDs(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	n, err := uc.GetCount(context.Background(), "  weird/id:?#  ")
	if err != nil || n != 3 {
		t.Fatalf("expected 3, got %d (%v)", n, err)
	}
}

func TestConsumeTokenSequence(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	ctx := context.Background()

	if _, err := uc.GetCount(ctx, "u1"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, want := range []int{2, 1, 0} {
		res, err := uc.ConsumeToken(ctx, "u1")
		if err != nil {
			t.Fatalf("ConsumeToken failed: %v", err)
		}
		if !res.Allowed || res.Remaining != want {
			t.Fatalf("expected allowed with %d remaining, got %+v", want, res)
		}
		n, err := uc.GetCount(ctx, "u1")
		if err != nil || n != want {
			t.Fatalf("expected count %d after consume, got %d (%v)", want, n, err)
		}
	}

	res, err := uc.ConsumeToken(ctx, "u1")
	if err != nil {
		t.Fatalf("ConsumeToken failed: %v", err)
	}
	if res.Allowed || res.Remaining != 0 {
		t.Fatalf("expected exhausted result, got %+v", res)
	}
	if n, _ := uc.GetCount(ctx, "u1"); n != 0 {
		t.Fatalf("balance changed on failed consume: %d", n)
	}

	snap := uc.Metrics()
	if snap.TokensConsumed != 3 || snap.ConsumesDenied != 1 {
		t.Fatalf("unexpected metrics: %+v", snap)
	}
}

func TestConsumeTokenSeedsUnknownUser(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	res, err := uc.ConsumeToken(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("ConsumeToken failed: %v", err)
	}
	if !res.Allowed || res.Remaining != 2 {
		t.Fatalf("expected first consume to leave 2, got %+v", res)
	}
}

func TestConsumeTokenConcurrent(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	ctx := context.Background()
	const callers = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
		denied  int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.ConsumeToken(ctx, "racer")
			if err != nil {
				t.Errorf("ConsumeToken failed: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if res.Allowed {
				allowed++
			} else {
				denied++
			}
		}()
	}
	wg.Wait()

	if allowed != 3 || denied != callers-3 {
		t.Fatalf("expected 3 successes and %d failures, got %d/%d", callers-3, allowed, denied)
	}
	if n, err := uc.GetCount(ctx, "racer"); err != nil || n != 0 {
		t.Fatalf("expected final balance 0, got %d (%v)", n, err)
	}
}

func TestApplySeedsKeepsExistingBalances(t *testing.T) {
	uc, _ := newTokenUsecase(t)
	ctx := context.Background()

	if _, err := uc.ConsumeToken(ctx, "test-user-1"); err != nil {
		t.Fatalf("consume: %v", err)
	}
	created, err := uc.ApplySeeds(ctx, map[string]int{"test-user-1": 5, "test-user-2": 0})
	if err != nil {
		t.Fatalf("ApplySeeds failed: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 new account, got %d", created)
	}
	if n, _ := uc.GetCount(ctx, "test-user-1"); n != 2 {
		t.Fatalf("existing balance overwritten: %d", n)
	}
	if n, _ := uc.GetCount(ctx, "test-user-2"); n != 0 {
		t.Fatalf("seeded zero balance not kept: %d", n)
	}
	res, err := uc.ConsumeToken(ctx, "test-user-2")
	if err != nil || res.Allowed {
		t.Fatalf("expected exhausted seeded account, got %+v (%v)", res, err)
	}
}

func TestConsumeTokenUpstreamFailure(t *testing.T) {
	uc, closeDB := newTokenUsecase(t)
	closeDB()

	res, err := uc.ConsumeToken(context.Background(), "u1")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if res.Allowed {
		t.Fatalf("failed consume must not be allowed")
	}
	if uc.Metrics().UpstreamFailures == 0 {
		t.Fatalf("expected upstream failure to be counted")
	}
}
