package ledger

import (
	"context"
	"sync"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

// AccountStore persists free balances. A missing account has a zero balance.
type AccountStore interface {
	Balance(ctx context.Context, account runtime.AccountID) (math.Int, error)
	// SetBalance stores the balance; a zero balance removes the account.
	SetBalance(ctx context.Context, account runtime.AccountID, balance math.Int) error
	// Atomically runs fn so that either all of its writes land or none do.
	Atomically(ctx context.Context, fn func(AccountStore) error) error
}

// MemoryAccountStore keeps balances in a map.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	balances map[runtime.AccountID]math.Int
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		balances: make(map[runtime.AccountID]math.Int),
	}
}

func (s *MemoryAccountStore) Balance(_ context.Context, account runtime.AccountID) (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	balance, ok := s.balances[account]
	if !ok {
		return math.ZeroInt(), nil
	}
	return balance, nil
}

func (s *MemoryAccountStore) SetBalance(_ context.Context, account runtime.AccountID, balance math.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if balance.IsZero() {
		delete(s.balances, account)
		return nil
	}
	s.balances[account] = balance
	return nil
}

// Atomically runs fn directly: map writes cannot fail halfway, and callers
// perform every check before their first write.
func (s *MemoryAccountStore) Atomically(_ context.Context, fn func(AccountStore) error) error {
	return fn(s)
}

// Accounts returns the number of accounts with a non-zero balance.
func (s *MemoryAccountStore) Accounts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.balances)
}
