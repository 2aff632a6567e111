package storage

import (
	"context"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
)

// UnitOfWork runs the raffle controller's writes and the ledger transfers they
// depend on in a single storage transaction.
type UnitOfWork struct {
	storage Storage
	ledger  *ledger.Ledger
}

var _ raffle.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(storage Storage, ledger *ledger.Ledger) *UnitOfWork {
	return &UnitOfWork{
		storage: storage,
		ledger:  ledger,
	}
}

func (w *UnitOfWork) Atomically(ctx context.Context, fn func(raffle.Store, raffle.Ledger) error) error {
	return w.storage.Atomically(ctx, func(store raffle.Store, accounts ledger.AccountStore) error {
		return fn(store, w.ledger.WithStore(accounts))
	})
}
