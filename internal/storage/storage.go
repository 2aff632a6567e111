package storage

import (
	"context"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

type Storage interface {
	// raffle controller state
	Raffle() raffle.Store

	// ledger balances
	Accounts() ledger.AccountStore

	// raffle and ledger writes in one transaction
	Atomically(ctx context.Context, fn func(raffle.Store, ledger.AccountStore) error) error

	// runtime clock
	GetTick() (runtime.Tick, error)
	UpdateTick(tick runtime.Tick) error

	Close() error
}

var _ Storage = (*SqliteStorage)(nil)
