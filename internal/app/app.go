// Package app assembles the raffle engine: storage, ledger, beacon, runtime
// and the raffle controller.
package app

import (
	"crypto/rand"
	"fmt"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/config"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/randomness"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/storage"
	"go.uber.org/zap"
)

type App struct {
	Storage    storage.Storage
	Ledger     *ledger.Ledger
	Beacon     *randomness.CollectiveFlip
	Runtime    *runtime.Runtime
	Controller *raffle.Controller
}

// New opens the database and wires the runtime. Tick hooks run beacon first,
// then the raffle settlement.
func New(cfg *config.Config) (*App, error) {
	store, err := storage.NewSqliteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	app, err := NewWithStorage(cfg, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func NewWithStorage(cfg *config.Config, store storage.Storage) (*App, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	minimumBalance, err := cfg.MinimumBalance()
	if err != nil {
		return nil, err
	}
	seed, err := cfg.Seed()
	if err != nil {
		return nil, err
	}
	if seed == nil {
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, fmt.Errorf("generate beacon seed: %w", err)
		}
	}

	logger.Debug("app initialization...",
		zap.String("database", cfg.DatabasePath),
		zap.String("call validator", cfg.CallValidator),
		zap.Int("managers", len(cfg.Managers)),
	)

	ledgerInstance := ledger.New(store.Accounts(), minimumBalance)
	beacon := randomness.NewCollectiveFlip(seed)
	host := runtime.New()

	raffleStore := store.Raffle()
	var validator raffle.CallValidator = raffle.RejectAll{}
	if cfg.CallValidator == config.ValidatorAllowList {
		validator = raffle.NewAllowList(raffleStore)
	}

	controller := raffle.NewController(
		params,
		raffleStore,
		ledgerInstance,
		storage.NewUnitOfWork(store, ledgerInstance),
		beacon,
		host,
		validator,
		cfg.ManagerOrigin(),
	)

	if err := host.Register(runtime.NewSystem(host)); err != nil {
		return nil, err
	}
	if err := host.Register(raffle.NewModule(controller)); err != nil {
		return nil, err
	}
	host.AddTickHook(beacon)
	host.AddTickHook(controller)

	logger.Debug("app initialization... done", zap.Stringer("pot account", controller.AccountID()))
	return &App{
		Storage:    store,
		Ledger:     ledgerInstance,
		Beacon:     beacon,
		Runtime:    host,
		Controller: controller,
	}, nil
}

func (a *App) Close() error {
	return a.Storage.Close()
}
