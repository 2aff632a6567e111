package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SqliteStorage persists the raffle state, ledger accounts and the runtime
// tick in one sqlite database.
type SqliteStorage struct {
	db *gorm.DB
}

func NewSqliteStorage(path string) (*SqliteStorage, error) {

	logger.Debug("initializing database...", zap.String("path", path))
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// A single connection: transactions never wait on a sibling connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&RaffleState{},
		&RaffleParticipant{},
		&RaffleTicket{},
		&LedgerAccount{},
		&RuntimeState{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := db.FirstOrCreate(&RaffleState{}, RaffleState{ID: singletonID}).Error; err != nil {
		return nil, err
	}
	if err := db.FirstOrCreate(&RuntimeState{}, RuntimeState{ID: singletonID}).Error; err != nil {
		return nil, err
	}

	logger.Debug("initializing database... done")
	return &SqliteStorage{
		db: db,
	}, nil
}

// Raffle returns the raffle controller's view of the database.
func (s *SqliteStorage) Raffle() raffle.Store {
	return &RaffleStore{db: s.db}
}

// Accounts returns the ledger's view of the database.
func (s *SqliteStorage) Accounts() ledger.AccountStore {
	return &AccountStore{db: s.db}
}

// Atomically runs fn with raffle and account views bound to one transaction.
func (s *SqliteStorage) Atomically(ctx context.Context, fn func(raffle.Store, ledger.AccountStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RaffleStore{db: tx}, &AccountStore{db: tx})
	})
}

func (s *SqliteStorage) GetTick() (runtime.Tick, error) {
	var state RuntimeState
	if err := s.db.Take(&state, singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return runtime.Tick(state.Tick), nil
}

func (s *SqliteStorage) UpdateTick(tick runtime.Tick) error {
	return s.db.Save(&RuntimeState{ID: singletonID, Tick: uint64(tick)}).Error
}

func (s *SqliteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
