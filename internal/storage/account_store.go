package storage

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountStore implements ledger.AccountStore on top of gorm.
type AccountStore struct {
	db *gorm.DB
}

var _ ledger.AccountStore = (*AccountStore)(nil)

func (s *AccountStore) Balance(ctx context.Context, account runtime.AccountID) (math.Int, error) {
	var row LedgerAccount
	err := s.db.WithContext(ctx).Where("address = ?", account.String()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return math.ZeroInt(), nil
	}
	if err != nil {
		return math.Int{}, err
	}

	balance, ok := math.NewIntFromString(row.Balance)
	if !ok {
		return math.Int{}, fmt.Errorf("stored balance %q of %s is not an integer", row.Balance, account)
	}
	return balance, nil
}

func (s *AccountStore) SetBalance(ctx context.Context, account runtime.AccountID, balance math.Int) error {
	db := s.db.WithContext(ctx)
	if balance.IsZero() {
		return db.Where("address = ?", account.String()).Delete(&LedgerAccount{}).Error
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance"}),
	}).Create(&LedgerAccount{Address: account.String(), Balance: balance.String()}).Error
}

func (s *AccountStore) Atomically(ctx context.Context, fn func(ledger.AccountStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AccountStore{db: tx})
	})
}

// Accounts returns the number of stored accounts.
func (s *AccountStore) Accounts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&LedgerAccount{}).Count(&count).Error
	return count, err
}
