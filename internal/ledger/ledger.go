package ledger

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// Ledger holds free balances with an existential deposit: an account exists
// while its balance is at least the minimum balance, and keep-alive transfers
// refuse to take a sender below it.
type Ledger struct {
	store              AccountStore
	existentialDeposit math.Int
}

func New(store AccountStore, existentialDeposit math.Int) *Ledger {
	if existentialDeposit.IsNil() || existentialDeposit.IsNegative() {
		existentialDeposit = math.ZeroInt()
	}
	return &Ledger{
		store:              store,
		existentialDeposit: existentialDeposit,
	}
}

// WithStore returns a ledger with the same existential deposit over store. It
// binds the ledger to a transaction shared with other writers.
func (l *Ledger) WithStore(store AccountStore) *Ledger {
	return &Ledger{
		store:              store,
		existentialDeposit: l.existentialDeposit,
	}
}

func (l *Ledger) FreeBalance(ctx context.Context, account runtime.AccountID) (math.Int, error) {
	return l.store.Balance(ctx, account)
}

// MinimumBalance is the existential deposit.
func (l *Ledger) MinimumBalance() math.Int {
	return l.existentialDeposit
}

// TransferKeepAlive moves amount from one account to another, failing if the
// sender would drop below the minimum balance or the recipient would be
// created with less than it.
func (l *Ledger) TransferKeepAlive(ctx context.Context, from, to runtime.AccountID, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidAmount, "transfer of %s", amount)
	}
	if amount.IsZero() || from == to {
		return nil
	}

	return l.store.Atomically(ctx, func(store AccountStore) error {
		fromBalance, err := store.Balance(ctx, from)
		if err != nil {
			return err
		}
		if fromBalance.LT(amount) {
			return errorsmod.Wrapf(ErrInsufficientBalance, "%s has %s, needs %s", from, fromBalance, amount)
		}
		remaining := fromBalance.Sub(amount)
		if remaining.LT(l.existentialDeposit) {
			return errorsmod.Wrapf(ErrKeepAlive, "%s would be left with %s", from, remaining)
		}

		toBalance, err := store.Balance(ctx, to)
		if err != nil {
			return err
		}
		credited := toBalance.Add(amount)
		if toBalance.IsZero() && credited.LT(l.existentialDeposit) {
			return errorsmod.Wrapf(ErrExistentialDeposit, "%s would be created with %s", to, credited)
		}

		if err := store.SetBalance(ctx, from, remaining); err != nil {
			return err
		}
		if err := store.SetBalance(ctx, to, credited); err != nil {
			return err
		}

		logger.Debug("ledger: transfer", zap.Stringer("from", from), zap.Stringer("to", to), zap.Stringer("amount", amount))
		return nil
	})
}

// DepositIfEmpty creates the account with amount when it holds nothing. An
// existing account is left untouched.
func (l *Ledger) DepositIfEmpty(ctx context.Context, account runtime.AccountID, amount math.Int) error {
	return l.store.Atomically(ctx, func(store AccountStore) error {
		balance, err := store.Balance(ctx, account)
		if err != nil {
			return err
		}
		if !balance.IsZero() {
			return nil
		}
		if amount.IsNil() || amount.IsZero() {
			return nil
		}
		if amount.LT(l.existentialDeposit) {
			return errorsmod.Wrapf(ErrExistentialDeposit, "%s would be created with %s", account, amount)
		}

		logger.Debug("ledger: account created", zap.Stringer("account", account), zap.Stringer("amount", amount))
		return store.SetBalance(ctx, account, amount)
	})
}

// Mint credits new funds to an account. It backs genesis endowments and local
// funding; the raffle itself never mints beyond DepositIfEmpty.
func (l *Ledger) Mint(ctx context.Context, account runtime.AccountID, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidAmount, "mint of %s", amount)
	}
	if amount.IsZero() {
		return nil
	}

	return l.store.Atomically(ctx, func(store AccountStore) error {
		balance, err := store.Balance(ctx, account)
		if err != nil {
			return err
		}
		credited := balance.Add(amount)
		if balance.IsZero() && credited.LT(l.existentialDeposit) {
			return errorsmod.Wrapf(ErrExistentialDeposit, "%s would be created with %s", account, credited)
		}
		return store.SetBalance(ctx, account, credited)
	})
}
