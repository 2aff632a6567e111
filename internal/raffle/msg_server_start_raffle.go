package raffle

import (
	"context"
	"math"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// Start opens a raffle at the current tick. The origin must be an allowed
// manager and signed: the signer becomes the raffle's manager.
//
// Tickets cost price and can be bought until now+length; the winner is drawn
// at now+length+delay. A non-empty nextRaffleCall is dispatched as the
// manager at payout instead of closing the raffle.
func (c *Controller) Start(
	ctx context.Context,
	origin runtime.Origin,
	price sdkmath.Int,
	length runtime.Tick,
	delay runtime.Tick,
	nextRaffleCall []byte,
) error {
	if err := c.managerOrigin.EnsureOrigin(origin); err != nil {
		return err
	}
	manager, err := runtime.EnsureSigned(origin)
	if err != nil {
		return err
	}
	if price.IsNil() || price.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidPrice, "price %s", price)
	}

	var (
		config   *Config
		newIndex uint32
	)
	err = c.work.Atomically(ctx, func(store Store, ledger Ledger) error {
		active, err := store.Config(ctx)
		if err != nil {
			return err
		}
		if active != nil {
			return ErrAlreadyActive
		}

		index, err := store.RoundIndex(ctx)
		if err != nil {
			return err
		}
		if index == math.MaxUint32 {
			return errorsmod.Wrap(ErrOverflow, "round index")
		}
		newIndex = index + 1

		// Make sure the pot exists.
		if err := ledger.DepositIfEmpty(ctx, c.accountID, ledger.MinimumBalance()); err != nil {
			return err
		}

		config = &Config{
			Price:          price,
			Start:          c.host.Now(),
			Length:         length,
			Delay:          delay,
			Manager:        manager,
			NextRaffleCall: nextRaffleCall,
		}
		if err := store.SetConfig(ctx, config); err != nil {
			return err
		}
		return store.SetRoundIndex(ctx, newIndex)
	})
	if err != nil {
		return err
	}

	logger.Info("raffle: started",
		zap.Uint32("round index", newIndex),
		zap.Stringer("manager", manager),
		zap.Stringer("price", price),
		zap.Uint64("start", uint64(config.Start)),
		zap.Uint64("payout tick", uint64(config.PayoutTick())),
		zap.Bool("repeat", config.Repeats()),
	)

	c.host.EmitEvent(runtime.NewEvent(ModuleName, EventTypeRaffleStarted,
		runtime.NewAttribute(AttributeKeyManager, manager.String()),
		runtime.NewAttribute(AttributeKeyRoundIndex, strconv.FormatUint(uint64(newIndex), 10)),
		runtime.NewAttribute(AttributeKeyPrice, price.String()),
		runtime.NewAttribute(AttributeKeyPayoutTick, strconv.FormatUint(uint64(config.PayoutTick()), 10)),
		runtime.NewAttribute(AttributeKeyRepeat, strconv.FormatBool(config.Repeats())),
	))
	return nil
}
