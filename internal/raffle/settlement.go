package raffle

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// OnTick settles the raffle once its payout tick is reached: it draws a
// ticket, pays the pot to the ticket's owner, resets the ticket window, and
// either re-arms the raffle through the stored call or closes it.
//
// Errors returned here are faults the controller cannot recover from: the
// host is expected to stop processing.
func (c *Controller) OnTick(ctx context.Context, now runtime.Tick) error {
	config, err := c.store.Config(ctx)
	if err != nil {
		return err
	}
	if config == nil || config.PayoutTick() > now {
		return nil
	}

	logger.Debug("raffle: settling...", zap.Uint64("tick", uint64(now)))

	// The payout and the reset are one unit of work. The configuration is
	// cleared before the stored call runs so that the call can start the next
	// raffle.
	var (
		winnerEvent  *runtime.Event
		winnerFields []zap.Field
	)
	err = c.work.Atomically(ctx, func(store Store, ledger Ledger) error {
		raffleBalance, err := c.pot(ctx, ledger)
		if err != nil {
			return err
		}

		ticketsCount, err := store.TicketsCount(ctx)
		if err != nil {
			return err
		}

		// The more tickets an account bought, the higher its chance of winning.
		if ticket := c.ChooseTicket(ticketsCount); ticket != nil {
			winner, found, err := store.Ticket(ctx, *ticket)
			if err != nil {
				return err
			}
			if found {
				if err := ledger.TransferKeepAlive(ctx, c.accountID, winner, raffleBalance); err != nil {
					return errorsmod.Wrapf(ErrInvariant, "payout of %s to %s failed: %s", raffleBalance, winner, err)
				}

				winnerFields = []zap.Field{
					zap.Stringer("winner", winner),
					zap.Uint32("ticket", *ticket),
					zap.Uint32("tickets", ticketsCount),
					zap.Stringer("raffle balance", raffleBalance),
				}
				event := runtime.NewEvent(ModuleName, EventTypeWinner,
					runtime.NewAttribute(AttributeKeyWinner, winner.String()),
					runtime.NewAttribute(AttributeKeyRaffleBalance, raffleBalance.String()),
				)
				winnerEvent = &event
			}
		}

		if err := store.SetTicketsCount(ctx, 0); err != nil {
			return err
		}
		return store.SetConfig(ctx, nil)
	})
	if err != nil {
		return err
	}
	if winnerEvent != nil {
		logger.Info("raffle: winner chosen", winnerFields...)
		c.host.EmitEvent(*winnerEvent)
	}

	if !config.Repeats() {
		logger.Debug("raffle: settling... done, raffle closed")
		return nil
	}

	call, err := c.host.Decode(config.NextRaffleCall)
	if err != nil {
		return errorsmod.Wrapf(ErrInvariant, "next raffle call cannot be decoded: %s", err)
	}
	if err := c.host.Dispatch(ctx, call, runtime.Signed(config.Manager)); err != nil {
		return errorsmod.Wrapf(ErrInvariant, "next raffle call failed: %s", err)
	}

	logger.Debug("raffle: settling... done, raffle repeated", zap.Stringer("call", call))
	return nil
}
