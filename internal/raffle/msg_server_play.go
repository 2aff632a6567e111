package raffle

import (
	"context"
	"math"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// Play dispatches an allowed call as the signed caller and, if it succeeds,
// sells the caller a ticket. The call's own failure is returned unchanged and
// no ticket is sold; its effects stand even when the ticket purchase itself
// is then refused.
func (c *Controller) Play(ctx context.Context, origin runtime.Origin, encodedCall []byte) error {
	caller, err := runtime.EnsureSigned(origin)
	if err != nil {
		return err
	}

	if !c.validator.ValidateCall(ctx, encodedCall) {
		return ErrInvalidCall
	}

	call, err := c.host.Decode(encodedCall)
	if err != nil {
		return errorsmod.Wrap(ErrUndecodableCall, err.Error())
	}

	if err := c.host.Dispatch(ctx, call, origin); err != nil {
		return err
	}

	id, err := CallIDOf(encodedCall)
	if err != nil {
		return err
	}
	return c.enterRaffle(ctx, caller, id)
}

// enterRaffle buys a ticket. The payment and the ticket bookkeeping are one
// unit of work: either the caller pays and holds the ticket, or neither.
func (c *Controller) enterRaffle(ctx context.Context, caller runtime.AccountID, id CallID) error {
	var ticket Ticket
	err := c.work.Atomically(ctx, func(store Store, ledger Ledger) error {
		config, err := store.Config(ctx)
		if err != nil {
			return err
		}
		if config == nil {
			return ErrNotConfigured
		}
		if c.host.Now() >= config.End() {
			return ErrAlreadyEnded
		}

		ticketCount, err := store.TicketsCount(ctx)
		if err != nil {
			return err
		}
		if ticketCount == math.MaxUint32 {
			return errorsmod.Wrap(ErrOverflow, "tickets count")
		}

		index, err := store.RoundIndex(ctx)
		if err != nil {
			return err
		}
		participant, err := store.Participant(ctx, caller)
		if err != nil {
			return err
		}

		if participant.RoundIndex != index {
			participant = Participant{RoundIndex: index}
		} else if participant.Contains(id) {
			return errorsmod.Wrapf(ErrAlreadyParticipating, "%s with %s", caller, id)
		}
		if len(participant.Calls) >= int(c.params.MaxCalls) {
			return errorsmod.Wrapf(ErrTooManyCalls, "%s already holds %d tickets", caller, len(participant.Calls))
		}
		participant.Calls = append(participant.Calls, id)

		// Check the caller has enough funds and send them to the pot.
		if err := ledger.TransferKeepAlive(ctx, caller, c.accountID, config.Price); err != nil {
			return err
		}

		if err := store.SetParticipant(ctx, caller, participant); err != nil {
			return err
		}
		if err := store.SetTicketsCount(ctx, ticketCount+1); err != nil {
			return err
		}
		if err := store.SetTicket(ctx, ticketCount, caller); err != nil {
			return err
		}
		ticket = ticketCount
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("raffle: ticket bought",
		zap.Stringer("who", caller),
		zap.Uint32("ticket", ticket),
		zap.Stringer("call", id),
	)
	c.host.EmitEvent(runtime.NewEvent(ModuleName, EventTypeTicketBought,
		runtime.NewAttribute(AttributeKeyWho, caller.String()),
		runtime.NewAttribute(AttributeKeyTicket, strconv.FormatUint(uint64(ticket), 10)),
	))
	return nil
}
