package raffle

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// Controller owns the raffle state: configuration, round index, participants,
// tickets and the allow-list. It assumes the host serializes every call and
// tick against it.
type Controller struct {
	params        Params
	store         Store
	ledger        Ledger
	work          UnitOfWork
	beacon        Beacon
	host          Host
	validator     CallValidator
	managerOrigin runtime.EnsureOrigin

	// accountID is derived once; the derivation is not free.
	accountID runtime.AccountID
}

func NewController(
	params Params,
	store Store,
	ledger Ledger,
	work UnitOfWork,
	beacon Beacon,
	host Host,
	validator CallValidator,
	managerOrigin runtime.EnsureOrigin,
) *Controller {
	if err := params.Validate(); err != nil {
		panic(err)
	}
	if validator == nil {
		validator = RejectAll{}
	}
	if work == nil {
		work = Direct{Store: store, Ledger: ledger}
	}

	accountID := runtime.ModuleAccount(params.ModuleID)
	logger.Debug("raffle: controller initialized",
		zap.Stringer("pot account", accountID),
		zap.Uint32("max calls", params.MaxCalls),
		zap.Uint32("max generate random", params.MaxGenerateRandom),
	)

	return &Controller{
		params:        params,
		store:         store,
		ledger:        ledger,
		work:          work,
		beacon:        beacon,
		host:          host,
		validator:     validator,
		managerOrigin: managerOrigin,
		accountID:     accountID,
	}
}

func (c *Controller) Params() Params {
	return c.params
}

// AccountID returns the pot account.
func (c *Controller) AccountID() runtime.AccountID {
	return c.accountID
}

// Pot returns the pot account and the amount available for payout. The
// minimum balance is excluded so the pot account is never reaped.
func (c *Controller) Pot(ctx context.Context) (runtime.AccountID, math.Int, error) {
	pot, err := c.pot(ctx, c.ledger)
	return c.accountID, pot, err
}

func (c *Controller) pot(ctx context.Context, ledger Ledger) (math.Int, error) {
	free, err := ledger.FreeBalance(ctx, c.accountID)
	if err != nil {
		return math.ZeroInt(), err
	}
	pot := free.Sub(ledger.MinimumBalance())
	if pot.IsNegative() {
		pot = math.ZeroInt()
	}
	return pot, nil
}

// Config returns the active raffle, or nil.
func (c *Controller) Config(ctx context.Context) (*Config, error) {
	return c.store.Config(ctx)
}

func (c *Controller) RoundIndex(ctx context.Context) (uint32, error) {
	return c.store.RoundIndex(ctx)
}

func (c *Controller) TicketsCount(ctx context.Context) (Ticket, error) {
	return c.store.TicketsCount(ctx)
}

// Ticket returns the owner of a ticket in the current window. Tickets at or
// beyond TicketsCount are reported as absent.
func (c *Controller) Ticket(ctx context.Context, ticket Ticket) (runtime.AccountID, bool, error) {
	count, err := c.store.TicketsCount(ctx)
	if err != nil {
		return "", false, err
	}
	if ticket >= count {
		return "", false, nil
	}
	return c.store.Ticket(ctx, ticket)
}

// Participant returns the account's record for the current round. A stale
// record is reported empty.
func (c *Controller) Participant(ctx context.Context, account runtime.AccountID) (Participant, error) {
	index, err := c.store.RoundIndex(ctx)
	if err != nil {
		return Participant{}, err
	}
	participant, err := c.store.Participant(ctx, account)
	if err != nil {
		return Participant{}, err
	}
	if participant.RoundIndex != index {
		return Participant{RoundIndex: index}, nil
	}
	return participant, nil
}

func (c *Controller) CallIndices(ctx context.Context) ([]CallID, error) {
	return c.store.CallIndices(ctx)
}
