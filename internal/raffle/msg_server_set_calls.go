package raffle

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// SetCalls replaces the allow-list used by AllowList with the fingerprints of
// the given encoded calls. An empty list clears it. Manager origin only.
func (c *Controller) SetCalls(ctx context.Context, origin runtime.Origin, calls [][]byte) error {
	if err := c.managerOrigin.EnsureOrigin(origin); err != nil {
		return err
	}
	if len(calls) > int(c.params.MaxCalls) {
		return errorsmod.Wrapf(ErrTooManyCalls, "%d calls, at most %d", len(calls), c.params.MaxCalls)
	}

	indices := make([]CallID, 0, len(calls))
	for _, call := range calls {
		id, err := CallIDOf(call)
		if err != nil {
			return err
		}
		if _, err := c.host.Decode(call); err != nil {
			return errorsmod.Wrap(ErrUndecodableCall, err.Error())
		}
		indices = append(indices, id)
	}

	if err := c.store.SetCallIndices(ctx, indices); err != nil {
		return err
	}

	logger.Info("raffle: calls updated", zap.Int("calls", len(indices)))
	c.host.EmitEvent(runtime.NewEvent(ModuleName, EventTypeCallsUpdated,
		runtime.NewAttribute(AttributeKeyCalls, strconv.Itoa(len(indices))),
	))
	return nil
}
