package raffle

import (
	"context"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"go.uber.org/zap"
)

// RejectAll refuses every call; a host using it disables ticket sales.
type RejectAll struct{}

func (RejectAll) ValidateCall(context.Context, []byte) bool {
	return false
}

// AllowList accepts calls whose fingerprint is in the stored call indices.
// Every check reads the whole list, so its cost grows with MaxCalls.
type AllowList struct {
	store Store
}

func NewAllowList(store Store) *AllowList {
	return &AllowList{store: store}
}

func (a *AllowList) ValidateCall(ctx context.Context, encoded []byte) bool {
	id, err := CallIDOf(encoded)
	if err != nil {
		return false
	}

	indices, err := a.store.CallIndices(ctx)
	if err != nil {
		logger.Warn("allow list: cannot read call indices", zap.Error(err))
		return false
	}

	for _, index := range indices {
		if index == id {
			return true
		}
	}
	return false
}
