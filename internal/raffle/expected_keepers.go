package raffle

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

//go:generate mockgen -source=expected_keepers.go -package mocks -destination=../testutil/mocks/expected_keepers_mocks.go

// Ledger defines the expected interface of the balances ledger.
type Ledger interface {
	FreeBalance(ctx context.Context, account runtime.AccountID) (math.Int, error)
	MinimumBalance() math.Int
	TransferKeepAlive(ctx context.Context, from, to runtime.AccountID, amount math.Int) error
	DepositIfEmpty(ctx context.Context, account runtime.AccountID, amount math.Int) error
}

// Beacon defines the expected interface of the randomness source. The answer
// must be fresh for the tick being processed.
type Beacon interface {
	Random(subject []byte) ([32]byte, runtime.Tick)
}

// Host defines what the controller needs from the surrounding runtime.
type Host interface {
	Now() runtime.Tick
	Decode(encoded []byte) (runtime.Call, error)
	Dispatch(ctx context.Context, call runtime.Call, origin runtime.Origin) error
	EmitEvent(event runtime.Event)
}

// CallValidator decides whether an encoded action may be played for a ticket.
type CallValidator interface {
	ValidateCall(ctx context.Context, encoded []byte) bool
}
