package raffle

import (
	errorsmod "cosmossdk.io/errors"
)

// x/raffle module sentinel errors
var (
	ErrNotConfigured        = errorsmod.Register(ModuleName, 2, "a raffle has not been configured")
	ErrAlreadyActive        = errorsmod.Register(ModuleName, 3, "a raffle is already in progress")
	ErrAlreadyEnded         = errorsmod.Register(ModuleName, 4, "the raffle has already ended")
	ErrInvalidCall          = errorsmod.Register(ModuleName, 5, "the call is not valid for an open raffle")
	ErrAlreadyParticipating = errorsmod.Register(ModuleName, 6, "already participating in the raffle with this call")
	ErrTooManyCalls         = errorsmod.Register(ModuleName, 7, "too many calls for a single raffle")
	ErrEncodingFailed       = errorsmod.Register(ModuleName, 8, "failed to encode calls")
	ErrUndecodableCall      = errorsmod.Register(ModuleName, 9, "the call could not be decoded")
	ErrOverflow             = errorsmod.Register(ModuleName, 10, "arithmetic overflow")
	ErrInvalidPrice         = errorsmod.Register(ModuleName, 11, "invalid ticket price")
	ErrInvariant            = errorsmod.Register(ModuleName, 12, "raffle invariant violated")
)
