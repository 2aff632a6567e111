package runtime

import (
	errorsmod "cosmossdk.io/errors"
)

const Codespace = "runtime"

// runtime sentinel errors
var (
	ErrBadOrigin       = errorsmod.Register(Codespace, 2, "bad origin")
	ErrUndecodable     = errorsmod.Register(Codespace, 3, "call could not be decoded")
	ErrUnknownModule   = errorsmod.Register(Codespace, 4, "unknown module")
	ErrUnknownCall     = errorsmod.Register(Codespace, 5, "unknown call")
	ErrHalted          = errorsmod.Register(Codespace, 6, "runtime halted")
	ErrDuplicateModule = errorsmod.Register(Codespace, 7, "module index already registered")
)
