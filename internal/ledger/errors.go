package ledger

import (
	errorsmod "cosmossdk.io/errors"
)

const Codespace = "ledger"

// ledger sentinel errors
var (
	ErrInsufficientBalance = errorsmod.Register(Codespace, 2, "insufficient balance")
	ErrKeepAlive           = errorsmod.Register(Codespace, 3, "transfer would kill account")
	ErrExistentialDeposit  = errorsmod.Register(Codespace, 4, "value too low to create account")
	ErrInvalidAmount       = errorsmod.Register(Codespace, 5, "invalid amount")
)
