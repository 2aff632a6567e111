package runtime

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
)

const (
	SystemModuleIndex uint8 = 0
	SystemModuleName        = "system"

	SystemRemark          uint8 = 0
	SystemRemarkWithEvent uint8 = 1

	EventTypeRemarked = "remarked"
)

// RemarkArgs carries an opaque note.
type RemarkArgs struct {
	Remark []byte
}

// System is the always-present module with no-op bookkeeping calls. Its
// remarks are what lightweight clients play to earn raffle tickets.
type System struct {
	events EventEmitter
}

func NewSystem(events EventEmitter) *System {
	return &System{events: events}
}

func (s *System) Index() uint8 { return SystemModuleIndex }

func (s *System) Name() string { return SystemModuleName }

func (s *System) ValidateCall(function uint8, args []byte) error {
	switch function {
	case SystemRemark, SystemRemarkWithEvent:
		return DecodeArgs(args, &RemarkArgs{})
	default:
		return errorsmod.Wrapf(ErrUnknownCall, "system function %d", function)
	}
}

func (s *System) Dispatch(_ context.Context, origin Origin, call Call) error {
	var args RemarkArgs
	if err := DecodeArgs(call.Args, &args); err != nil {
		return err
	}

	switch call.Function {
	case SystemRemark:
		return nil
	case SystemRemarkWithEvent:
		account, err := EnsureSigned(origin)
		if err != nil {
			return err
		}
		s.events.EmitEvent(NewEvent(SystemModuleName, EventTypeRemarked,
			NewAttribute("sender", account.String()),
			NewAttribute("remark", hex.EncodeToString(args.Remark)),
		))
		return nil
	default:
		return errorsmod.Wrapf(ErrUnknownCall, "system function %d", call.Function)
	}
}

// Remark builds a system remark call.
func Remark(remark []byte) (Call, error) {
	return NewCall(SystemModuleIndex, SystemRemark, &RemarkArgs{Remark: remark})
}

// RemarkWithEvent builds a system remark call that records an event.
func RemarkWithEvent(remark []byte) (Call, error) {
	return NewCall(SystemModuleIndex, SystemRemarkWithEvent, &RemarkArgs{Remark: remark})
}
