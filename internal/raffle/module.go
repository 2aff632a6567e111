package raffle

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

// Call functions exposed by the raffle module.
const (
	FunctionPlay        uint8 = 0
	FunctionSetCalls    uint8 = 1
	FunctionStartRaffle uint8 = 2
)

type PlayArgs struct {
	Call []byte
}

type SetCallsArgs struct {
	Calls [][]byte
}

type StartRaffleArgs struct {
	Price          string
	Length         uint64
	Delay          uint64
	NextRaffleCall []byte
}

func (a StartRaffleArgs) price() (math.Int, error) {
	price, ok := math.NewIntFromString(a.Price)
	if !ok {
		return math.Int{}, errorsmod.Wrapf(ErrInvalidPrice, "%q is not an integer", a.Price)
	}
	return price, nil
}

// Module exposes the controller as a dispatchable runtime module.
type Module struct {
	controller *Controller
}

func NewModule(controller *Controller) *Module {
	return &Module{controller: controller}
}

func (m *Module) Index() uint8 { return ModuleIndex }

func (m *Module) Name() string { return ModuleName }

func (m *Module) ValidateCall(function uint8, args []byte) error {
	switch function {
	case FunctionPlay:
		return runtime.DecodeArgs(args, &PlayArgs{})
	case FunctionSetCalls:
		return runtime.DecodeArgs(args, &SetCallsArgs{})
	case FunctionStartRaffle:
		var start StartRaffleArgs
		if err := runtime.DecodeArgs(args, &start); err != nil {
			return err
		}
		_, err := start.price()
		return err
	default:
		return errorsmod.Wrapf(runtime.ErrUnknownCall, "raffle function %d", function)
	}
}

func (m *Module) Dispatch(ctx context.Context, origin runtime.Origin, call runtime.Call) error {
	switch call.Function {
	case FunctionPlay:
		var args PlayArgs
		if err := runtime.DecodeArgs(call.Args, &args); err != nil {
			return err
		}
		return m.controller.Play(ctx, origin, args.Call)
	case FunctionSetCalls:
		var args SetCallsArgs
		if err := runtime.DecodeArgs(call.Args, &args); err != nil {
			return err
		}
		return m.controller.SetCalls(ctx, origin, args.Calls)
	case FunctionStartRaffle:
		var args StartRaffleArgs
		if err := runtime.DecodeArgs(call.Args, &args); err != nil {
			return err
		}
		price, err := args.price()
		if err != nil {
			return err
		}
		return m.controller.Start(ctx, origin, price, runtime.Tick(args.Length), runtime.Tick(args.Delay), args.NextRaffleCall)
	default:
		return errorsmod.Wrapf(runtime.ErrUnknownCall, "raffle function %d", call.Function)
	}
}

// PlayCall builds a raffle play call wrapping an encoded action.
func PlayCall(encodedCall []byte) (runtime.Call, error) {
	return runtime.NewCall(ModuleIndex, FunctionPlay, &PlayArgs{Call: encodedCall})
}

// SetCallsCall builds a raffle set_calls call.
func SetCallsCall(calls [][]byte) (runtime.Call, error) {
	return runtime.NewCall(ModuleIndex, FunctionSetCalls, &SetCallsArgs{Calls: calls})
}

// StartRaffleCall builds a raffle start call.
func StartRaffleCall(price math.Int, length, delay runtime.Tick, nextRaffleCall []byte) (runtime.Call, error) {
	return runtime.NewCall(ModuleIndex, FunctionStartRaffle, &StartRaffleArgs{
		Price:          price.String(),
		Length:         uint64(length),
		Delay:          uint64(delay),
		NextRaffleCall: nextRaffleCall,
	})
}

// RepeatingStartRaffleCall builds a start call that re-arms the raffle with the
// same price, length and delay the given number of times.
func RepeatingStartRaffleCall(price math.Int, length, delay runtime.Tick, repetitions int) (runtime.Call, error) {
	call, err := StartRaffleCall(price, length, delay, nil)
	if err != nil {
		return runtime.Call{}, err
	}
	for i := 0; i < repetitions; i++ {
		call, err = StartRaffleCall(price, length, delay, call.Encode())
		if err != nil {
			return runtime.Call{}, err
		}
	}
	return call, nil
}
