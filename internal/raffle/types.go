package raffle

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

const (
	// ModuleName defines the module name
	ModuleName = "raffle"

	// ModuleIndex is the module's position in encoded calls.
	ModuleIndex uint8 = 8
)

// DefaultModuleID derives the pot account.
var DefaultModuleID = runtime.ModuleID{'z', 'f', '/', 'r', 'a', 'f', 'f', 'l'}

// Ticket numbers tickets within one settlement window.
type Ticket = uint32

// Params are fixed at construction time.
type Params struct {
	ModuleID runtime.ModuleID
	// MaxCalls bounds both the allow-list and each participant's purchases per round.
	MaxCalls uint32
	// MaxGenerateRandom is the number of draws a bias-free winner selection
	// could spend. Winner selection currently uses a single draw.
	MaxGenerateRandom uint32
}

func DefaultParams() Params {
	return Params{
		ModuleID:          DefaultModuleID,
		MaxCalls:          10,
		MaxGenerateRandom: 10,
	}
}

func (p Params) Validate() error {
	if p.MaxCalls == 0 {
		return fmt.Errorf("max calls must be positive")
	}
	if p.MaxGenerateRandom == 0 {
		return fmt.Errorf("max generate random must be positive")
	}
	return nil
}

// CallID fingerprints an encoded action: its first two bytes and its length.
type CallID struct {
	Module   uint8
	Function uint8
	Length   uint32
}

func (id CallID) String() string {
	return fmt.Sprintf("%d.%d/%d", id.Module, id.Function, id.Length)
}

// CallIDOf fingerprints an encoded action.
func CallIDOf(encoded []byte) (CallID, error) {
	if len(encoded) < 2 {
		return CallID{}, errorsmod.Wrapf(ErrEncodingFailed, "encoded call is %d bytes long", len(encoded))
	}
	return CallID{
		Module:   encoded[0],
		Function: encoded[1],
		Length:   uint32(len(encoded)),
	}, nil
}

// Config describes the active raffle.
type Config struct {
	// Price per entry.
	Price math.Int
	// Start tick of the raffle.
	Start runtime.Tick
	// Length of the ticket window (start + length = end).
	Length runtime.Tick
	// Delay between the end of the window and the draw (end + delay = payout).
	Delay runtime.Tick
	// Manager started the raffle; the repeat call is dispatched as this account.
	Manager runtime.AccountID
	// NextRaffleCall is dispatched at payout when non-empty.
	NextRaffleCall []byte
}

// End is the first tick at which tickets can no longer be bought.
func (c Config) End() runtime.Tick {
	return c.Start.SaturatingAdd(c.Length)
}

// PayoutTick is the tick at which the winner is drawn.
func (c Config) PayoutTick() runtime.Tick {
	return c.End().SaturatingAdd(c.Delay)
}

func (c Config) Repeats() bool {
	return len(c.NextRaffleCall) > 0
}

// Participant records what an account bought in a round. A record whose
// RoundIndex is not the current one is empty, whatever Calls still holds.
type Participant struct {
	RoundIndex uint32
	Calls      []CallID
}

func (p Participant) Contains(id CallID) bool {
	for _, call := range p.Calls {
		if call == id {
			return true
		}
	}
	return false
}
