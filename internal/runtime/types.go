package runtime

import (
	"encoding/hex"
	"fmt"
)

// Tick is the host's logical time unit. Tick 0 is genesis; the first Tick call
// moves the runtime to tick 1.
type Tick uint64

// SaturatingAdd adds two ticks, clamping at the maximum value.
func (t Tick) SaturatingAdd(other Tick) Tick {
	sum := t + other
	if sum < t {
		return ^Tick(0)
	}
	return sum
}

// AccountID identifies a ledger account.
type AccountID string

func (a AccountID) String() string {
	return string(a)
}

// ModuleID is a fixed eight byte identifier from which module accounts are derived.
type ModuleID [8]byte

// ParseModuleID converts an eight character string into a ModuleID.
func ParseModuleID(s string) (ModuleID, error) {
	var id ModuleID
	if len(s) != len(id) {
		return id, fmt.Errorf("module id %q must be exactly %d bytes", s, len(id))
	}
	copy(id[:], s)
	return id, nil
}

func (m ModuleID) String() string {
	return string(m[:])
}

const accountIDLength = 32

var moduleAccountPrefix = []byte("modl")

// ModuleAccount derives the account owned by a module: "modl" followed by the
// module id, zero padded to 32 bytes and hex encoded. The derivation allocates
// and encodes on every call; callers that need it repeatedly cache the result.
func ModuleAccount(id ModuleID) AccountID {
	raw := make([]byte, accountIDLength)
	n := copy(raw, moduleAccountPrefix)
	copy(raw[n:], id[:])
	return AccountID("0x" + hex.EncodeToString(raw))
}
