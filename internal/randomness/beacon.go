// Package randomness provides the runtime's random beacon.
//
// CollectiveFlip chains one seed per tick and mixes the most recent seeds into
// every answer. It is predictable to anyone who knows the genesis seed and is
// meant for low-stakes draws and local hosts, not for adversarial settings.
package randomness

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"golang.org/x/crypto/blake2b"
)

// RandomMaterialLength is the number of trailing tick seeds mixed into an answer.
const RandomMaterialLength = 81

type CollectiveFlip struct {
	mu       sync.RWMutex
	material [][32]byte
	last     [32]byte
	tick     runtime.Tick
}

// NewCollectiveFlip starts a beacon from a genesis seed.
func NewCollectiveFlip(genesis []byte) *CollectiveFlip {
	return &CollectiveFlip{
		last:     blake2b.Sum256(genesis),
		material: make([][32]byte, 0, RandomMaterialLength),
	}
}

// OnTick derives the seed for the new tick from the previous one. It must run
// before any hook that draws randomness for the same tick.
func (c *CollectiveFlip) OnTick(_ context.Context, now runtime.Tick) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var buf [40]byte
	copy(buf[:32], c.last[:])
	binary.LittleEndian.PutUint64(buf[32:], uint64(now))
	c.last = blake2b.Sum256(buf[:])

	if len(c.material) == RandomMaterialLength {
		copy(c.material, c.material[1:])
		c.material = c.material[:RandomMaterialLength-1]
	}
	c.material = append(c.material, c.last)
	c.tick = now
	return nil
}

// Random returns a 32 byte value for subject and the oldest tick whose seed
// contributed to it.
func (c *CollectiveFlip) Random(subject []byte) ([32]byte, runtime.Tick) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	input := make([]byte, 0, len(subject)+32*(len(c.material)+1))
	input = append(input, subject...)
	input = append(input, c.last[:]...)
	for _, seed := range c.material {
		input = append(input, seed[:]...)
	}

	var known runtime.Tick
	if n := runtime.Tick(len(c.material)); n > 0 && c.tick >= n {
		known = c.tick - n + 1
	}
	return blake2b.Sum256(input), known
}
