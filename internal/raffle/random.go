package raffle

import (
	"encoding/binary"
)

// ChooseTicket picks a winning ticket among total tickets, or nil when there
// are none.
//
// A single draw reduced modulo total is used, which slightly favours low
// ticket numbers when total is not a power of two. Params.MaxGenerateRandom is
// not spent on rejection sampling here.
func (c *Controller) ChooseTicket(total Ticket) *Ticket {
	if total == 0 {
		return nil
	}

	ticket := c.generateRandomNumber(0) % total
	return &ticket
}

// generateRandomNumber draws from the beacon with subject
// module id || little-endian seed and reads the first four bytes.
func (c *Controller) generateRandomNumber(seed uint32) uint32 {
	subject := make([]byte, len(c.params.ModuleID)+4)
	n := copy(subject, c.params.ModuleID[:])
	binary.LittleEndian.PutUint32(subject[n:], seed)

	random, _ := c.beacon.Random(subject)
	return binary.LittleEndian.Uint32(random[:4])
}
