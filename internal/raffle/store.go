package raffle

import (
	"context"
	"sync"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

// Store persists the controller's state.
type Store interface {
	// Config returns nil when no raffle is configured.
	Config(ctx context.Context) (*Config, error)
	// SetConfig stores the configuration; nil clears it.
	SetConfig(ctx context.Context, config *Config) error

	RoundIndex(ctx context.Context) (uint32, error)
	SetRoundIndex(ctx context.Context, index uint32) error

	TicketsCount(ctx context.Context) (Ticket, error)
	SetTicketsCount(ctx context.Context, count Ticket) error

	// Ticket may return residual owners of previous windows; callers only ask
	// for tickets below TicketsCount.
	Ticket(ctx context.Context, ticket Ticket) (runtime.AccountID, bool, error)
	SetTicket(ctx context.Context, ticket Ticket, owner runtime.AccountID) error

	// Participant returns the zero record for unknown accounts.
	Participant(ctx context.Context, account runtime.AccountID) (Participant, error)
	SetParticipant(ctx context.Context, account runtime.AccountID, participant Participant) error

	CallIndices(ctx context.Context) ([]CallID, error)
	// SetCallIndices replaces the allow-list; an empty list clears it.
	SetCallIndices(ctx context.Context, indices []CallID) error

	// Atomically runs fn so that either all of its writes land or none do.
	Atomically(ctx context.Context, fn func(Store) error) error
}

// UnitOfWork runs fn against a store and a ledger whose writes land together
// or not at all. Every purchase, start and settlement is one unit of work.
type UnitOfWork interface {
	Atomically(ctx context.Context, fn func(store Store, ledger Ledger) error) error
}

// Direct runs units of work straight against a store and a ledger. It suits
// in-memory state, where no write fails once the checks have passed.
type Direct struct {
	Store  Store
	Ledger Ledger
}

func (d Direct) Atomically(_ context.Context, fn func(Store, Ledger) error) error {
	return fn(d.Store, d.Ledger)
}

// MemoryStore keeps the controller's state in memory.
type MemoryStore struct {
	mu           sync.RWMutex
	config       *Config
	roundIndex   uint32
	ticketsCount Ticket
	tickets      map[Ticket]runtime.AccountID
	participants map[runtime.AccountID]Participant
	callIndices  []CallID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tickets:      make(map[Ticket]runtime.AccountID),
		participants: make(map[runtime.AccountID]Participant),
	}
}

func (s *MemoryStore) Config(_ context.Context) (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return nil, nil
	}
	config := *s.config
	config.NextRaffleCall = cloneBytes(s.config.NextRaffleCall)
	return &config, nil
}

func (s *MemoryStore) SetConfig(_ context.Context, config *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if config == nil {
		s.config = nil
		return nil
	}
	stored := *config
	stored.NextRaffleCall = cloneBytes(config.NextRaffleCall)
	s.config = &stored
	return nil
}

func (s *MemoryStore) RoundIndex(_ context.Context) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roundIndex, nil
}

func (s *MemoryStore) SetRoundIndex(_ context.Context, index uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roundIndex = index
	return nil
}

func (s *MemoryStore) TicketsCount(_ context.Context) (Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticketsCount, nil
}

func (s *MemoryStore) SetTicketsCount(_ context.Context, count Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticketsCount = count
	return nil
}

func (s *MemoryStore) Ticket(_ context.Context, ticket Ticket) (runtime.AccountID, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.tickets[ticket]
	return owner, ok, nil
}

func (s *MemoryStore) SetTicket(_ context.Context, ticket Ticket, owner runtime.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[ticket] = owner
	return nil
}

func (s *MemoryStore) Participant(_ context.Context, account runtime.AccountID) (Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participant, ok := s.participants[account]
	if !ok {
		return Participant{}, nil
	}
	participant.Calls = append([]CallID(nil), participant.Calls...)
	return participant, nil
}

func (s *MemoryStore) SetParticipant(_ context.Context, account runtime.AccountID, participant Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	participant.Calls = append([]CallID(nil), participant.Calls...)
	s.participants[account] = participant
	return nil
}

func (s *MemoryStore) CallIndices(_ context.Context) ([]CallID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CallID(nil), s.callIndices...), nil
}

func (s *MemoryStore) SetCallIndices(_ context.Context, indices []CallID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(indices) == 0 {
		s.callIndices = nil
		return nil
	}
	s.callIndices = append([]CallID(nil), indices...)
	return nil
}

// Atomically runs fn directly: map writes cannot fail halfway, and the
// controller performs every check before its first write.
func (s *MemoryStore) Atomically(_ context.Context, fn func(Store) error) error {
	return fn(s)
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
