package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/suite"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/storage"
)

type SqliteStorageTestSuite struct {
	suite.Suite

	ctx     context.Context
	path    string
	storage *storage.SqliteStorage
}

func TestSqliteStorageTestSuite(t *testing.T) {
	suite.Run(t, new(SqliteStorageTestSuite))
}

func (s *SqliteStorageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "raffle.db")

	var err error
	s.storage, err = storage.NewSqliteStorage(s.path)
	s.Require().NoError(err)
}

func (s *SqliteStorageTestSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
}

func (s *SqliteStorageTestSuite) reopen() {
	s.Require().NoError(s.storage.Close())
	var err error
	s.storage, err = storage.NewSqliteStorage(s.path)
	s.Require().NoError(err)
}

func (s *SqliteStorageTestSuite) TestConfig() {
	store := s.storage.Raffle()

	config, err := store.Config(s.ctx)
	s.Require().NoError(err)
	s.Require().Nil(config)

	expected := &raffle.Config{
		Price:          math.NewInt(1_000_000_000_000),
		Start:          7,
		Length:         20,
		Delay:          5,
		Manager:        "manager",
		NextRaffleCall: []byte{8, 2, 1},
	}
	s.Require().NoError(store.SetConfig(s.ctx, expected))

	s.reopen()
	config, err = s.storage.Raffle().Config(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(config)
	s.Require().True(expected.Price.Equal(config.Price))
	s.Require().Equal(expected.Start, config.Start)
	s.Require().Equal(expected.Length, config.Length)
	s.Require().Equal(expected.Delay, config.Delay)
	s.Require().Equal(expected.Manager, config.Manager)
	s.Require().Equal(expected.NextRaffleCall, config.NextRaffleCall)

	s.Require().NoError(s.storage.Raffle().SetConfig(s.ctx, nil))
	config, err = s.storage.Raffle().Config(s.ctx)
	s.Require().NoError(err)
	s.Require().Nil(config)
}

func (s *SqliteStorageTestSuite) TestCounters() {
	store := s.storage.Raffle()

	s.Require().NoError(store.SetRoundIndex(s.ctx, 3))
	s.Require().NoError(store.SetTicketsCount(s.ctx, 12))

	index, err := store.RoundIndex(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint32(3), index)
	count, err := store.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(raffle.Ticket(12), count)
}

func (s *SqliteStorageTestSuite) TestTickets() {
	store := s.storage.Raffle()

	_, found, err := store.Ticket(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().False(found)

	s.Require().NoError(store.SetTicket(s.ctx, 0, "alice"))
	s.Require().NoError(store.SetTicket(s.ctx, 0, "bob"))

	owner, found, err := store.Ticket(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Require().Equal(runtime.AccountID("bob"), owner)
}

func (s *SqliteStorageTestSuite) TestParticipantsAndCallIndices() {
	store := s.storage.Raffle()

	participant, err := store.Participant(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Equal(raffle.Participant{}, participant)

	calls := []raffle.CallID{
		{Module: 0, Function: 0, Length: 5},
		{Module: 8, Function: 2, Length: 70_000},
	}
	s.Require().NoError(store.SetParticipant(s.ctx, "alice", raffle.Participant{RoundIndex: 1, Calls: calls[:1]}))
	s.Require().NoError(store.SetParticipant(s.ctx, "alice", raffle.Participant{RoundIndex: 2, Calls: calls}))

	participant, err = store.Participant(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Equal(uint32(2), participant.RoundIndex)
	s.Require().Equal(calls, participant.Calls)

	s.Require().NoError(store.SetCallIndices(s.ctx, calls))
	indices, err := store.CallIndices(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(calls, indices)

	s.Require().NoError(store.SetCallIndices(s.ctx, nil))
	indices, err = store.CallIndices(s.ctx)
	s.Require().NoError(err)
	s.Require().Empty(indices)
}

func (s *SqliteStorageTestSuite) TestAtomicallyRollsBack() {
	store := s.storage.Raffle()
	failure := errors.New("failure")

	err := store.Atomically(s.ctx, func(tx raffle.Store) error {
		if err := tx.SetTicketsCount(s.ctx, 5); err != nil {
			return err
		}
		if err := tx.SetTicket(s.ctx, 4, "alice"); err != nil {
			return err
		}
		return failure
	})
	s.Require().ErrorIs(err, failure)

	count, err := store.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(count)
	_, found, err := store.Ticket(s.ctx, 4)
	s.Require().NoError(err)
	s.Require().False(found)
}

func (s *SqliteStorageTestSuite) TestAccounts() {
	accounts := s.storage.Accounts()

	balance, err := accounts.Balance(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().True(balance.IsZero())

	s.Require().NoError(accounts.SetBalance(s.ctx, "alice", math.NewInt(42)))
	s.Require().NoError(accounts.SetBalance(s.ctx, "alice", math.NewInt(43)))
	balance, err = accounts.Balance(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().True(math.NewInt(43).Equal(balance))

	s.Require().NoError(accounts.SetBalance(s.ctx, "alice", math.ZeroInt()))
	count, err := accounts.(*storage.AccountStore).Accounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(count)
}

func (s *SqliteStorageTestSuite) TestLedgerTransferRollsBack() {
	l := ledger.New(s.storage.Accounts(), math.NewInt(1))
	s.Require().NoError(l.Mint(s.ctx, "alice", math.NewInt(10)))

	err := l.TransferKeepAlive(s.ctx, "alice", "bob", math.NewInt(10))
	s.Require().ErrorIs(err, ledger.ErrKeepAlive)

	balance, err := l.FreeBalance(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().True(math.NewInt(10).Equal(balance))
}

func (s *SqliteStorageTestSuite) TestTick() {
	tick, err := s.storage.GetTick()
	s.Require().NoError(err)
	s.Require().Zero(tick)

	s.Require().NoError(s.storage.UpdateTick(99))
	s.reopen()

	tick, err = s.storage.GetTick()
	s.Require().NoError(err)
	s.Require().Equal(runtime.Tick(99), tick)
}

func (s *SqliteStorageTestSuite) TestUnitOfWorkRollsBackLedgerAndRaffle() {
	l := ledger.New(s.storage.Accounts(), math.NewInt(1))
	s.Require().NoError(l.Mint(s.ctx, "alice", math.NewInt(100)))
	failure := errors.New("failure")

	work := storage.NewUnitOfWork(s.storage, l)
	err := work.Atomically(s.ctx, func(store raffle.Store, txLedger raffle.Ledger) error {
		if err := txLedger.TransferKeepAlive(s.ctx, "alice", "pot", math.NewInt(10)); err != nil {
			return err
		}
		if err := store.SetTicketsCount(s.ctx, 1); err != nil {
			return err
		}
		return failure
	})
	s.Require().ErrorIs(err, failure)

	balance, err := l.FreeBalance(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().True(math.NewInt(100).Equal(balance))
	balance, err = l.FreeBalance(s.ctx, "pot")
	s.Require().NoError(err)
	s.Require().True(balance.IsZero())
	count, err := s.storage.Raffle().TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(count)

	err = work.Atomically(s.ctx, func(store raffle.Store, txLedger raffle.Ledger) error {
		if err := txLedger.TransferKeepAlive(s.ctx, "alice", "pot", math.NewInt(10)); err != nil {
			return err
		}
		return store.SetTicketsCount(s.ctx, 1)
	})
	s.Require().NoError(err)

	balance, err = l.FreeBalance(s.ctx, "pot")
	s.Require().NoError(err)
	s.Require().True(math.NewInt(10).Equal(balance))
	count, err = s.storage.Raffle().TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(raffle.Ticket(1), count)
}
