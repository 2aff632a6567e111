package raffle_test

import (
	"math"

	sdkmath "cosmossdk.io/math"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/ledger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

func (s *ControllerTestSuite) TestPlay_SellsSequentialTickets() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))), mustCall(runtime.Remark([]byte("bb"))))
	s.start(10, 20, 5)
	s.fund(alice, 100)
	s.fund(bob, 100)

	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), calls[0]))
	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(bob), calls[0]))
	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), calls[1]))

	count, err := s.controller.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(raffle.Ticket(3), count)

	for ticket, expected := range []runtime.AccountID{alice, bob, alice} {
		owner, found, err := s.controller.Ticket(s.ctx, raffle.Ticket(ticket))
		s.Require().NoError(err)
		s.Require().True(found)
		s.Require().Equal(expected, owner)
	}
	_, found, err := s.controller.Ticket(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().False(found)

	participant, err := s.controller.Participant(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(uint32(1), participant.RoundIndex)
	s.Require().Len(participant.Calls, 2)

	s.Require().True(sdkmath.NewInt(80).Equal(s.balance(alice)))
	s.Require().True(sdkmath.NewInt(90).Equal(s.balance(bob)))
	_, pot, err := s.controller.Pot(s.ctx)
	s.Require().NoError(err)
	s.Require().True(sdkmath.NewInt(30).Equal(pot))

	events := s.eventsOfType(raffle.EventTypeTicketBought)
	s.Require().Len(events, 3)
	ticket, _ := events[2].Attribute(raffle.AttributeKeyTicket)
	s.Require().Equal("2", ticket)
	who, _ := events[2].Attribute(raffle.AttributeKeyWho)
	s.Require().Equal(alice.String(), who)
}

func (s *ControllerTestSuite) TestPlay_ThroughRuntime() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.Require().NoError(s.runtime.SubmitCall(s.ctx, runtime.Signed(manager), mustCall(raffle.StartRaffleCall(sdkmath.NewInt(10), 20, 5, nil))))
	s.fund(alice, 100)

	play := mustCall(raffle.PlayCall(calls[0]))
	s.Require().NoError(s.runtime.SubmitCall(s.ctx, runtime.Signed(alice), play))

	err := s.runtime.SubmitCall(s.ctx, runtime.Signed(alice), play)
	s.Require().ErrorIs(err, raffle.ErrAlreadyParticipating)

	count, err := s.controller.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(raffle.Ticket(1), count)
}

func (s *ControllerTestSuite) TestPlay_RequiresSignedOrigin() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 20, 5)

	err := s.controller.Play(s.ctx, runtime.Root(), calls[0])
	s.Require().ErrorIs(err, runtime.ErrBadOrigin)
	err = s.controller.Play(s.ctx, runtime.None(), calls[0])
	s.Require().ErrorIs(err, runtime.ErrBadOrigin)
}

func (s *ControllerTestSuite) TestPlay_InvalidCall() {
	s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 20, 5)
	s.fund(alice, 100)

	err := s.controller.Play(s.ctx, runtime.Signed(alice), mustCall(runtime.Remark([]byte("not allowed"))).Encode())
	s.Require().ErrorIs(err, raffle.ErrInvalidCall)

	err = s.controller.Play(s.ctx, runtime.Signed(alice), []byte{0})
	s.Require().ErrorIs(err, raffle.ErrInvalidCall)

	s.Require().True(sdkmath.NewInt(100).Equal(s.balance(alice)))
}

func (s *ControllerTestSuite) TestPlay_UndecodableCall() {
	// an allowed fingerprint whose arguments declare more bytes than they hold
	garbage := []byte{runtime.SystemModuleIndex, runtime.SystemRemark, 0x0a, 0x7f, 0x00}
	s.Require().NoError(s.store.SetCallIndices(s.ctx, []raffle.CallID{{
		Module:   runtime.SystemModuleIndex,
		Function: runtime.SystemRemark,
		Length:   uint32(len(garbage)),
	}}))
	s.start(10, 20, 5)
	s.fund(alice, 100)

	err := s.controller.Play(s.ctx, runtime.Signed(alice), garbage)
	s.Require().ErrorIs(err, raffle.ErrUndecodableCall)
}

func (s *ControllerTestSuite) TestPlay_DispatchFailureIsReturned() {
	start := mustCall(raffle.StartRaffleCall(sdkmath.NewInt(1), 1, 1, nil)).Encode()
	s.allow(runtime.Call{Module: start[0], Function: start[1], Args: start[2:]})
	s.start(10, 20, 5)
	s.fund(alice, 100)

	// the action itself fails because a raffle is running
	err := s.controller.Play(s.ctx, runtime.Signed(alice), start)
	s.Require().ErrorIs(err, raffle.ErrAlreadyActive)

	count, err := s.controller.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(count)
	s.Require().True(sdkmath.NewInt(100).Equal(s.balance(alice)))
}

func (s *ControllerTestSuite) TestPlay_NotConfigured() {
	calls := s.allow(mustCall(runtime.RemarkWithEvent([]byte("a"))))
	s.fund(alice, 100)

	err := s.controller.Play(s.ctx, runtime.Signed(alice), calls[0])
	s.Require().ErrorIs(err, raffle.ErrNotConfigured)

	// the action's effects stand
	s.Require().Len(s.eventsOfType(runtime.EventTypeRemarked), 1)
	s.Require().Empty(s.eventsOfType(raffle.EventTypeTicketBought))
}

func (s *ControllerTestSuite) TestPlay_AlreadyEnded() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 20, 5)
	s.fund(alice, 100)

	s.advance(19)
	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), calls[0]))

	s.advance(1)
	err := s.controller.Play(s.ctx, runtime.Signed(bob), calls[0])
	s.Require().ErrorIs(err, raffle.ErrAlreadyEnded)
}

func (s *ControllerTestSuite) TestPlay_AlreadyParticipating() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 20, 5)
	s.fund(alice, 100)

	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), calls[0]))
	err := s.controller.Play(s.ctx, runtime.Signed(alice), calls[0])
	s.Require().ErrorIs(err, raffle.ErrAlreadyParticipating)

	s.Require().True(sdkmath.NewInt(90).Equal(s.balance(alice)))
}

func (s *ControllerTestSuite) TestPlay_TooManyCalls() {
	s.params.MaxCalls = 2
	s.setup(runtime.EnsureRootOr{Inner: runtime.EnsureSignedAny{}})

	first := s.allow(mustCall(runtime.Remark([]byte("a"))), mustCall(runtime.Remark([]byte("bb"))))
	s.start(10, 20, 5)
	s.fund(alice, 100)
	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), first[0]))
	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), first[1]))

	second := s.allow(mustCall(runtime.Remark([]byte("ccc"))))
	err := s.controller.Play(s.ctx, runtime.Signed(alice), second[0])
	s.Require().ErrorIs(err, raffle.ErrTooManyCalls)
	s.Require().True(sdkmath.NewInt(80).Equal(s.balance(alice)))
}

func (s *ControllerTestSuite) TestPlay_TicketsOverflow() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 20, 5)
	s.fund(alice, 100)
	s.Require().NoError(s.store.SetTicketsCount(s.ctx, math.MaxUint32))

	err := s.controller.Play(s.ctx, runtime.Signed(alice), calls[0])
	s.Require().ErrorIs(err, raffle.ErrOverflow)
	s.Require().True(sdkmath.NewInt(100).Equal(s.balance(alice)))
}

func (s *ControllerTestSuite) TestPlay_Funds() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 20, 5)

	s.fund(alice, 5)
	err := s.controller.Play(s.ctx, runtime.Signed(alice), calls[0])
	s.Require().ErrorIs(err, ledger.ErrInsufficientBalance)

	// paying the exact balance would reap the account
	s.fund(bob, 10)
	err = s.controller.Play(s.ctx, runtime.Signed(bob), calls[0])
	s.Require().ErrorIs(err, ledger.ErrKeepAlive)

	count, err := s.controller.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(count)

	participant, err := s.controller.Participant(s.ctx, bob)
	s.Require().NoError(err)
	s.Require().Empty(participant.Calls)
}

func (s *ControllerTestSuite) TestPlay_ResetsParticipantAcrossRounds() {
	calls := s.allow(mustCall(runtime.Remark([]byte("a"))))
	s.start(10, 2, 1)
	s.fund(alice, 100)
	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), calls[0]))

	s.advance(3)
	config, err := s.controller.Config(s.ctx)
	s.Require().NoError(err)
	s.Require().Nil(config)

	s.start(10, 2, 1)

	// the old record is stale and reads as empty
	participant, err := s.controller.Participant(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(uint32(2), participant.RoundIndex)
	s.Require().Empty(participant.Calls)

	s.Require().NoError(s.controller.Play(s.ctx, runtime.Signed(alice), calls[0]))

	participant, err = s.controller.Participant(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(uint32(2), participant.RoundIndex)
	s.Require().Len(participant.Calls, 1)

	count, err := s.controller.TicketsCount(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(raffle.Ticket(1), count)
}

func mustCall(call runtime.Call, err error) runtime.Call {
	if err != nil {
		panic(err)
	}
	return call
}
