package raffle_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
)

func TestChooseTicket(t *testing.T) {
	f := newSettlementFixture(t)

	// no tickets, no draw
	require.Nil(t, f.controller.ChooseTicket(0))

	subject := append(raffle.DefaultModuleID[:], 0, 0, 0, 0)
	f.beacon.EXPECT().Random(subject).Return(randomWith(1_000_003), runtime.Tick(0)).Times(3)

	for _, total := range []raffle.Ticket{1, 7, 1_000} {
		ticket := f.controller.ChooseTicket(total)
		require.NotNil(t, ticket)
		require.Equal(t, 1_000_003%total, *ticket)
		require.Less(t, *ticket, total)
	}
}

func TestChooseTicket_StaysInRange(t *testing.T) {
	f := newSettlementFixture(t)

	draws := []uint32{0, 1, 4_294_967_295, 123_456_789}
	for _, draw := range draws {
		f.beacon.EXPECT().Random(gomock.Any()).Return(randomWith(draw), runtime.Tick(0))
	}
	for _, draw := range draws {
		ticket := f.controller.ChooseTicket(10)
		require.NotNil(t, ticket)
		require.Equal(t, draw%10, *ticket)
	}
}
