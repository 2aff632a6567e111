package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RaffleStore implements raffle.Store on top of gorm.
type RaffleStore struct {
	db *gorm.DB
}

var _ raffle.Store = (*RaffleStore)(nil)

func (s *RaffleStore) state(ctx context.Context) (*RaffleState, error) {
	var state RaffleState
	err := s.db.WithContext(ctx).Take(&state, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &RaffleState{ID: singletonID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RaffleStore) updateState(ctx context.Context, column string, value interface{}) error {
	return s.db.WithContext(ctx).
		Model(&RaffleState{ID: singletonID}).
		Update(column, value).Error
}

func (s *RaffleStore) Config(ctx context.Context) (*raffle.Config, error) {
	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, nil
	}

	price, ok := math.NewIntFromString(state.Price)
	if !ok {
		return nil, fmt.Errorf("stored raffle price %q is not an integer", state.Price)
	}
	return &raffle.Config{
		Price:          price,
		Start:          runtime.Tick(state.Start),
		Length:         runtime.Tick(state.Length),
		Delay:          runtime.Tick(state.Delay),
		Manager:        runtime.AccountID(state.Manager),
		NextRaffleCall: state.NextRaffleCall,
	}, nil
}

func (s *RaffleStore) SetConfig(ctx context.Context, config *raffle.Config) error {
	values := map[string]interface{}{
		"active":           false,
		"price":            "",
		"start":            0,
		"length":           0,
		"delay":            0,
		"manager":          "",
		"next_raffle_call": nil,
	}
	if config != nil {
		values["active"] = true
		values["price"] = config.Price.String()
		values["start"] = uint64(config.Start)
		values["length"] = uint64(config.Length)
		values["delay"] = uint64(config.Delay)
		values["manager"] = config.Manager.String()
		if len(config.NextRaffleCall) > 0 {
			values["next_raffle_call"] = config.NextRaffleCall
		}
	}
	return s.db.WithContext(ctx).
		Model(&RaffleState{ID: singletonID}).
		Updates(values).Error
}

func (s *RaffleStore) RoundIndex(ctx context.Context) (uint32, error) {
	state, err := s.state(ctx)
	if err != nil {
		return 0, err
	}
	return state.RoundIndex, nil
}

func (s *RaffleStore) SetRoundIndex(ctx context.Context, index uint32) error {
	return s.updateState(ctx, "round_index", index)
}

func (s *RaffleStore) TicketsCount(ctx context.Context) (raffle.Ticket, error) {
	state, err := s.state(ctx)
	if err != nil {
		return 0, err
	}
	return state.TicketsCount, nil
}

func (s *RaffleStore) SetTicketsCount(ctx context.Context, count raffle.Ticket) error {
	return s.updateState(ctx, "tickets_count", count)
}

func (s *RaffleStore) Ticket(ctx context.Context, ticket raffle.Ticket) (runtime.AccountID, bool, error) {
	var row RaffleTicket
	err := s.db.WithContext(ctx).Where("number = ?", ticket).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return runtime.AccountID(row.Address), true, nil
}

func (s *RaffleStore) SetTicket(ctx context.Context, ticket raffle.Ticket, owner runtime.AccountID) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(&RaffleTicket{Number: ticket, Address: owner.String()}).Error
}

func (s *RaffleStore) Participant(ctx context.Context, account runtime.AccountID) (raffle.Participant, error) {
	var row RaffleParticipant
	err := s.db.WithContext(ctx).Where("address = ?", account.String()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return raffle.Participant{}, nil
	}
	if err != nil {
		return raffle.Participant{}, err
	}

	calls, err := decodeCallIDs(row.Calls)
	if err != nil {
		return raffle.Participant{}, fmt.Errorf("participant %s: %w", account, err)
	}
	return raffle.Participant{RoundIndex: row.RoundIndex, Calls: calls}, nil
}

func (s *RaffleStore) SetParticipant(ctx context.Context, account runtime.AccountID, participant raffle.Participant) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"round_index", "calls"}),
	}).Create(&RaffleParticipant{
		Address:    account.String(),
		RoundIndex: participant.RoundIndex,
		Calls:      encodeCallIDs(participant.Calls),
	}).Error
}

func (s *RaffleStore) CallIndices(ctx context.Context) ([]raffle.CallID, error) {
	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}
	return decodeCallIDs(state.CallIndices)
}

func (s *RaffleStore) SetCallIndices(ctx context.Context, indices []raffle.CallID) error {
	var encoded interface{}
	if len(indices) > 0 {
		encoded = encodeCallIDs(indices)
	}
	return s.updateState(ctx, "call_indices", encoded)
}

// Atomically runs fn inside a database transaction.
func (s *RaffleStore) Atomically(ctx context.Context, fn func(raffle.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RaffleStore{db: tx})
	})
}

const callIDSize = 6

func encodeCallIDs(ids []raffle.CallID) []byte {
	encoded := make([]byte, 0, len(ids)*callIDSize)
	for _, id := range ids {
		encoded = append(encoded, id.Module, id.Function)
		encoded = binary.BigEndian.AppendUint32(encoded, id.Length)
	}
	return encoded
}

func decodeCallIDs(encoded []byte) ([]raffle.CallID, error) {
	if len(encoded)%callIDSize != 0 {
		return nil, fmt.Errorf("call ids blob of %d bytes is malformed", len(encoded))
	}
	ids := make([]raffle.CallID, 0, len(encoded)/callIDSize)
	for i := 0; i < len(encoded); i += callIDSize {
		ids = append(ids, raffle.CallID{
			Module:   encoded[i],
			Function: encoded[i+1],
			Length:   binary.BigEndian.Uint32(encoded[i+2 : i+callIDSize]),
		})
	}
	return ids, nil
}
