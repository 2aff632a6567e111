package storage

// RaffleState is the singleton row holding the raffle configuration and
// counters. Active is false when no raffle is configured.
type RaffleState struct {
	ID             uint   `gorm:"primaryKey"`
	RoundIndex     uint32 `gorm:"not null;default:0"`
	TicketsCount   uint32 `gorm:"not null;default:0"`
	Active         bool   `gorm:"not null;default:false"`
	Price          string
	Start          uint64
	Length         uint64
	Delay          uint64
	Manager        string
	NextRaffleCall []byte
	CallIndices    []byte
}

type RaffleParticipant struct {
	Address    string `gorm:"primaryKey"`
	RoundIndex uint32 `gorm:"not null"`
	Calls      []byte
}

type RaffleTicket struct {
	Number  uint32 `gorm:"primaryKey;autoIncrement:false"`
	Address string `gorm:"not null"`
}

type LedgerAccount struct {
	Address string `gorm:"primaryKey"`
	Balance string `gorm:"not null"`
}

// RuntimeState records the last processed tick.
type RuntimeState struct {
	ID   uint   `gorm:"primaryKey"`
	Tick uint64 `gorm:"not null;default:0"`
}

const singletonID = 1
