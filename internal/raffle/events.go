package raffle

// Event types
const (
	EventTypeRaffleStarted = "raffle_started"
	EventTypeCallsUpdated  = "calls_updated"
	EventTypeWinner        = "winner"
	EventTypeTicketBought  = "ticket_bought"
)

// Event attribute keys
const (
	AttributeKeyManager       = "manager"
	AttributeKeyRoundIndex    = "round_index"
	AttributeKeyPrice         = "price"
	AttributeKeyPayoutTick    = "payout_tick"
	AttributeKeyRepeat        = "repeat"
	AttributeKeyCalls         = "calls"
	AttributeKeyWinner        = "winner"
	AttributeKeyRaffleBalance = "raffle_balance"
	AttributeKeyWho           = "who"
	AttributeKeyTicket        = "ticket"
)
