package queue

import "time"

type EventType string

const (
	StakeExecutedEventType      EventType = "STAKE_EXECUTED"
	UnbondingRequestedEventType EventType = "UNBONDING_REQUESTED"
	UnbondingWithdrawableEvent  EventType = "UNBONDING_WITHDRAWABLE"
	UnbondingWithdrawnEventType EventType = "UNBONDING_WITHDRAWN"
	UnbondingCancelledEventType EventType = "UNBONDING_CANCELLED"
	AllowanceApprovedEventType  EventType = "ALLOWANCE_APPROVED"
)

// StakingEvent is the message pushed to downstream consumers (leaderboards,
// notification workers) whenever a staking lifecycle transition completes
// on chain. Amounts are base-unit decimal strings.
type StakingEvent struct {
	EventType   EventType `json:"event_type"`
	Account     string    `json:"account"`
	Amount      string    `json:"amount"`
	TxHash      string    `json:"tx_hash,omitempty"`
	ReleaseTime time.Time `json:"release_time,omitempty"`
	EmittedAt   time.Time `json:"emitted_at"`
}

func NewStakingEvent(eventType EventType, account, amount, txHash string) *StakingEvent {
	return &StakingEvent{
		EventType: eventType,
		Account:   account,
		Amount:    amount,
		TxHash:    txHash,
		EmittedAt: time.Now().UTC(),
	}
}
