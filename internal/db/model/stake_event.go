package model

import "time"

// Enum values for staking operation kinds recorded in the history.
const (
	OpStake           = "STAKE"
	OpApprove         = "APPROVE"
	OpRequestUnstake  = "REQUEST_UNSTAKE"
	OpCompleteUnstake = "COMPLETE_UNSTAKE"
	OpCancelUnbonding = "CANCEL_UNBONDING"
)

// StakeEventDocument is one confirmed staking operation. Amounts are decimal
// strings of the 18-decimal fixed-point integer.
type StakeEventDocument struct {
	TxHash    string    `bson:"tx_hash"`
	Account   string    `bson:"account"`
	Op        string    `bson:"op"`
	Amount    string    `bson:"amount"`
	CreatedAt time.Time `bson:"created_at"`
}

func NewStakeEventDocument(txHash, account, op, amount string) *StakeEventDocument {
	return &StakeEventDocument{
		TxHash:    txHash,
		Account:   account,
		Op:        op,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
