package model

import "time"

// Enum values for the unbonding request mirror state
const (
	UnbondingStatePending      = "PENDING"
	UnbondingStateWithdrawable = "WITHDRAWABLE"
	UnbondingStateWithdrawn    = "WITHDRAWN"
	UnbondingStateCancelled    = "CANCELLED"
)

// UnbondingRequestDocument mirrors the single outstanding unbonding request
// per account. The chain remains the source of truth; this document exists
// so dashboards and the release checker can read without a chain round trip.
type UnbondingRequestDocument struct {
	Account     string    `bson:"account"` // Unique Index
	Amount      string    `bson:"amount"`
	ReleaseTime time.Time `bson:"release_time"`
	State       string    `bson:"state"`
	TxHash      string    `bson:"tx_hash"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func NewUnbondingRequestDocument(account, amount, txHash string, releaseTime time.Time) *UnbondingRequestDocument {
	return &UnbondingRequestDocument{
		Account:     account,
		Amount:      amount,
		ReleaseTime: releaseTime,
		State:       UnbondingStatePending,
		TxHash:      txHash,
		UpdatedAt:   time.Now().UTC(),
	}
}
