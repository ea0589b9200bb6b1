package chainclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

type ChainInterface interface {
	// ConnectedAccount returns the wallet address write operations are signed
	// with, or empty string when no wallet key is configured.
	ConnectedAccount() string

	BalanceOf(ctx context.Context, account string) (sdkmath.Int, error)
	StakedBalanceOf(ctx context.Context, account string) (sdkmath.Int, error)
	Allowance(ctx context.Context, owner string) (sdkmath.Int, error)
	GetUnbondingInfo(ctx context.Context, account string) (*UnbondingInfo, error)
	GetProtocolParams(ctx context.Context) (*ProtocolParams, error)

	GetVotesInCurrentCycle(ctx context.Context, account string) (sdkmath.Int, error)
	GetVotingPower(ctx context.Context, account string) (sdkmath.Int, error)
	GetRemainingVotingPower(ctx context.Context, account string) (sdkmath.Int, error)

	Approve(ctx context.Context, amount sdkmath.Int) (txHash string, err error)
	Stake(ctx context.Context, amount sdkmath.Int) (txHash string, err error)
	StartUnbonding(ctx context.Context, amount sdkmath.Int) (txHash string, err error)
	Withdraw(ctx context.Context) (txHash string, err error)
	CancelUnbonding(ctx context.Context) (txHash string, err error)

	TransactionStatus(ctx context.Context, txHash string) (TxStatus, error)
}
