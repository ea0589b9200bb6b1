package chainclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
)

type ChainClientWithMetrics struct {
	chain ChainInterface
}

func NewChainClientWithMetrics(chain ChainInterface) *ChainClientWithMetrics {
	return &ChainClientWithMetrics{chain: chain}
}

func (c *ChainClientWithMetrics) ConnectedAccount() string {
	return c.chain.ConnectedAccount()
}

func (c *ChainClientWithMetrics) BalanceOf(ctx context.Context, account string) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("BalanceOf", func() error {
		result, err = c.chain.BalanceOf(ctx, account)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) StakedBalanceOf(ctx context.Context, account string) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("StakedBalanceOf", func() error {
		result, err = c.chain.StakedBalanceOf(ctx, account)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) Allowance(ctx context.Context, owner string) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("Allowance", func() error {
		result, err = c.chain.Allowance(ctx, owner)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) GetUnbondingInfo(ctx context.Context, account string) (result *UnbondingInfo, err error) {
	//nolint:errcheck
	c.run("GetUnbondingInfo", func() error {
		result, err = c.chain.GetUnbondingInfo(ctx, account)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) GetProtocolParams(ctx context.Context) (result *ProtocolParams, err error) {
	//nolint:errcheck
	c.run("GetProtocolParams", func() error {
		result, err = c.chain.GetProtocolParams(ctx)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) GetVotesInCurrentCycle(ctx context.Context, account string) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("GetVotesInCurrentCycle", func() error {
		result, err = c.chain.GetVotesInCurrentCycle(ctx, account)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) GetVotingPower(ctx context.Context, account string) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("GetVotingPower", func() error {
		result, err = c.chain.GetVotingPower(ctx, account)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) GetRemainingVotingPower(ctx context.Context, account string) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("GetRemainingVotingPower", func() error {
		result, err = c.chain.GetRemainingVotingPower(ctx, account)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) Approve(ctx context.Context, amount sdkmath.Int) (txHash string, err error) {
	//nolint:errcheck
	c.run("Approve", func() error {
		txHash, err = c.chain.Approve(ctx, amount)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) Stake(ctx context.Context, amount sdkmath.Int) (txHash string, err error) {
	//nolint:errcheck
	c.run("Stake", func() error {
		txHash, err = c.chain.Stake(ctx, amount)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) StartUnbonding(ctx context.Context, amount sdkmath.Int) (txHash string, err error) {
	//nolint:errcheck
	c.run("StartUnbonding", func() error {
		txHash, err = c.chain.StartUnbonding(ctx, amount)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) Withdraw(ctx context.Context) (txHash string, err error) {
	//nolint:errcheck
	c.run("Withdraw", func() error {
		txHash, err = c.chain.Withdraw(ctx)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) CancelUnbonding(ctx context.Context) (txHash string, err error) {
	//nolint:errcheck
	c.run("CancelUnbonding", func() error {
		txHash, err = c.chain.CancelUnbonding(ctx)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) TransactionStatus(ctx context.Context, txHash string) (result TxStatus, err error) {
	//nolint:errcheck
	c.run("TransactionStatus", func() error {
		result, err = c.chain.TransactionStatus(ctx, txHash)
		return err
	})
	return
}

func (c *ChainClientWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordChainClientLatency(time.Since(start), method, err != nil)
	return err
}
