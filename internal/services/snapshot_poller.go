package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/sourcegraph/conc/pool"

	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/utils/poller"
	"github.com/evermarks/emark-staking-service/internal/votingpower"
)

func (s *Service) StartSnapshotPoller(ctx context.Context) {
	snapshotPoller := poller.New(
		"account_snapshots",
		s.cfg.Poller.SnapshotPollingInterval,
		metrics.RecordPollerDuration("refresh_snapshots", s.refreshSnapshots),
	)
	go snapshotPoller.Start(ctx)
}

// refreshSnapshots re-reads balances and voting power for every tracked
// account with bounded concurrency.
func (s *Service) refreshSnapshots(ctx context.Context) error {
	accounts, err := s.db.GetTrackedAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tracked accounts: %w", err)
	}

	workers := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.Poller.SnapshotConcurrency)

	for _, account := range accounts {
		workers.Go(func(ctx context.Context) error {
			return s.RefreshSnapshot(ctx, account)
		})
	}

	return workers.Wait()
}

// RefreshSnapshot reads the current account view from chain and persists it.
func (s *Service) RefreshSnapshot(ctx context.Context, account string) error {
	balances, _, err := s.readAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to read account %s: %w", account, err)
	}

	breakdown, degraded := s.votingPowerBreakdown(ctx, account, balances.Staked)

	snapshotDoc := &model.AccountSnapshotDocument{
		Account:        account,
		LiquidBalance:  balances.Liquid.String(),
		StakedBalance:  balances.Staked.String(),
		Allowance:      balances.Allowance.String(),
		ReservedPower:  breakdown.Reserved.String(),
		AvailablePower: breakdown.Available.String(),
		PowerDegraded:  degraded,
		RefreshedAt:    time.Now().UTC(),
	}
	if err := s.db.SaveAccountSnapshot(ctx, snapshotDoc); err != nil {
		return fmt.Errorf("failed to save snapshot for %s: %w", account, err)
	}

	return nil
}

// votingPowerBreakdown never fails: total power equals the staked balance,
// and when every reserved-power query errors it degrades to zero reserved
// so staking screens keep rendering with the full staked power available.
func (s *Service) votingPowerBreakdown(ctx context.Context, account string, staked sdkmath.Int) (*votingpower.Breakdown, bool) {
	reserved, degraded := votingpower.ResolveReserved(ctx, s.chain, account)
	if degraded {
		metrics.IncVotingPowerFallback()
	}

	return votingpower.Compute(staked, reserved), degraded
}
