package services

import (
	"context"
	"fmt"
	"time"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/types"
)

// refreshFlow re-reads every chain-derived field of the flow: liquid balance,
// staked balance, allowance and the unbonding record. This is the only way
// flow state changes outside of an explicit transitional state, so a failed
// transaction can never leave stale optimistic values behind.
func (s *Service) refreshFlow(ctx context.Context, flow *Flow) *types.Error {
	balances, unbonding, err := s.readAccount(ctx, flow.account)
	if err != nil {
		return types.Classify(fmt.Errorf("failed to refresh account %s: %w", flow.account, err))
	}

	flow.applyReads(*balances, unbonding, time.Now().UTC())
	return nil
}

// readAccount performs the four chain reads that make up an account view.
func (s *Service) readAccount(ctx context.Context, account string) (*chainclient.TokenBalances, *chainclient.UnbondingInfo, error) {
	liquid, err := s.chain.BalanceOf(ctx, account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read liquid balance: %w", err)
	}

	staked, err := s.chain.StakedBalanceOf(ctx, account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read staked balance: %w", err)
	}

	allowance, err := s.chain.Allowance(ctx, account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read allowance: %w", err)
	}

	unbonding, err := s.chain.GetUnbondingInfo(ctx, account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read unbonding info: %w", err)
	}

	balances := &chainclient.TokenBalances{
		Liquid:    liquid,
		Staked:    staked,
		Allowance: allowance,
	}
	return balances, unbonding, nil
}
