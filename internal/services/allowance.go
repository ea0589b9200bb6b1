package services

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/types"
)

// needsApproval reports whether the cached allowance covers the requested
// amount. An exactly-equal allowance passes, no safety margin is added.
func needsApproval(allowance, amount sdkmath.Int) bool {
	if allowance.IsNil() {
		return true
	}
	return allowance.LT(amount)
}

// ensureAllowance runs the approve step when the current allowance does not
// cover the amount. It approves the exact requested amount, never unlimited,
// and re-reads the allowance after confirmation so the caller can re-check
// before staking.
func (s *Service) ensureAllowance(ctx context.Context, flow *Flow, amount sdkmath.Int) *types.Error {
	balances, _ := flow.snapshotReads()
	if !needsApproval(balances.Allowance, amount) {
		return nil
	}

	flow.setState(types.StateApproving)

	txHash, err := s.chain.Approve(ctx, amount)
	if err != nil {
		return types.Classify(err)
	}
	if confirmErr := s.waitForConfirmation(ctx, txHash); confirmErr != nil {
		return confirmErr
	}

	if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
		return refreshErr
	}
	if recordErr := s.recordOperation(ctx, txHash, flow.account, model.OpApprove, amount.String()); recordErr != nil {
		return recordErr
	}
	s.emitEvent(ctx, queue.NewStakingEvent(
		queue.AllowanceApprovedEventType, flow.account, amount.String(), txHash,
	))

	return nil
}
