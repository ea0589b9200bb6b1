package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/internal/validation"
)

// Stake runs the full approve-then-stake flow for the connected wallet:
// validate the amount against fresh balances, approve the exact amount if
// the allowance falls short, re-check the allowance, submit the stake and
// wait for confirmation. Balances are only updated from chain reads after
// each confirmation.
func (s *Service) Stake(ctx context.Context, amountText string) *types.Error {
	account := s.chain.ConnectedAccount()
	if account == "" {
		return types.NewWalletNotConnectedError()
	}

	flow := s.flowFor(account)
	if busyErr := flow.beginOp(opStake); busyErr != nil {
		return busyErr
	}
	defer flow.endOp(opStake)

	start := time.Now()
	stakeErr := s.stake(ctx, flow, amountText)
	metrics.RecordStakingOpDuration(time.Since(start), model.OpStake, stakeErr != nil)

	if stakeErr != nil {
		// A failed attempt must not leave a transitional state behind.
		if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
			log.Ctx(ctx).Warn().
				Err(refreshErr).
				Str("account", account).
				Msg("failed to refresh flow after stake error")
		}
	}
	return stakeErr
}

func (s *Service) stake(ctx context.Context, flow *Flow, amountText string) *types.Error {
	if err := s.refreshFlow(ctx, flow); err != nil {
		return err
	}

	params, err := s.protocolParams(ctx)
	if err != nil {
		return err
	}

	balances, _ := flow.snapshotReads()
	result := validation.ValidateStake(
		amountText, balances.Liquid,
		params.MinStakeAmount, params.MaxStakeAmount, s.cfg.Staking.DustThreshold(),
	)
	if !result.IsValid {
		return types.NewValidationFailedError(errors.New(strings.Join(result.Errors, "; ")))
	}

	amount, parseErr := types.ParseAmount(amountText)
	if parseErr != nil {
		return types.NewValidationFailedError(parseErr)
	}

	if err := s.ensureAllowance(ctx, flow, amount); err != nil {
		return err
	}

	// Re-check right before submitting. The approval may have confirmed with
	// a different value, or been spent by a competing transaction.
	balances, _ = flow.snapshotReads()
	if needsApproval(balances.Allowance, amount) {
		return types.NewInsufficientAllowanceError()
	}

	flow.setState(types.StateStaking)

	txHash, stakeErr := s.chain.Stake(ctx, amount)
	if stakeErr != nil {
		return types.Classify(stakeErr)
	}
	if confirmErr := s.waitForConfirmation(ctx, txHash); confirmErr != nil {
		return confirmErr
	}

	if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
		return refreshErr
	}
	if recordErr := s.recordOperation(ctx, txHash, flow.account, model.OpStake, amount.String()); recordErr != nil {
		return recordErr
	}
	s.emitEvent(ctx, queue.NewStakingEvent(
		queue.StakeExecutedEventType, flow.account, amount.String(), txHash,
	))

	log.Ctx(ctx).Info().
		Str("account", flow.account).
		Str("amount", amount.String()).
		Str("tx_hash", txHash).
		Msg("stake confirmed")

	return nil
}
