package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/internal/utils"
	"github.com/evermarks/emark-staking-service/internal/validation"
)

// RequestUnstake opens an unbonding request for the connected wallet. At most
// one request may be outstanding per account: requests are never merged or
// queued, an existing one must be claimed or cancelled first.
func (s *Service) RequestUnstake(ctx context.Context, amountText string) *types.Error {
	account := s.chain.ConnectedAccount()
	if account == "" {
		return types.NewWalletNotConnectedError()
	}

	flow := s.flowFor(account)
	if busyErr := flow.beginOp(opUnstake); busyErr != nil {
		return busyErr
	}
	defer flow.endOp(opUnstake)

	start := time.Now()
	unstakeErr := s.requestUnstake(ctx, flow, amountText)
	metrics.RecordStakingOpDuration(time.Since(start), model.OpRequestUnstake, unstakeErr != nil)

	return unstakeErr
}

func (s *Service) requestUnstake(ctx context.Context, flow *Flow, amountText string) *types.Error {
	if err := s.refreshFlow(ctx, flow); err != nil {
		return err
	}

	if !utils.Contains(types.QualifiedStatesForRequestUnstake(), flow.State()) {
		return types.NewErrorWithMsg(
			http.StatusConflict,
			types.ValidationFailed,
			"an unbonding request is already active, claim or cancel it first",
		)
	}
	balances, _ := flow.snapshotReads()

	params, err := s.protocolParams(ctx)
	if err != nil {
		return err
	}

	result := validation.ValidateUnstake(
		amountText, balances.Staked, params.MinStakeAmount,
		utils.FormatUnbondingPeriod(params.UnbondingPeriodSeconds),
	)
	if !result.IsValid {
		return types.NewValidationFailedError(errors.New(strings.Join(result.Errors, "; ")))
	}

	amount, parseErr := types.ParseAmount(amountText)
	if parseErr != nil {
		return types.NewValidationFailedError(parseErr)
	}

	txHash, unbondErr := s.chain.StartUnbonding(ctx, amount)
	if unbondErr != nil {
		return types.Classify(unbondErr)
	}
	if confirmErr := s.waitForConfirmation(ctx, txHash); confirmErr != nil {
		return confirmErr
	}

	if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
		return refreshErr
	}

	// Mirror the request the contract now carries, release time included, so
	// the release checker works off the chain's clock rather than ours.
	_, unbonding := flow.snapshotReads()
	if unbonding.HasRequest() {
		requestDoc := model.NewUnbondingRequestDocument(
			flow.account, unbonding.Amount.String(), txHash, unbonding.ReleaseTime,
		)
		if saveErr := s.db.SaveUnbondingRequest(ctx, requestDoc); saveErr != nil {
			return types.NewInternalServiceError(saveErr)
		}
	}

	if recordErr := s.recordOperation(ctx, txHash, flow.account, model.OpRequestUnstake, amount.String()); recordErr != nil {
		return recordErr
	}

	event := queue.NewStakingEvent(queue.UnbondingRequestedEventType, flow.account, amount.String(), txHash)
	if unbonding.HasRequest() {
		event.ReleaseTime = unbonding.ReleaseTime
	}
	s.emitEvent(ctx, event)

	log.Ctx(ctx).Info().
		Str("account", flow.account).
		Str("amount", amount.String()).
		Time("release_time", unbonding.ReleaseTime).
		Msg("unbonding request confirmed")

	return nil
}

// CompleteUnstake withdraws the matured unbonding request of the connected
// wallet. Both guards are local: no chain transaction is submitted when no
// request exists or when the release time has not passed.
func (s *Service) CompleteUnstake(ctx context.Context) *types.Error {
	account := s.chain.ConnectedAccount()
	if account == "" {
		return types.NewWalletNotConnectedError()
	}

	flow := s.flowFor(account)
	if busyErr := flow.beginOp(opClaim); busyErr != nil {
		return busyErr
	}
	defer flow.endOp(opClaim)

	start := time.Now()
	claimErr := s.completeUnstake(ctx, flow)
	metrics.RecordStakingOpDuration(time.Since(start), model.OpCompleteUnstake, claimErr != nil)

	if claimErr != nil {
		// A failed attempt must not leave a transitional state behind.
		if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
			log.Ctx(ctx).Warn().
				Err(refreshErr).
				Str("account", account).
				Msg("failed to refresh flow after withdrawal error")
		}
	}
	return claimErr
}

func (s *Service) completeUnstake(ctx context.Context, flow *Flow) *types.Error {
	if err := s.refreshFlow(ctx, flow); err != nil {
		return err
	}

	_, unbonding := flow.snapshotReads()
	if !unbonding.HasRequest() {
		return types.NewNoUnbondingRequestError()
	}

	if !utils.Contains(types.QualifiedStatesForCompleteUnstake(), flow.State()) {
		remaining := utils.TimeUntilRelease(unbonding.ReleaseTime, time.Now().UTC())
		return types.NewUnbondingNotReadyError(utils.FormatTimeRemaining(remaining))
	}

	flow.setState(types.StateClaiming)

	txHash, withdrawErr := s.chain.Withdraw(ctx)
	if withdrawErr != nil {
		return types.Classify(withdrawErr)
	}
	if confirmErr := s.waitForConfirmation(ctx, txHash); confirmErr != nil {
		return confirmErr
	}

	if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
		return refreshErr
	}

	qualified := []string{model.UnbondingStatePending, model.UnbondingStateWithdrawable}
	if updateErr := s.db.UpdateUnbondingRequestState(ctx, flow.account, qualified, model.UnbondingStateWithdrawn); updateErr != nil {
		// The mirror may be missing when the request predates this service.
		if !db.IsNotFoundError(updateErr) {
			return types.NewInternalServiceError(updateErr)
		}
	}

	if recordErr := s.recordOperation(ctx, txHash, flow.account, model.OpCompleteUnstake, unbonding.Amount.String()); recordErr != nil {
		return recordErr
	}
	s.emitEvent(ctx, queue.NewStakingEvent(
		queue.UnbondingWithdrawnEventType, flow.account, unbonding.Amount.String(), txHash,
	))

	log.Ctx(ctx).Info().
		Str("account", flow.account).
		Str("amount", unbonding.Amount.String()).
		Str("tx_hash", txHash).
		Msg("unbonding withdrawal confirmed")

	return nil
}

// CancelUnbonding aborts the outstanding unbonding request of the connected
// wallet and returns the tokens to the staked balance. Cancelling with no
// request outstanding is rejected locally, so a double-cancel is a cheap
// no-op on chain.
func (s *Service) CancelUnbonding(ctx context.Context) *types.Error {
	account := s.chain.ConnectedAccount()
	if account == "" {
		return types.NewWalletNotConnectedError()
	}

	flow := s.flowFor(account)
	if busyErr := flow.beginOp(opCancel); busyErr != nil {
		return busyErr
	}
	defer flow.endOp(opCancel)

	start := time.Now()
	cancelErr := s.cancelUnbonding(ctx, flow)
	metrics.RecordStakingOpDuration(time.Since(start), model.OpCancelUnbonding, cancelErr != nil)

	if cancelErr != nil {
		if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
			log.Ctx(ctx).Warn().
				Err(refreshErr).
				Str("account", account).
				Msg("failed to refresh flow after cancel error")
		}
	}
	return cancelErr
}

func (s *Service) cancelUnbonding(ctx context.Context, flow *Flow) *types.Error {
	if err := s.refreshFlow(ctx, flow); err != nil {
		return err
	}

	_, unbonding := flow.snapshotReads()
	if !utils.Contains(types.QualifiedStatesForCancelUnbonding(), flow.State()) {
		return types.NewNoUnbondingRequestError()
	}

	flow.setState(types.StateCancelling)

	txHash, cancelErr := s.chain.CancelUnbonding(ctx)
	if cancelErr != nil {
		return types.Classify(cancelErr)
	}
	if confirmErr := s.waitForConfirmation(ctx, txHash); confirmErr != nil {
		return confirmErr
	}

	if refreshErr := s.refreshFlow(ctx, flow); refreshErr != nil {
		return refreshErr
	}

	qualified := []string{model.UnbondingStatePending, model.UnbondingStateWithdrawable}
	if updateErr := s.db.UpdateUnbondingRequestState(ctx, flow.account, qualified, model.UnbondingStateCancelled); updateErr != nil {
		if !db.IsNotFoundError(updateErr) {
			return types.NewInternalServiceError(updateErr)
		}
	}

	if recordErr := s.recordOperation(ctx, txHash, flow.account, model.OpCancelUnbonding, unbonding.Amount.String()); recordErr != nil {
		return recordErr
	}
	s.emitEvent(ctx, queue.NewStakingEvent(
		queue.UnbondingCancelledEventType, flow.account, unbonding.Amount.String(), txHash,
	))

	log.Ctx(ctx).Info().
		Str("account", flow.account).
		Str("amount", unbonding.Amount.String()).
		Str("tx_hash", txHash).
		Msg("unbonding cancellation confirmed")

	return nil
}
