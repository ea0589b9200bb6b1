package services

import (
	"context"
	"net/http"
	"time"

	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/internal/utils"
	"github.com/evermarks/emark-staking-service/internal/validation"
)

// UnbondingSummary is the render-ready view of an outstanding request.
type UnbondingSummary struct {
	Amount        string    `json:"amount"`
	ReleaseTime   time.Time `json:"releaseTime"`
	TimeRemaining string    `json:"timeRemaining"`
	CanClaim      bool      `json:"canClaim"`
}

// AccountSummary is the full staking view for one account. Amounts are
// base-unit decimal strings, voting power utilization is a percentage.
type AccountSummary struct {
	Account          string            `json:"account"`
	State            string            `json:"state"`
	LiquidBalance    string            `json:"liquidBalance"`
	StakedBalance    string            `json:"stakedBalance"`
	Allowance        string            `json:"allowance"`
	Unbonding        *UnbondingSummary `json:"unbonding,omitempty"`
	UnbondingPeriod  string            `json:"unbondingPeriod"`
	TotalPower       string            `json:"totalPower"`
	ReservedPower    string            `json:"reservedPower"`
	AvailablePower   string            `json:"availablePower"`
	PowerUtilization string            `json:"powerUtilization"`
	PowerDegraded    bool              `json:"powerDegraded"`
	InFlight         map[string]bool   `json:"inFlight"`
}

// AccountSummary assembles the staking view from fresh chain reads. Voting
// power degradation never fails the summary.
func (s *Service) AccountSummary(ctx context.Context, account string) (*AccountSummary, *types.Error) {
	flow := s.flowFor(account)
	if err := s.refreshFlow(ctx, flow); err != nil {
		return nil, err
	}

	params, err := s.protocolParams(ctx)
	if err != nil {
		return nil, err
	}

	balances, unbonding := flow.snapshotReads()
	breakdown, degraded := s.votingPowerBreakdown(ctx, account, balances.Staked)

	summary := &AccountSummary{
		Account:          account,
		State:            flow.State().String(),
		LiquidBalance:    balances.Liquid.String(),
		StakedBalance:    balances.Staked.String(),
		Allowance:        balances.Allowance.String(),
		UnbondingPeriod:  utils.FormatUnbondingPeriod(params.UnbondingPeriodSeconds),
		TotalPower:       breakdown.Total.String(),
		ReservedPower:    breakdown.Reserved.String(),
		AvailablePower:   breakdown.Available.String(),
		PowerUtilization: breakdown.UtilizationRate.String(),
		PowerDegraded:    degraded,
		InFlight: map[string]bool{
			string(opStake):   flow.IsBusy(opStake),
			string(opUnstake): flow.IsBusy(opUnstake),
			string(opClaim):   flow.IsBusy(opClaim),
			string(opCancel):  flow.IsBusy(opCancel),
		},
	}

	if unbonding.HasRequest() {
		remaining := utils.TimeUntilRelease(unbonding.ReleaseTime, time.Now().UTC())
		summary.Unbonding = &UnbondingSummary{
			Amount:        unbonding.Amount.String(),
			ReleaseTime:   unbonding.ReleaseTime,
			TimeRemaining: utils.FormatTimeRemaining(remaining),
			CanClaim:      unbonding.CanClaim || remaining == 0,
		}
	}

	return summary, nil
}

// ValidateAmount previews stake or unstake validation for an account without
// submitting anything.
func (s *Service) ValidateAmount(ctx context.Context, account, amountText, op string) (*validation.Result, *types.Error) {
	flow := s.flowFor(account)
	if err := s.refreshFlow(ctx, flow); err != nil {
		return nil, err
	}

	params, err := s.protocolParams(ctx)
	if err != nil {
		return nil, err
	}

	balances, _ := flow.snapshotReads()

	switch op {
	case "stake":
		result := validation.ValidateStake(
			amountText, balances.Liquid,
			params.MinStakeAmount, params.MaxStakeAmount, s.cfg.Staking.DustThreshold(),
		)
		return result, nil
	case "unstake":
		result := validation.ValidateUnstake(
			amountText, balances.Staked, params.MinStakeAmount,
			utils.FormatUnbondingPeriod(params.UnbondingPeriodSeconds),
		)
		return result, nil
	default:
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationFailed,
			"op must be either stake or unstake",
		)
	}
}
