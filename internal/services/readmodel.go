package services

import (
	"context"
	"net/http"
	"time"

	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/internal/utils"
)

// SnapshotView is the cached account view assembled from the snapshot poller
// output and the unbonding mirror. Serving it never touches the chain, so
// dashboards keep rendering through RPC outages.
type SnapshotView struct {
	Account        string            `json:"account"`
	LiquidBalance  string            `json:"liquidBalance"`
	StakedBalance  string            `json:"stakedBalance"`
	Allowance      string            `json:"allowance"`
	ReservedPower  string            `json:"reservedPower"`
	AvailablePower string            `json:"availablePower"`
	PowerDegraded  bool              `json:"powerDegraded"`
	RefreshedAt    time.Time         `json:"refreshedAt"`
	Unbonding      *UnbondingSummary `json:"unbonding,omitempty"`
}

// Ping reports persistence health for the service healthcheck.
func (s *Service) Ping(ctx context.Context) *types.Error {
	if err := s.db.Ping(ctx); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}

// StoredSnapshot serves the last persisted view of an account.
func (s *Service) StoredSnapshot(ctx context.Context, account string) (*SnapshotView, *types.Error) {
	snapshotDoc, err := s.db.GetAccountSnapshot(ctx, account)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.ValidationFailed, "no snapshot recorded for account")
		}
		return nil, types.NewInternalServiceError(err)
	}

	view := &SnapshotView{
		Account:        snapshotDoc.Account,
		LiquidBalance:  snapshotDoc.LiquidBalance,
		StakedBalance:  snapshotDoc.StakedBalance,
		Allowance:      snapshotDoc.Allowance,
		ReservedPower:  snapshotDoc.ReservedPower,
		AvailablePower: snapshotDoc.AvailablePower,
		PowerDegraded:  snapshotDoc.PowerDegraded,
		RefreshedAt:    snapshotDoc.RefreshedAt,
	}

	requestDoc, err := s.db.GetUnbondingRequest(ctx, account)
	if err != nil {
		if db.IsNotFoundError(err) {
			return view, nil
		}
		return nil, types.NewInternalServiceError(err)
	}

	if requestDoc.State == model.UnbondingStatePending || requestDoc.State == model.UnbondingStateWithdrawable {
		remaining := utils.TimeUntilRelease(requestDoc.ReleaseTime, time.Now().UTC())
		view.Unbonding = &UnbondingSummary{
			Amount:        requestDoc.Amount,
			ReleaseTime:   requestDoc.ReleaseTime,
			TimeRemaining: utils.FormatTimeRemaining(remaining),
			CanClaim:      requestDoc.State == model.UnbondingStateWithdrawable || remaining == 0,
		}
	}

	return view, nil
}
