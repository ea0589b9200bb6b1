package services

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/internal/utils/poller"
)

func (s *Service) SyncProtocolParams(ctx context.Context) {
	paramsPoller := poller.New(
		"protocol_params",
		s.cfg.Poller.ParamPollingInterval,
		metrics.RecordPollerDuration("fetch_and_save_params", s.fetchAndSaveParams),
	)
	go paramsPoller.Start(ctx)
}

func (s *Service) fetchAndSaveParams(ctx context.Context) error {
	params, err := s.chain.GetProtocolParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get protocol params: %w", err)
	}

	paramsDoc := &model.ProtocolParamsDocument{
		UnbondingPeriodSeconds: params.UnbondingPeriodSeconds,
		MinStakeAmount:         params.MinStakeAmount.String(),
		MaxStakeAmount:         params.MaxStakeAmount.String(),
	}
	if err := s.db.SaveProtocolParams(ctx, paramsDoc); err != nil {
		return fmt.Errorf("failed to save protocol params: %w", err)
	}

	return nil
}

// protocolParams serves the cached params, falling back to a direct contract
// read before the first poller run has landed.
func (s *Service) protocolParams(ctx context.Context) (*chainclient.ProtocolParams, *types.Error) {
	paramsDoc, err := s.db.GetProtocolParams(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return nil, types.NewInternalServiceError(err)
		}

		params, chainErr := s.chain.GetProtocolParams(ctx)
		if chainErr != nil {
			return nil, types.Classify(chainErr)
		}
		return params, nil
	}

	minAmount, ok := sdkmath.NewIntFromString(paramsDoc.MinStakeAmount)
	if !ok {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("malformed cached min stake amount: %s", paramsDoc.MinStakeAmount))
	}
	maxAmount, ok := sdkmath.NewIntFromString(paramsDoc.MaxStakeAmount)
	if !ok {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("malformed cached max stake amount: %s", paramsDoc.MaxStakeAmount))
	}

	return &chainclient.ProtocolParams{
		UnbondingPeriodSeconds: paramsDoc.UnbondingPeriodSeconds,
		MinStakeAmount:         minAmount,
		MaxStakeAmount:         maxAmount,
	}, nil
}
