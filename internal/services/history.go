package services

import (
	"context"

	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/types"
)

const defaultHistoryLimit = 50

// StakeHistory returns the most recent confirmed operations for an account.
func (s *Service) StakeHistory(ctx context.Context, account string, limit int64) ([]model.StakeEventDocument, *types.Error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	events, err := s.db.GetStakeEventsByAccount(ctx, account, limit)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	return events, nil
}
