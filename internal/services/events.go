package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/types"
)

// recordOperation appends a confirmed operation to the stake event history.
// A duplicate key means the operation was already recorded for this
// transaction, which is fine on retried confirmations.
func (s *Service) recordOperation(ctx context.Context, txHash, account, op string, amount string) *types.Error {
	eventDoc := model.NewStakeEventDocument(txHash, account, op, amount)
	if err := s.db.SaveStakeEvent(ctx, eventDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil
		}
		return types.NewInternalServiceError(err)
	}
	return nil
}

// emitEvent pushes a staking event to the downstream queue. The chain state
// has already changed by the time this runs, so a publish failure is logged
// and counted but never fails the operation.
func (s *Service) emitEvent(ctx context.Context, event *queue.StakingEvent) {
	if err := s.queueManager.PushStakingEvent(ctx, event); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("event_type", string(event.EventType)).
			Str("account", event.Account).
			Msg("failed to publish staking event")
	}
}
