package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/utils/poller"
)

func (s *Service) StartReleaseChecker(ctx context.Context) {
	releaseCheckerPoller := poller.New(
		"release_checker",
		s.cfg.Poller.ReleaseCheckerPollingInterval,
		metrics.RecordPollerDuration("check_releases", s.checkReleases),
	)
	go releaseCheckerPoller.Start(ctx)
}

// checkReleases promotes pending unbonding requests whose release time has
// passed to withdrawable and notifies downstream consumers. The chain does
// the same check on withdrawal, this mirror exists so dashboards flip to
// "ready" without waiting for the user to poll.
func (s *Service) checkReleases(ctx context.Context) error {
	now := time.Now().UTC()

	maturedRequests, err := s.db.FindMaturedUnbondingRequests(ctx, now, s.cfg.Poller.MaturedRequestsLimit)
	if err != nil {
		return fmt.Errorf("failed to find matured unbonding requests: %w", err)
	}

	metrics.RecordMaturedUnbondingCount(len(maturedRequests))

	for _, requestDoc := range maturedRequests {
		qualified := []string{model.UnbondingStatePending}
		err := s.db.UpdateUnbondingRequestState(ctx, requestDoc.Account, qualified, model.UnbondingStateWithdrawable)
		if err != nil {
			// Already promoted or claimed by a concurrent operation.
			if db.IsNotFoundError(err) {
				continue
			}
			return fmt.Errorf("failed to promote unbonding request for %s: %w", requestDoc.Account, err)
		}

		event := queue.NewStakingEvent(
			queue.UnbondingWithdrawableEvent, requestDoc.Account, requestDoc.Amount, requestDoc.TxHash,
		)
		event.ReleaseTime = requestDoc.ReleaseTime
		s.emitEvent(ctx, event)

		log.Ctx(ctx).Info().
			Str("account", requestDoc.Account).
			Str("amount", requestDoc.Amount).
			Time("release_time", requestDoc.ReleaseTime).
			Msg("unbonding request matured")
	}

	return nil
}
