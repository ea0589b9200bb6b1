package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/tests/mocks"
	"github.com/evermarks/emark-staking-service/testutil"
)

func TestCheckReleases(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	matured := model.UnbondingRequestDocument{
		Account:     testAccount,
		Amount:      testutil.RandomAmount(10, 1000).String(),
		ReleaseTime: time.Now().UTC().Add(-time.Minute),
		State:       model.UnbondingStatePending,
		TxHash:      testutil.RandomTxHash(),
	}

	t.Run("promotes matured requests and notifies", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, publisher)

		dbClient.On("FindMaturedUnbondingRequests", internalCtx, mock.Anything, uint64(100)).
			Return([]model.UnbondingRequestDocument{matured}, nil).Once()
		dbClient.On("UpdateUnbondingRequestState", internalCtx, testAccount,
			[]string{model.UnbondingStatePending}, model.UnbondingStateWithdrawable).
			Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.MatchedBy(func(event *queue.StakingEvent) bool {
			return event.EventType == queue.UnbondingWithdrawableEvent &&
				event.Account == testAccount &&
				event.Amount == matured.Amount
		})).Return(nil).Once()

		require.NoError(t, srv.checkReleases(ctx))
	})

	t.Run("skips requests promoted by a concurrent claim", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, publisher)

		dbClient.On("FindMaturedUnbondingRequests", internalCtx, mock.Anything, uint64(100)).
			Return([]model.UnbondingRequestDocument{matured}, nil).Once()
		dbClient.On("UpdateUnbondingRequestState", internalCtx, testAccount,
			[]string{model.UnbondingStatePending}, model.UnbondingStateWithdrawable).
			Return(&db.NotFoundError{Key: testAccount}).Once()

		require.NoError(t, srv.checkReleases(ctx))
		publisher.AssertNotCalled(t, "PushStakingEvent", internalCtx, mock.Anything)
	})

	t.Run("nothing matured", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, mocks.NewEventPublisher(t))

		dbClient.On("FindMaturedUnbondingRequests", internalCtx, mock.Anything, uint64(100)).
			Return(nil, nil).Once()

		require.NoError(t, srv.checkReleases(ctx))
	})

	t.Run("listing failure surfaces", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, mocks.NewEventPublisher(t))

		dbClient.On("FindMaturedUnbondingRequests", internalCtx, mock.Anything, uint64(100)).
			Return(nil, assert.AnError).Once()

		err := srv.checkReleases(ctx)
		require.Error(t, err)
	})
}
