package services

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/tests/mocks"
)

func TestRequestUnstake(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	unstakeAmount := types.AmountFromEmark(200)

	t.Run("ok", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		releaseTime := time.Now().Add(7 * 24 * time.Hour).UTC()

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(500), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil).Once()
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(&chainclient.UnbondingInfo{
			Amount:      unstakeAmount,
			ReleaseTime: releaseTime,
		}, nil).Once()

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		chain.On("StartUnbonding", internalCtx, unstakeAmount).Return("0xunbond", nil).Once()
		chain.On("TransactionStatus", internalCtx, "0xunbond").Return(chainclient.TxConfirmed, nil)

		dbClient.On("SaveUnbondingRequest", internalCtx, mock.MatchedBy(func(doc *model.UnbondingRequestDocument) bool {
			return doc.Account == testAccount &&
				doc.State == model.UnbondingStatePending &&
				doc.ReleaseTime.Equal(releaseTime)
		})).Return(nil).Once()
		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Once()

		err := srv.RequestUnstake(ctx, "200")
		require.Nil(t, err)
	})

	t.Run("proceeds while a stake is still confirming", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		// only a second unstake is blocked, a confirming stake is not
		flow := srv.flowFor(testAccount)
		require.Nil(t, flow.beginOp(opStake))
		defer flow.endOp(opStake)

		releaseTime := time.Now().Add(7 * 24 * time.Hour).UTC()

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(500), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil).Once()
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(&chainclient.UnbondingInfo{
			Amount:      unstakeAmount,
			ReleaseTime: releaseTime,
		}, nil).Once()

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		chain.On("StartUnbonding", internalCtx, unstakeAmount).Return("0xunbond", nil).Once()
		chain.On("TransactionStatus", internalCtx, "0xunbond").Return(chainclient.TxConfirmed, nil)

		dbClient.On("SaveUnbondingRequest", internalCtx, mock.Anything).Return(nil).Once()
		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Once()

		err := srv.RequestUnstake(ctx, "200")
		require.Nil(t, err)
	})

	t.Run("rejects amount above staked balance", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, chain, dbClient, mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(500), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		err := srv.RequestUnstake(ctx, "600")
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationFailed, err.Code)
		assert.Contains(t, err.Message, "Cannot unstake more than your staked amount")
		chain.AssertNotCalled(t, "StartUnbonding", internalCtx, mock.Anything)
	})

	t.Run("rejects while a request is outstanding", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		srv := newTestService(t, chain, mocks.NewDbInterface(t), mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(500), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(&chainclient.UnbondingInfo{
			Amount:      types.AmountFromEmark(100),
			ReleaseTime: time.Now().Add(time.Hour),
		}, nil)

		err := srv.RequestUnstake(ctx, "200")
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationFailed, err.Code)
		assert.Contains(t, err.Message, "already active")
		chain.AssertNotCalled(t, "StartUnbonding", internalCtx, mock.Anything)
	})
}

func TestCompleteUnstake(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	t.Run("rejects before the release time with remaining countdown", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		srv := newTestService(t, chain, mocks.NewDbInterface(t), mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(300), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(&chainclient.UnbondingInfo{
			Amount:      types.AmountFromEmark(200),
			ReleaseTime: time.Now().UTC().Add(61*time.Minute + 30*time.Second),
		}, nil)

		err := srv.CompleteUnstake(ctx)
		require.NotNil(t, err)
		assert.Equal(t, types.UnbondingNotReady, err.Code)
		assert.Contains(t, err.Message, "1h 1m remaining")
		// the guard fires locally, no withdrawal ever reaches the chain
		chain.AssertNotCalled(t, "Withdraw", internalCtx)
	})

	t.Run("rejects without a request", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		srv := newTestService(t, chain, mocks.NewDbInterface(t), mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(300), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)

		err := srv.CompleteUnstake(ctx)
		require.NotNil(t, err)
		assert.Equal(t, types.NoUnbondingRequest, err.Code)
		chain.AssertNotCalled(t, "Withdraw", internalCtx)
	})

	t.Run("withdraws a matured request", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(300), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(&chainclient.UnbondingInfo{
			Amount:      types.AmountFromEmark(200),
			ReleaseTime: time.Now().UTC().Add(-time.Minute),
			CanClaim:    true,
		}, nil).Once()
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil).Once()

		chain.On("Withdraw", internalCtx).Return("0xwithdraw", nil).Once()
		chain.On("TransactionStatus", internalCtx, "0xwithdraw").Return(chainclient.TxConfirmed, nil)

		dbClient.On("UpdateUnbondingRequestState", internalCtx, testAccount,
			[]string{model.UnbondingStatePending, model.UnbondingStateWithdrawable},
			model.UnbondingStateWithdrawn).Return(nil).Once()
		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Once()

		err := srv.CompleteUnstake(ctx)
		require.Nil(t, err)
	})
}

func TestCancelUnbonding(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	t.Run("cancels an outstanding request", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(300), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(&chainclient.UnbondingInfo{
			Amount:      types.AmountFromEmark(200),
			ReleaseTime: time.Now().UTC().Add(time.Hour),
		}, nil).Once()
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil).Once()

		chain.On("CancelUnbonding", internalCtx).Return("0xcancel", nil).Once()
		chain.On("TransactionStatus", internalCtx, "0xcancel").Return(chainclient.TxConfirmed, nil)

		dbClient.On("UpdateUnbondingRequestState", internalCtx, testAccount,
			[]string{model.UnbondingStatePending, model.UnbondingStateWithdrawable},
			model.UnbondingStateCancelled).Return(nil).Once()
		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Once()

		err := srv.CancelUnbonding(ctx)
		require.Nil(t, err)
	})

	t.Run("double cancel is rejected locally", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		srv := newTestService(t, chain, mocks.NewDbInterface(t), mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(100), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(300), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)

		err := srv.CancelUnbonding(ctx)
		require.NotNil(t, err)
		assert.Equal(t, types.NoUnbondingRequest, err.Code)
		chain.AssertNotCalled(t, "CancelUnbonding", internalCtx)
	})
}
