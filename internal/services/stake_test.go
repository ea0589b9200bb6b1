package services

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/tests/mocks"
	"github.com/evermarks/emark-staking-service/testutil"
)

func TestStake(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	stakeAmount := types.AmountFromEmark(100)
	approveTx := testutil.RandomTxHash()
	stakeTx := testutil.RandomTxHash()

	t.Run("approve then stake when allowance is zero", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(1000), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)
		// first read sees no allowance, the read after approval covers the amount,
		// the read after staking sees it spent
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil).Once()
		chain.On("Allowance", internalCtx, testAccount).Return(stakeAmount, nil).Once()
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil).Once()

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		chain.On("Approve", internalCtx, stakeAmount).Return(approveTx, nil).Once()
		chain.On("Stake", internalCtx, stakeAmount).Return(stakeTx, nil).Once()
		chain.On("TransactionStatus", internalCtx, approveTx).Return(chainclient.TxConfirmed, nil)
		chain.On("TransactionStatus", internalCtx, stakeTx).Return(chainclient.TxConfirmed, nil)

		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Twice()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Twice()

		err := srv.Stake(ctx, "100")
		require.Nil(t, err)
	})

	t.Run("skips approval when allowance already covers amount", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(1000), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)
		// an exactly-equal allowance passes the gate without a new approval
		chain.On("Allowance", internalCtx, testAccount).Return(stakeAmount, nil)

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		chain.On("Stake", internalCtx, stakeAmount).Return(stakeTx, nil).Once()
		chain.On("TransactionStatus", internalCtx, stakeTx).Return(chainclient.TxConfirmed, nil)

		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Once()

		err := srv.Stake(ctx, "100")
		require.Nil(t, err)
	})

	t.Run("rejects before approval when balance is insufficient", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(1000), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		err := srv.Stake(ctx, "2000")
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationFailed, err.Code)
		assert.Contains(t, err.Message, "Insufficient EMARK balance")
		chain.AssertNotCalled(t, "Approve", internalCtx, mock.Anything)
		chain.AssertNotCalled(t, "Stake", internalCtx, mock.Anything)
	})

	t.Run("re-check after approval still short", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(1000), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)
		// allowance stays short even after the approval confirms
		chain.On("Allowance", internalCtx, testAccount).Return(types.AmountFromEmark(50), nil)

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		chain.On("Approve", internalCtx, stakeAmount).Return(approveTx, nil).Once()
		chain.On("TransactionStatus", internalCtx, approveTx).Return(chainclient.TxConfirmed, nil)
		dbClient.On("SaveStakeEvent", internalCtx, mock.Anything).Return(nil).Once()
		publisher.On("PushStakingEvent", internalCtx, mock.Anything).Return(nil).Once()

		err := srv.Stake(ctx, "100")
		require.NotNil(t, err)
		assert.Equal(t, types.InsufficientAllowance, err.Code)
		chain.AssertNotCalled(t, "Stake", internalCtx, mock.Anything)
	})

	t.Run("reverted stake transaction", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		dbClient := mocks.NewDbInterface(t)
		publisher := mocks.NewEventPublisher(t)
		srv := newTestService(t, chain, dbClient, publisher)

		chain.On("ConnectedAccount").Return(testAccount)
		chain.On("BalanceOf", internalCtx, testAccount).Return(types.AmountFromEmark(1000), nil)
		chain.On("StakedBalanceOf", internalCtx, testAccount).Return(sdkmath.ZeroInt(), nil)
		chain.On("GetUnbondingInfo", internalCtx, testAccount).Return(noUnbonding(), nil)
		chain.On("Allowance", internalCtx, testAccount).Return(stakeAmount, nil)

		dbClient.On("GetProtocolParams", internalCtx).Return(nil, paramsNotCached())
		chain.On("GetProtocolParams", internalCtx).Return(testParams(), nil)

		chain.On("Stake", internalCtx, stakeAmount).Return(stakeTx, nil).Once()
		chain.On("TransactionStatus", internalCtx, stakeTx).Return(chainclient.TxFailed, nil)

		err := srv.Stake(ctx, "100")
		require.NotNil(t, err)
		assert.Equal(t, types.TransactionFailed, err.Code)
		assert.False(t, err.Code.Recoverable())
		publisher.AssertNotCalled(t, "PushStakingEvent", internalCtx, mock.Anything)
	})

	t.Run("wallet not connected", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		srv := newTestService(t, chain, mocks.NewDbInterface(t), mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return("")

		err := srv.Stake(ctx, "100")
		require.NotNil(t, err)
		assert.Equal(t, types.WalletNotConnected, err.Code)
	})

	t.Run("rejects a second stake while one is in flight", func(t *testing.T) {
		chain := mocks.NewChainInterface(t)
		srv := newTestService(t, chain, mocks.NewDbInterface(t), mocks.NewEventPublisher(t))

		chain.On("ConnectedAccount").Return(testAccount)

		flow := srv.flowFor(testAccount)
		require.Nil(t, flow.beginOp(opStake))
		defer flow.endOp(opStake)

		err := srv.Stake(ctx, "100")
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationFailed, err.Code)
		assert.Contains(t, err.Message, "stake operation is already in progress")
	})
}
