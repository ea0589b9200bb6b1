package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/tests/mocks"
)

func TestStoredSnapshot(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	snapshot := &model.AccountSnapshotDocument{
		Account:        testAccount,
		LiquidBalance:  "100000000000000000000",
		StakedBalance:  "500000000000000000000",
		Allowance:      "0",
		ReservedPower:  "200000000000000000000",
		AvailablePower: "300000000000000000000",
		RefreshedAt:    time.Now().UTC().Add(-time.Minute),
	}

	t.Run("serves snapshot with outstanding unbonding", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, mocks.NewEventPublisher(t))

		dbClient.On("GetAccountSnapshot", internalCtx, testAccount).Return(snapshot, nil).Once()
		dbClient.On("GetUnbondingRequest", internalCtx, testAccount).Return(&model.UnbondingRequestDocument{
			Account:     testAccount,
			Amount:      "200000000000000000000",
			ReleaseTime: time.Now().UTC().Add(-time.Minute),
			State:       model.UnbondingStateWithdrawable,
			TxHash:      "0xunbond",
		}, nil).Once()

		view, err := srv.StoredSnapshot(ctx, testAccount)
		require.Nil(t, err)
		assert.Equal(t, snapshot.StakedBalance, view.StakedBalance)
		require.NotNil(t, view.Unbonding)
		assert.True(t, view.Unbonding.CanClaim)
		assert.Equal(t, "Ready to claim", view.Unbonding.TimeRemaining)
	})

	t.Run("terminal mirror states are not surfaced", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, mocks.NewEventPublisher(t))

		dbClient.On("GetAccountSnapshot", internalCtx, testAccount).Return(snapshot, nil).Once()
		dbClient.On("GetUnbondingRequest", internalCtx, testAccount).Return(&model.UnbondingRequestDocument{
			Account: testAccount,
			State:   model.UnbondingStateWithdrawn,
		}, nil).Once()

		view, err := srv.StoredSnapshot(ctx, testAccount)
		require.Nil(t, err)
		assert.Nil(t, view.Unbonding)
	})

	t.Run("snapshot without mirror", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, mocks.NewEventPublisher(t))

		dbClient.On("GetAccountSnapshot", internalCtx, testAccount).Return(snapshot, nil).Once()
		dbClient.On("GetUnbondingRequest", internalCtx, testAccount).
			Return(nil, &db.NotFoundError{Key: testAccount}).Once()

		view, err := srv.StoredSnapshot(ctx, testAccount)
		require.Nil(t, err)
		assert.Nil(t, view.Unbonding)
	})

	t.Run("no snapshot recorded", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		srv := newTestService(t, mocks.NewChainInterface(t), dbClient, mocks.NewEventPublisher(t))

		dbClient.On("GetAccountSnapshot", internalCtx, testAccount).
			Return(nil, &db.NotFoundError{Key: testAccount}).Once()

		_, err := srv.StoredSnapshot(ctx, testAccount)
		require.NotNil(t, err)
		assert.Equal(t, types.ValidationFailed, err.Code)
	})
}
