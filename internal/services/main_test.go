package services

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/config"
	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/tests/mocks"
	"github.com/evermarks/emark-staking-service/testutil"
)

var testAccount = testutil.RandomAccount()

func init() {
	metrics.Init(9999)
}

func newTestService(t *testing.T, chain *mocks.ChainInterface, dbClient *mocks.DbInterface, publisher *mocks.EventPublisher) *Service {
	t.Helper()

	cfg := &config.Config{
		Chain: config.ChainConfig{
			ConfirmationPollInterval: time.Millisecond,
			ConfirmationTimeout:      time.Second,
		},
		Poller: config.PollerConfig{
			MaturedRequestsLimit: 100,
			SnapshotConcurrency:  2,
		},
	}

	return NewService(cfg, dbClient, chain, publisher)
}

func testParams() *chainclient.ProtocolParams {
	return &chainclient.ProtocolParams{
		UnbondingPeriodSeconds: 7 * 24 * 3600,
		MinStakeAmount:         types.AmountFromEmark(10),
		MaxStakeAmount:         types.AmountFromEmark(1_000_000),
	}
}

func noUnbonding() *chainclient.UnbondingInfo {
	return &chainclient.UnbondingInfo{Amount: sdkmath.ZeroInt()}
}

func paramsNotCached() error {
	return &db.NotFoundError{Key: "STAKING", Message: "protocol params not cached yet"}
}
