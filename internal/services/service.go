package services

import (
	"context"
	"sync"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/config"
	"github.com/evermarks/emark-staking-service/internal/db"
	"github.com/evermarks/emark-staking-service/internal/queue"
)

type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	chain        chainclient.ChainInterface
	queueManager queue.EventPublisher

	flowsMu sync.Mutex
	flows   map[string]*Flow
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	chain chainclient.ChainInterface,
	qm queue.EventPublisher,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		chain:        chain,
		queueManager: qm,
		flows:        make(map[string]*Flow),
	}
}

// StartStakingSync launches the background pollers: protocol params sync,
// the unbonding release checker and the account snapshot refresher.
func (s *Service) StartStakingSync(ctx context.Context) {
	s.SyncProtocolParams(ctx)
	s.StartReleaseChecker(ctx)
	s.StartSnapshotPoller(ctx)
}
