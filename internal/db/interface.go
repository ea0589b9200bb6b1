package db

import (
	"context"
	"time"

	"github.com/evermarks/emark-staking-service/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	SaveStakeEvent(ctx context.Context, eventDoc *model.StakeEventDocument) error
	GetStakeEventsByAccount(ctx context.Context, account string, limit int64) ([]model.StakeEventDocument, error)

	SaveUnbondingRequest(ctx context.Context, requestDoc *model.UnbondingRequestDocument) error
	GetUnbondingRequest(ctx context.Context, account string) (*model.UnbondingRequestDocument, error)
	UpdateUnbondingRequestState(
		ctx context.Context, account string,
		qualifiedPreviousStates []string, newState string,
	) error
	FindMaturedUnbondingRequests(ctx context.Context, now time.Time, limit uint64) ([]model.UnbondingRequestDocument, error)

	SaveProtocolParams(ctx context.Context, paramsDoc *model.ProtocolParamsDocument) error
	GetProtocolParams(ctx context.Context) (*model.ProtocolParamsDocument, error)

	SaveAccountSnapshot(ctx context.Context, snapshotDoc *model.AccountSnapshotDocument) error
	GetAccountSnapshot(ctx context.Context, account string) (*model.AccountSnapshotDocument, error)
	GetTrackedAccounts(ctx context.Context) ([]string, error)
}
