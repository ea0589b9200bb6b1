package db

import (
	"context"
	"time"

	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveStakeEvent(ctx context.Context, eventDoc *model.StakeEventDocument) error {
	return d.run("SaveStakeEvent", func() error {
		return d.db.SaveStakeEvent(ctx, eventDoc)
	})
}

func (d *DbWithMetrics) GetStakeEventsByAccount(ctx context.Context, account string, limit int64) (result []model.StakeEventDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeEventsByAccount", func() error {
		result, err = d.db.GetStakeEventsByAccount(ctx, account, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveUnbondingRequest(ctx context.Context, requestDoc *model.UnbondingRequestDocument) error {
	return d.run("SaveUnbondingRequest", func() error {
		return d.db.SaveUnbondingRequest(ctx, requestDoc)
	})
}

func (d *DbWithMetrics) GetUnbondingRequest(ctx context.Context, account string) (result *model.UnbondingRequestDocument, err error) {
	//nolint:errcheck
	d.run("GetUnbondingRequest", func() error {
		result, err = d.db.GetUnbondingRequest(ctx, account)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateUnbondingRequestState(
	ctx context.Context, account string,
	qualifiedPreviousStates []string, newState string,
) error {
	return d.run("UpdateUnbondingRequestState", func() error {
		return d.db.UpdateUnbondingRequestState(ctx, account, qualifiedPreviousStates, newState)
	})
}

func (d *DbWithMetrics) FindMaturedUnbondingRequests(ctx context.Context, now time.Time, limit uint64) (result []model.UnbondingRequestDocument, err error) {
	//nolint:errcheck
	d.run("FindMaturedUnbondingRequests", func() error {
		result, err = d.db.FindMaturedUnbondingRequests(ctx, now, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveProtocolParams(ctx context.Context, paramsDoc *model.ProtocolParamsDocument) error {
	return d.run("SaveProtocolParams", func() error {
		return d.db.SaveProtocolParams(ctx, paramsDoc)
	})
}

func (d *DbWithMetrics) GetProtocolParams(ctx context.Context) (result *model.ProtocolParamsDocument, err error) {
	//nolint:errcheck
	d.run("GetProtocolParams", func() error {
		result, err = d.db.GetProtocolParams(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveAccountSnapshot(ctx context.Context, snapshotDoc *model.AccountSnapshotDocument) error {
	return d.run("SaveAccountSnapshot", func() error {
		return d.db.SaveAccountSnapshot(ctx, snapshotDoc)
	})
}

func (d *DbWithMetrics) GetAccountSnapshot(ctx context.Context, account string) (result *model.AccountSnapshotDocument, err error) {
	//nolint:errcheck
	d.run("GetAccountSnapshot", func() error {
		result, err = d.db.GetAccountSnapshot(ctx, account)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTrackedAccounts(ctx context.Context) (result []string, err error) {
	//nolint:errcheck
	d.run("GetTrackedAccounts", func() error {
		result, err = d.db.GetTrackedAccounts(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}
