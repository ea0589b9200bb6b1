package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/config"
	"github.com/evermarks/emark-staking-service/internal/db"
	dbmodel "github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/tracing"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/services"
)

// BackfillSnapshotsCmd refreshes account snapshots for the given accounts,
// useful after adding accounts to track or after a snapshot schema change.
func BackfillSnapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backfill-snapshots [account...]",
		Short: "Refreshes account snapshots for the given accounts",
		Args:  cobra.MinimumNArgs(1),
		RunE:  backfillSnapshots,
	}

	return cmd
}

func backfillSnapshots(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return err
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}

	chainClient, err := chainclient.NewChainClient(ctx, &cfg.Chain)
	if err != nil {
		return err
	}

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		return err
	}
	defer qm.Shutdown()

	service := services.NewService(cfg, dbClient, chainClient, qm)

	for _, account := range args {
		if err := service.RefreshSnapshot(ctx, account); err != nil {
			return err
		}
		log.Info().Str("account", account).Msg("snapshot refreshed")
	}

	return nil
}
