package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/evermarks/emark-staking-service/internal/api"
	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/config"
	"github.com/evermarks/emark-staking-service/internal/db"
	dbmodel "github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
	"github.com/evermarks/emark-staking-service/internal/observability/tracing"
	"github.com/evermarks/emark-staking-service/internal/queue"
	"github.com/evermarks/emark-staking-service/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the EMARK staking service",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var chainClient chainclient.ChainInterface
	chainClient, err = chainclient.NewChainClient(ctx, &cfg.Chain)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating chain client")
	}
	chainClient = chainclient.NewChainClientWithMetrics(chainClient)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating queue manager")
	}
	defer qm.Shutdown()

	service := services.NewService(cfg, dbClient, chainClient, qm)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartStakingSync(ctx)

	apiServer := api.New(&cfg.API, service)
	return apiServer.Start(ctx)
}
