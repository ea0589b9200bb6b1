package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/types"
)

// waitForConfirmation polls the transaction receipt until it confirms, fails
// or the configured timeout passes. Status read errors are tolerated until
// the deadline, a transient RPC hiccup must not fail a transaction that is
// still progressing.
func (s *Service) waitForConfirmation(ctx context.Context, txHash string) *types.Error {
	deadline := time.Now().Add(s.cfg.Chain.ConfirmationTimeout)
	ticker := time.NewTicker(s.cfg.Chain.ConfirmationPollInterval)
	defer ticker.Stop()

	for {
		status, err := s.chain.TransactionStatus(ctx, txHash)
		if err != nil {
			log.Ctx(ctx).Debug().
				Err(err).
				Str("tx_hash", txHash).
				Msg("transaction status query failed, will retry")
		} else {
			switch status {
			case chainclient.TxConfirmed:
				return nil
			case chainclient.TxFailed:
				return types.NewError(
					http.StatusInternalServerError,
					types.TransactionFailed,
					fmt.Errorf("transaction %s reverted on chain", txHash),
				)
			}
		}

		if time.Now().After(deadline) {
			return types.NewError(
				http.StatusBadGateway,
				types.NetworkError,
				fmt.Errorf("timed out waiting for confirmation of transaction %s", txHash),
			)
		}

		select {
		case <-ctx.Done():
			return types.NewError(
				http.StatusBadGateway,
				types.NetworkError,
				fmt.Errorf("confirmation wait cancelled for transaction %s: %w", txHash, ctx.Err()),
			)
		case <-ticker.C:
		}
	}
}
