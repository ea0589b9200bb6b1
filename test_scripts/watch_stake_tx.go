package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Watches a staking transaction until its receipt lands. Usage:
//
//	go run test_scripts/watch_stake_tx.go <rpc-addr> <tx-hash>
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <rpc-addr> <tx-hash>", os.Args[0])
	}
	rpcAddr, txHash := os.Args[1], os.Args[2]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("received interrupt signal, shutting down...")
		cancel()
	}()

	client, err := ethclient.DialContext(ctx, rpcAddr)
	if err != nil {
		log.Fatalf("failed to dial %s: %v", rpcAddr, err)
	}
	defer client.Close()

	hash := common.HexToHash(txHash)
	log.Printf("watching transaction %s", hash)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status == types.ReceiptStatusSuccessful {
				log.Printf("transaction confirmed in block %d", receipt.BlockNumber.Uint64())
			} else {
				log.Printf("transaction reverted in block %d", receipt.BlockNumber.Uint64())
			}
			return
		case errors.Is(err, ethereum.NotFound):
			log.Println("transaction still pending")
		default:
			log.Printf("receipt query failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
