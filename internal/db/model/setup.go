package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evermarks/emark-staking-service/internal/config"
)

const (
	StakeEventCollection       = "stake_events"
	UnbondingRequestCollection = "unbonding_requests"
	GlobalParamsCollection     = "global_params"
	AccountSnapshotCollection  = "account_snapshots"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	StakeEventCollection: {
		{Indexes: map[string]int{"tx_hash": 1}, Unique: true},
		{Indexes: map[string]int{"account": 1, "created_at": -1}, Unique: false},
	},
	UnbondingRequestCollection: {
		{Indexes: map[string]int{"account": 1}, Unique: true},
		{Indexes: map[string]int{"release_time": 1}, Unique: false},
	},
	GlobalParamsCollection: {
		{Indexes: map[string]int{"type": 1, "version": 1}, Unique: true},
	},
	AccountSnapshotCollection: {
		{Indexes: map[string]int{"account": 1}, Unique: true},
	},
}

// Setup creates the collections and indexes this service reads and writes.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	for name, idxs := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	return client.Disconnect(ctx)
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	err := database.CreateCollection(ctx, collectionName)
	if err != nil {
		var cmdErr mongo.CommandError
		// NamespaceExists
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
	}
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	keys := bson.D{}
	for field, direction := range idx.Indexes {
		keys = append(keys, bson.E{Key: field, Value: direction})
	}

	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create index on collection %s: %w", collectionName, err)
	}

	return nil
}
