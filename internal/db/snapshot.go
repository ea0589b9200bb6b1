package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evermarks/emark-staking-service/internal/db/model"
)

func (db *Database) SaveAccountSnapshot(ctx context.Context, snapshotDoc *model.AccountSnapshotDocument) error {
	filter := bson.M{"account": snapshotDoc.Account}
	update := bson.M{"$set": snapshotDoc}

	_, err := db.collection(model.AccountSnapshotCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetAccountSnapshot(ctx context.Context, account string) (*model.AccountSnapshotDocument, error) {
	filter := bson.M{"account": account}

	var snapshotDoc model.AccountSnapshotDocument
	err := db.collection(model.AccountSnapshotCollection).FindOne(ctx, filter).Decode(&snapshotDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     account,
				Message: "no snapshot found for account",
			}
		}
		return nil, err
	}

	return &snapshotDoc, nil
}

// GetTrackedAccounts lists every account with a snapshot, the set the
// snapshot poller keeps refreshing.
func (db *Database) GetTrackedAccounts(ctx context.Context) ([]string, error) {
	values, err := db.collection(model.AccountSnapshotCollection).
		Distinct(ctx, "account", bson.M{})
	if err != nil {
		return nil, err
	}

	accounts := make([]string, 0, len(values))
	for _, v := range values {
		if account, ok := v.(string); ok {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}
