package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evermarks/emark-staking-service/internal/db/model"
)

func (db *Database) SaveStakeEvent(ctx context.Context, eventDoc *model.StakeEventDocument) error {
	_, err := db.collection(model.StakeEventCollection).InsertOne(ctx, eventDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     eventDoc.TxHash,
						Message: "stake event already recorded for this transaction",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetStakeEventsByAccount(ctx context.Context, account string, limit int64) ([]model.StakeEventDocument, error) {
	filter := bson.M{"account": account}
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := db.collection(model.StakeEventCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.StakeEventDocument
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}
