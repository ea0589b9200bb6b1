package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evermarks/emark-staking-service/internal/db/model"
)

const (
	// stakingParamsVersion is hardcoded to 0: the staking contract exposes a
	// single live parameter set. The versioning stays in place for future
	// compatibility with the other global params.
	stakingParamsVersion = 0
	stakingParamsType    = "STAKING"
)

func (db *Database) SaveProtocolParams(ctx context.Context, paramsDoc *model.ProtocolParamsDocument) error {
	paramsDoc.Type = stakingParamsType
	paramsDoc.Version = stakingParamsVersion

	filter := bson.M{
		"type":    stakingParamsType,
		"version": stakingParamsVersion,
	}
	update := bson.M{"$set": paramsDoc}

	_, err := db.collection(model.GlobalParamsCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetProtocolParams(ctx context.Context) (*model.ProtocolParamsDocument, error) {
	filter := bson.M{
		"type":    stakingParamsType,
		"version": stakingParamsVersion,
	}

	var paramsDoc model.ProtocolParamsDocument
	err := db.collection(model.GlobalParamsCollection).FindOne(ctx, filter).Decode(&paramsDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     stakingParamsType,
				Message: "protocol params not cached yet",
			}
		}
		return nil, fmt.Errorf("failed to get protocol params: %w", err)
	}

	return &paramsDoc, nil
}
