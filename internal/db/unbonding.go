package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evermarks/emark-staking-service/internal/db/model"
	"github.com/evermarks/emark-staking-service/internal/utils"
)

var unbondingStates = []string{
	model.UnbondingStatePending,
	model.UnbondingStateWithdrawable,
	model.UnbondingStateWithdrawn,
	model.UnbondingStateCancelled,
}

// SaveUnbondingRequest upserts the per-account unbonding mirror. The unique
// index on account enforces the at-most-one-request invariant at the
// persistence layer as well.
func (db *Database) SaveUnbondingRequest(ctx context.Context, requestDoc *model.UnbondingRequestDocument) error {
	filter := bson.M{"account": requestDoc.Account}
	update := bson.M{"$set": requestDoc}

	_, err := db.collection(model.UnbondingRequestCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetUnbondingRequest(ctx context.Context, account string) (*model.UnbondingRequestDocument, error) {
	filter := bson.M{"account": account}

	var requestDoc model.UnbondingRequestDocument
	err := db.collection(model.UnbondingRequestCollection).FindOne(ctx, filter).Decode(&requestDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     account,
				Message: "no unbonding request found for account",
			}
		}
		return nil, err
	}

	return &requestDoc, nil
}

// UpdateUnbondingRequestState transitions the mirror state only when the
// current state is one of the qualified previous states.
func (db *Database) UpdateUnbondingRequestState(
	ctx context.Context, account string,
	qualifiedPreviousStates []string, newState string,
) error {
	if len(qualifiedPreviousStates) == 0 {
		return fmt.Errorf("qualified previous states are required")
	}
	if !utils.Contains(unbondingStates, newState) {
		return fmt.Errorf("unknown unbonding request state: %s", newState)
	}

	filter := bson.M{
		"account": account,
		"state":   bson.M{"$in": qualifiedPreviousStates},
	}
	update := bson.M{"$set": bson.M{
		"state":      newState,
		"updated_at": time.Now().UTC(),
	}}

	result, err := db.collection(model.UnbondingRequestCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     account,
			Message: "no unbonding request in a qualified state for account",
		}
	}

	return nil
}

// FindMaturedUnbondingRequests returns pending requests whose release time
// has passed.
func (db *Database) FindMaturedUnbondingRequests(ctx context.Context, now time.Time, limit uint64) ([]model.UnbondingRequestDocument, error) {
	filter := bson.M{
		"state":        model.UnbondingStatePending,
		"release_time": bson.M{"$lte": now},
	}
	opts := options.Find().SetLimit(int64(limit))

	cursor, err := db.collection(model.UnbondingRequestCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []model.UnbondingRequestDocument
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}
