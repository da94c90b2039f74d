package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes the workflows rely on. The unique
// (estate_id, date) index on meetings is load-bearing: it closes the
// read-then-write race in the duplicate-meeting check.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	meetingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "estate_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "seller_id", Value: 1}},
		},
	}
	if _, err := db.Collection("meetings").Indexes().CreateMany(ctx, meetingIndexes); err != nil {
		return err
	}

	estateIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := db.Collection("estates").Indexes().CreateMany(ctx, estateIndexes); err != nil {
		return err
	}

	sellerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("sellers").Indexes().CreateMany(ctx, sellerIndexes); err != nil {
		return err
	}

	logger.Info("ensured mongodb indexes")
	return nil
}
