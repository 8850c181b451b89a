package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "biomedico"

// nextMongoID emulates the serial ids the Postgres backend produces so
// both backends expose int64 keys. Not safe under concurrent inserts;
// the Postgres backend is the one with enforced uniqueness.
func nextMongoID(ctx context.Context, coll *mongo.Collection) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var last struct {
		ID int64 `bson:"_id"`
	}
	err := coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return last.ID + 1, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
