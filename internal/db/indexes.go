package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// indexSpec declares one index on one collection.
type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

// requiredIndexes is the full set of indexes the application relies on.
// Account usernames and roster identifiers are unique; post and training
// lookups by author are frequent enough to warrant secondary indexes.
var requiredIndexes = []indexSpec{
	{"admins", mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}},
	{"students", mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}},
	{"alumnis", mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}},
	{"people", mongo.IndexModel{
		Keys:    bson.D{{Key: "rollno", Value: 1}},
		Options: options.Index().SetUnique(true),
	}},
	{"people", mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}},
	{"posts", mongo.IndexModel{
		Keys: bson.D{{Key: "alumni_id", Value: 1}},
	}},
	{"posts", mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}},
	{"trainings", mongo.IndexModel{
		Keys: bson.D{{Key: "alumni_id", Value: 1}},
	}},
}

// EnsureIndexes creates every required index. CreateOne is idempotent when
// the index already exists with the same definition.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for _, spec := range requiredIndexes {
		name, err := database.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", spec.collection, err)
		}
		logger.Debug().Str("collection", spec.collection).Str("index", name).Msg("Index ensured")
	}
	return nil
}
