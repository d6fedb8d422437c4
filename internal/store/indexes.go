package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EnsureIndexes creates the indexes the query paths depend on. Safe to run
// repeatedly; invoked by `shushrut system init`.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	patientIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "caseId", Value: 1}}},
	}
	if _, err := db.Collection(patientsCollection).Indexes().CreateMany(ctx, patientIdx); err != nil {
		return fmt.Errorf("create patient indexes: %w", err)
	}

	reportIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(reportsCollection).Indexes().CreateMany(ctx, reportIdx); err != nil {
		return fmt.Errorf("create report indexes: %w", err)
	}

	return nil
}
