package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shushrut/shushrut_backend/internal/model"
)

const reportsCollection = "reports"

type mongoReports struct {
	coll *mongo.Collection
}

func NewReports(db *mongo.Database) Reports {
	return &mongoReports{coll: db.Collection(reportsCollection)}
}

func (s *mongoReports) ListByPatient(ctx context.Context, patientID string) ([]*model.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports for %s: %w", patientID, err)
	}

	reports := []*model.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode reports for %s: %w", patientID, err)
	}
	return reports, nil
}

func (s *mongoReports) DeleteByPatient(ctx context.Context, patientID string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"patientId": patientID}); err != nil {
		return fmt.Errorf("delete reports for %s: %w", patientID, err)
	}
	return nil
}
