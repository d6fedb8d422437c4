package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/shushrut/shushrut_backend/internal/model"
)

const patientsCollection = "patients"

type mongoPatients struct {
	coll *mongo.Collection
}

func NewPatients(db *mongo.Database) Patients {
	return &mongoPatients{coll: db.Collection(patientsCollection)}
}

func (s *mongoPatients) Insert(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert patient: unexpected inserted id type %T", res.InsertedID)
	}
	p.ID = oid
	return p, nil
}

func (s *mongoPatients) GetByID(ctx context.Context, id string) (*model.Patient, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p model.Patient
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient %s: %w", id, err)
	}
	return &p, nil
}

func (s *mongoPatients) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Patient, error) {
	cur, err := s.coll.Find(ctx, bson.M{"createdBy": doctorID})
	if err != nil {
		return nil, fmt.Errorf("list patients for %s: %w", doctorID, err)
	}

	patients := []*model.Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients for %s: %w", doctorID, err)
	}
	return patients, nil
}

func (s *mongoPatients) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete patient %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPatients) AddSkinImage(ctx context.Context, id, imageURL, updatedAt string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	// $addToSet keeps the mutation a targeted single-document operation:
	// two overlapping adds to the same gallery never race-overwrite.
	res, err := s.coll.UpdateByID(ctx, oid, bson.M{
		"$addToSet": bson.M{"skinImages": imageURL},
		"$set":      bson.M{"updatedAt": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("add skin image for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPatients) RemoveSkinImage(ctx context.Context, id, imageURL string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.UpdateByID(ctx, oid, bson.M{
		"$pull": bson.M{"skinImages": imageURL},
	})
	if err != nil {
		return fmt.Errorf("remove skin image for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
