package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shushrut/shushrut_backend/internal/model"
)

const doctorsCollection = "doctors"

type mongoDoctors struct {
	coll *mongo.Collection
}

func NewDoctors(db *mongo.Database) Doctors {
	return &mongoDoctors{coll: db.Collection(doctorsCollection)}
}

func (s *mongoDoctors) Get(ctx context.Context, id string) (*model.Doctor, error) {
	var d model.Doctor
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor %s: %w", id, err)
	}
	return &d, nil
}

func (s *mongoDoctors) Merge(ctx context.Context, id string, upd DoctorUpdate) (*model.Doctor, error) {
	set := bson.M{"updatedAt": upd.UpdatedAt}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Specialization != nil {
		set["specialization"] = *upd.Specialization
	}
	if upd.ClinicName != nil {
		set["clinicName"] = *upd.ClinicName
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.ProfileImage != nil {
		set["profileImage"] = *upd.ProfileImage
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var d model.Doctor
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("merge doctor %s: %w", id, err)
	}
	return &d, nil
}
