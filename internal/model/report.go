package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Report is written by the external prediction pipeline and is append-only
// from this system's perspective; we only list and cascade-delete.
type Report struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID  string        `bson:"patientId" json:"patientId"`
	Diagnosis  string        `bson:"diagnosis" json:"diagnosis"`
	Confidence float64       `bson:"confidence" json:"confidence"`
	Remarks    string        `bson:"remarks" json:"remarks"`
	Report     string        `bson:"report" json:"report"`
	Verify     string        `bson:"verify" json:"verify"`
	Prediction string        `bson:"prediction" json:"prediction"`
	ImageURL   string        `bson:"imageUrl" json:"imageUrl"`
	CreatedAt  string        `bson:"createdAt" json:"createdAt"`
}
