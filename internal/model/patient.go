package model

import "go.mongodb.org/mongo-driver/v2/bson"

type Patient struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string        `bson:"name" json:"name"`
	DOB    *string       `bson:"dob" json:"dob"`
	Gender string        `bson:"gender" json:"gender"`

	BloodGroup string `bson:"bloodGroup" json:"bloodGroup"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`
	History    string `bson:"history" json:"history"`

	// ProfileImage is the durable URL in the object store; ProfilePublicID is
	// the store-internal object key. Both are "" when no image was uploaded.
	ProfileImage    string `bson:"profileImage" json:"profileImage"`
	ProfilePublicID string `bson:"profilePublicId" json:"profilePublicId"`

	SkinImages []string `bson:"skinImages" json:"skinImages"`

	CaseID string `bson:"caseId" json:"caseId"`

	// CreatedBy is the owning doctor's auth subject id. Immutable after
	// creation; every read path is scoped by it.
	CreatedBy string `bson:"createdBy" json:"createdBy"`

	CreatedAt string `bson:"createdAt" json:"createdAt"`
	UpdatedAt string `bson:"updatedAt" json:"updatedAt"`
}

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// NormalizeGender maps any unrecognized value to GenderOther.
func NormalizeGender(g string) string {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return g
	}
	return GenderOther
}
