package model

// Doctor is keyed by the auth subject id; at most one document per
// authenticated subject. Created implicitly on first profile write.
type Doctor struct {
	ID             string `bson:"_id" json:"-"`
	Name           string `bson:"name" json:"name"`
	Specialization string `bson:"specialization" json:"specialization"`
	ClinicName     string `bson:"clinicName" json:"clinicName"`
	Phone          string `bson:"phone" json:"phone"`
	Email          string `bson:"email" json:"email"`
	ProfileImage   string `bson:"profileImage" json:"profileImage"`
	UpdatedAt      string `bson:"updatedAt" json:"updatedAt,omitempty"`
}

const (
	DefaultSpecialization = "General Dermatologist"
	DefaultClinicName     = "My Clinic"
)
