// Package store abstracts the record store behind per-collection
// interfaces so services can be exercised against in-memory fakes.
package store

import (
	"context"
	"errors"

	"github.com/shushrut/shushrut_backend/internal/model"
)

// ErrNotFound is returned when the referenced document does not exist.
// An id that cannot be a valid document key also maps to ErrNotFound.
var ErrNotFound = errors.New("document not found")

type Patients interface {
	// Insert persists a new patient and returns it with its generated id.
	Insert(ctx context.Context, p *model.Patient) (*model.Patient, error)

	// GetByID returns ErrNotFound if the patient does not exist.
	GetByID(ctx context.Context, id string) (*model.Patient, error)

	// ListByDoctor returns all patients whose createdBy equals doctorID,
	// in store order. Callers own sorting.
	ListByDoctor(ctx context.Context, doctorID string) ([]*model.Patient, error)

	// Delete removes the patient document. Deleting an absent patient
	// returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// AddSkinImage appends imageURL to skinImages with set-union semantics
	// (adding a URL already present is a no-op) and refreshes updatedAt.
	// The mutation is atomic at the document level.
	AddSkinImage(ctx context.Context, id, imageURL, updatedAt string) error

	// RemoveSkinImage removes all occurrences of imageURL from skinImages.
	// Removing a URL that is not present is a no-op, not an error.
	RemoveSkinImage(ctx context.Context, id, imageURL string) error
}

// DoctorUpdate carries the profile fields being written; nil fields are
// left untouched in the stored document (merge, not overwrite).
type DoctorUpdate struct {
	Name           *string
	Specialization *string
	ClinicName     *string
	Phone          *string
	Email          *string
	ProfileImage   *string
	UpdatedAt      string
}

type Doctors interface {
	// Get returns ErrNotFound when no profile document exists yet.
	Get(ctx context.Context, id string) (*model.Doctor, error)

	// Merge upserts the profile document, setting only the non-nil fields
	// of upd, and returns the resulting document.
	Merge(ctx context.Context, id string, upd DoctorUpdate) (*model.Doctor, error)
}

type Reports interface {
	// ListByPatient returns the patient's reports sorted by createdAt
	// descending. An unknown patient yields an empty slice.
	ListByPatient(ctx context.Context, patientID string) ([]*model.Report, error)

	// DeleteByPatient removes every report belonging to patientID.
	DeleteByPatient(ctx context.Context, patientID string) error
}
