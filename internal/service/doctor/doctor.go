// Package doctor manages the authenticated doctor's profile document.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/shushrut/shushrut_backend/internal/model"
	"github.com/shushrut/shushrut_backend/internal/store"
	"github.com/shushrut/shushrut_backend/pkg/objectstore"
	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"
	"github.com/shushrut/shushrut_backend/pkg/reqctx"
)

// UpdateProfileRequest carries only the form fields that were present
// in the request; nil means "leave untouched".
type UpdateProfileRequest struct {
	Name           *string
	Specialization *string
	ClinicName     *string
	Phone          *string
	Email          *string

	// ExistingImage keeps the current image URL when no new file is
	// uploaded.
	ExistingImage *string
	Image         *multipart.FileHeader
}

// ObjectStore is the slice of the object store the service needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, folder string, fh *multipart.FileHeader) (*objectstore.UploadResult, error)
}

type Service interface {
	// GetProfile never fails with not-found: a doctor without a stored
	// profile gets a bootstrap view assembled from their token claims.
	GetProfile(ctx context.Context, claims *pasetotoken.Claims) (*model.Doctor, error)

	UpdateProfile(ctx context.Context, doctorID string, req UpdateProfileRequest) (*model.Doctor, error)
}

type doctorService struct {
	doctors store.Doctors
	objects ObjectStore
	log     *slog.Logger
}

// logger attaches the request id carried in ctx, when there is one.
func (s *doctorService) logger(ctx context.Context) *slog.Logger {
	if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
		return s.log.With("request_id", rid)
	}
	return s.log
}

func New(doctors store.Doctors, objects ObjectStore, log *slog.Logger) Service {
	return &doctorService{doctors: doctors, objects: objects, log: log}
}

func (s *doctorService) GetProfile(ctx context.Context, claims *pasetotoken.Claims) (*model.Doctor, error) {
	d, err := s.doctors.Get(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return bootstrapProfile(claims), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	return d, nil
}

func (s *doctorService) UpdateProfile(ctx context.Context, doctorID string, req UpdateProfileRequest) (*model.Doctor, error) {
	upd := store.DoctorUpdate{
		Name:           req.Name,
		Specialization: req.Specialization,
		ClinicName:     req.ClinicName,
		Phone:          req.Phone,
		Email:          req.Email,
		UpdatedAt:      model.Now(),
	}

	if req.Image != nil {
		res, err := s.objects.UploadFile(ctx, objectstore.FolderDoctors, req.Image)
		if err != nil {
			// Keep the previous image; the rest of the update proceeds.
			s.logger(ctx).Warn("doctor profile image upload failed", "error", err, "doctor_id", doctorID)
			upd.ProfileImage = req.ExistingImage
		} else {
			upd.ProfileImage = &res.URL
		}
	} else if req.ExistingImage != nil {
		upd.ProfileImage = req.ExistingImage
	}

	d, err := s.doctors.Merge(ctx, doctorID, upd)
	if err != nil {
		return nil, fmt.Errorf("update doctor profile: %w", err)
	}
	return d, nil
}

// bootstrapProfile builds the default view served before the first
// profile write.
func bootstrapProfile(claims *pasetotoken.Claims) *model.Doctor {
	name := claims.Name
	if name == "" {
		name = "Doctor"
	}
	return &model.Doctor{
		ID:             claims.UserID,
		Name:           name,
		Specialization: model.DefaultSpecialization,
		ClinicName:     model.DefaultClinicName,
		Email:          claims.Email,
		ProfileImage:   claims.Picture,
	}
}
