package patient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"sort"

	"github.com/shushrut/shushrut_backend/internal/events"
	"github.com/shushrut/shushrut_backend/internal/model"
	"github.com/shushrut/shushrut_backend/internal/store"
	"github.com/shushrut/shushrut_backend/pkg/reqctx"
	"github.com/shushrut/shushrut_backend/pkg/objectstore"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePatientRequest struct {
	Name       string
	DOB        *string
	Gender     string
	BloodGroup string
	Email      string
	Phone      string
	History    string

	// Image is optional; a failed upload is logged and the patient is
	// created without one.
	Image *multipart.FileHeader
}

// ObjectStore is the slice of the object store the service needs.
// *objectstore.Client satisfies it.
type ObjectStore interface {
	UploadFile(ctx context.Context, folder string, fh *multipart.FileHeader) (*objectstore.UploadResult, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(raw string) string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, doctorID string, req CreatePatientRequest) (*model.Patient, error)
	GetByID(ctx context.Context, doctorID, patientID string) (*model.Patient, error)
	List(ctx context.Context, doctorID string) ([]*model.Patient, error)
	Delete(ctx context.Context, doctorID, patientID string) error

	// AddSkinImage uploads the file and appends its URL to the patient's
	// gallery. Unlike Create, a failed upload here is fatal.
	AddSkinImage(ctx context.Context, doctorID, patientID string, image *multipart.FileHeader) (string, error)
	RemoveSkinImage(ctx context.Context, doctorID, patientID, imageURL string) error

	ListReports(ctx context.Context, doctorID, patientID string) ([]*model.Report, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	patients store.Patients
	reports  store.Reports
	objects  ObjectStore
	pub      events.Publisher
	log      *slog.Logger
}

// logger attaches the request id carried in ctx, when there is one.
func (s *patientService) logger(ctx context.Context) *slog.Logger {
	if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
		return s.log.With("request_id", rid)
	}
	return s.log
}

func New(patients store.Patients, reports store.Reports, objects ObjectStore, pub events.Publisher, log *slog.Logger) Service {
	return &patientService{
		patients: patients,
		reports:  reports,
		objects:  objects,
		pub:      pub,
		log:      log,
	}
}

func (s *patientService) Create(ctx context.Context, doctorID string, req CreatePatientRequest) (*model.Patient, error) {
	now := model.Now()

	p := &model.Patient{
		Name:       req.Name,
		DOB:        req.DOB,
		Gender:     model.NormalizeGender(req.Gender),
		BloodGroup: req.BloodGroup,
		Email:      req.Email,
		Phone:      req.Phone,
		History:    req.History,
		SkinImages: []string{},
		CaseID:     model.NewCaseID(),
		CreatedBy:  doctorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.Name == "" {
		p.Name = "Unknown"
	}
	if p.BloodGroup == "" {
		p.BloodGroup = "Unknown"
	}

	if req.Image != nil {
		res, err := s.objects.UploadFile(ctx, objectstore.FolderPatients, req.Image)
		if err != nil {
			// The record is still created; the profile image can be
			// re-uploaded later.
			s.logger(ctx).Warn("patient profile image upload failed", "error", err, "doctor_id", doctorID)
		} else {
			p.ProfileImage = res.URL
			p.ProfilePublicID = res.Key
		}
	}

	created, err := s.patients.Insert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	if err := s.pub.Publish(events.SubjectPatientCreated, events.PatientEvent{
		PatientID: created.ID.Hex(),
		CaseID:    created.CaseID,
		DoctorID:  doctorID,
	}); err != nil {
		s.logger(ctx).Warn("publish patient.created failed", "error", err)
	}

	return created, nil
}

func (s *patientService) GetByID(ctx context.Context, doctorID, patientID string) (*model.Patient, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.CreatedBy != doctorID {
		return nil, ErrAccessDenied
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, doctorID string) ([]*model.Patient, error) {
	patients, err := s.patients.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	// Newest first; records without a createdAt sink to the end.
	sort.SliceStable(patients, func(i, j int) bool {
		a, b := patients[i].CreatedAt, patients[j].CreatedAt
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a > b
	})

	return patients, nil
}

func (s *patientService) Delete(ctx context.Context, doctorID, patientID string) error {
	p, err := s.GetByID(ctx, doctorID, patientID)
	if err != nil {
		return err
	}

	if err := s.patients.Delete(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("delete patient: %w", err)
	}

	if err := s.reports.DeleteByPatient(ctx, patientID); err != nil {
		s.logger(ctx).Error("cascade report delete failed", "error", err, "patient_id", patientID)
	}

	// Stored objects are cleaned up best-effort; an orphaned object is
	// preferable to a failed delete.
	if p.ProfilePublicID != "" {
		if err := s.objects.Delete(ctx, p.ProfilePublicID); err != nil {
			s.logger(ctx).Warn("delete profile image failed", "error", err, "key", p.ProfilePublicID)
		}
	}
	for _, u := range p.SkinImages {
		if key := s.objects.KeyFromURL(u); key != "" {
			if err := s.objects.Delete(ctx, key); err != nil {
				s.logger(ctx).Warn("delete gallery image failed", "error", err, "key", key)
			}
		}
	}

	if err := s.pub.Publish(events.SubjectPatientDeleted, events.PatientEvent{
		PatientID: patientID,
		CaseID:    p.CaseID,
		DoctorID:  doctorID,
	}); err != nil {
		s.logger(ctx).Warn("publish patient.deleted failed", "error", err)
	}

	return nil
}

func (s *patientService) AddSkinImage(ctx context.Context, doctorID, patientID string, image *multipart.FileHeader) (string, error) {
	if image == nil {
		return "", ErrImageRequired
	}

	if _, err := s.GetByID(ctx, doctorID, patientID); err != nil {
		return "", err
	}

	res, err := s.objects.UploadFile(ctx, objectstore.FolderPatientGallery, image)
	if err != nil {
		s.logger(ctx).Error("gallery image upload failed", "error", err, "patient_id", patientID)
		return "", ErrUploadFailed
	}

	if err := s.patients.AddSkinImage(ctx, patientID, res.URL, model.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrPatientNotFound
		}
		return "", fmt.Errorf("add skin image: %w", err)
	}

	if err := s.pub.Publish(events.SubjectImageAdded, events.PatientEvent{
		PatientID: patientID,
		DoctorID:  doctorID,
		ImageURL:  res.URL,
	}); err != nil {
		s.logger(ctx).Warn("publish patient.image_added failed", "error", err)
	}

	return res.URL, nil
}

func (s *patientService) RemoveSkinImage(ctx context.Context, doctorID, patientID, imageURL string) error {
	if imageURL == "" {
		return ErrImageURLMissing
	}

	if _, err := s.GetByID(ctx, doctorID, patientID); err != nil {
		return err
	}

	if err := s.patients.RemoveSkinImage(ctx, patientID, imageURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("remove skin image: %w", err)
	}

	if key := s.objects.KeyFromURL(imageURL); key != "" {
		if err := s.objects.Delete(ctx, key); err != nil {
			s.logger(ctx).Warn("delete gallery image failed", "error", err, "key", key)
		}
	}

	return nil
}

func (s *patientService) ListReports(ctx context.Context, doctorID, patientID string) ([]*model.Report, error) {
	if _, err := s.GetByID(ctx, doctorID, patientID); err != nil {
		return nil, err
	}

	reports, err := s.reports.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}
