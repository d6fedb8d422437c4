package doctor

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"testing"

	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"

	"github.com/shushrut/shushrut_backend/internal/model"
	"github.com/shushrut/shushrut_backend/internal/store"
	"github.com/shushrut/shushrut_backend/pkg/objectstore"
)

type fakeDoctors struct {
	docs map[string]*model.Doctor
}

func newFakeDoctors() *fakeDoctors {
	return &fakeDoctors{docs: map[string]*model.Doctor{}}
}

func (f *fakeDoctors) Get(_ context.Context, id string) (*model.Doctor, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return d, nil
}

func (f *fakeDoctors) Merge(_ context.Context, id string, upd store.DoctorUpdate) (*model.Doctor, error) {
	d, ok := f.docs[id]
	if !ok {
		d = &model.Doctor{ID: id}
		f.docs[id] = d
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.Name, upd.Name)
	set(&d.Specialization, upd.Specialization)
	set(&d.ClinicName, upd.ClinicName)
	set(&d.Phone, upd.Phone)
	set(&d.Email, upd.Email)
	set(&d.ProfileImage, upd.ProfileImage)
	d.UpdatedAt = upd.UpdatedAt
	return d, nil
}

type fakeObjects struct {
	fail bool
}

func (f *fakeObjects) UploadFile(_ context.Context, folder string, fh *multipart.FileHeader) (*objectstore.UploadResult, error) {
	if f.fail {
		return nil, errors.New("upload refused")
	}
	return &objectstore.UploadResult{
		Key: folder + "/object-1.jpg",
		URL: "https://store.example.com/" + folder + "/object-1.jpg",
	}, nil
}

func str(s string) *string { return &s }

func TestGetProfileBootstrap(t *testing.T) {
	svc := New(newFakeDoctors(), &fakeObjects{}, slog.Default())

	claims := &pasetotoken.Claims{
		UserID:  "doc-1",
		Name:    "Dr. Rao",
		Email:   "rao@example.com",
		Picture: "https://cdn.example.com/rao.jpg",
	}
	d, err := svc.GetProfile(context.Background(), claims)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if d.Name != "Dr. Rao" || d.Email != "rao@example.com" {
		t.Errorf("bootstrap = %+v", d)
	}
	if d.Specialization != model.DefaultSpecialization || d.ClinicName != model.DefaultClinicName {
		t.Errorf("defaults = %q / %q", d.Specialization, d.ClinicName)
	}
	if d.ProfileImage != claims.Picture {
		t.Errorf("ProfileImage = %q", d.ProfileImage)
	}
}

func TestGetProfileBootstrapWithoutName(t *testing.T) {
	svc := New(newFakeDoctors(), &fakeObjects{}, slog.Default())

	d, err := svc.GetProfile(context.Background(), &pasetotoken.Claims{UserID: "doc-1"})
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if d.Name != "Doctor" {
		t.Errorf("Name = %q, want Doctor", d.Name)
	}
}

func TestGetProfileStored(t *testing.T) {
	doctors := newFakeDoctors()
	doctors.docs["doc-1"] = &model.Doctor{ID: "doc-1", Name: "Dr. Stored", ClinicName: "Skin Clinic"}
	svc := New(doctors, &fakeObjects{}, slog.Default())

	d, err := svc.GetProfile(context.Background(), &pasetotoken.Claims{UserID: "doc-1", Name: "Token Name"})
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if d.Name != "Dr. Stored" || d.ClinicName != "Skin Clinic" {
		t.Errorf("stored profile not returned: %+v", d)
	}
}

func TestUpdateProfileMerges(t *testing.T) {
	doctors := newFakeDoctors()
	doctors.docs["doc-1"] = &model.Doctor{ID: "doc-1", Name: "Old", Phone: "111"}
	svc := New(doctors, &fakeObjects{}, slog.Default())

	d, err := svc.UpdateProfile(context.Background(), "doc-1", UpdateProfileRequest{
		Name: str("New"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if d.Name != "New" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.Phone != "111" {
		t.Errorf("absent field must stay untouched, Phone = %q", d.Phone)
	}
	if d.UpdatedAt == "" {
		t.Error("UpdatedAt not refreshed")
	}
}

func TestUpdateProfileUploadsImage(t *testing.T) {
	svc := New(newFakeDoctors(), &fakeObjects{}, slog.Default())

	d, err := svc.UpdateProfile(context.Background(), "doc-1", UpdateProfileRequest{
		Image: &multipart.FileHeader{Filename: "me.jpg"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if d.ProfileImage != "https://store.example.com/doctors/object-1.jpg" {
		t.Errorf("ProfileImage = %q", d.ProfileImage)
	}
}

func TestUpdateProfileKeepsExistingImageOnUploadFailure(t *testing.T) {
	doctors := newFakeDoctors()
	doctors.docs["doc-1"] = &model.Doctor{ID: "doc-1", ProfileImage: "https://store.example.com/doctors/old.jpg"}
	svc := New(doctors, &fakeObjects{fail: true}, slog.Default())

	d, err := svc.UpdateProfile(context.Background(), "doc-1", UpdateProfileRequest{
		Image:         &multipart.FileHeader{Filename: "me.jpg"},
		ExistingImage: str("https://store.example.com/doctors/old.jpg"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if d.ProfileImage != "https://store.example.com/doctors/old.jpg" {
		t.Errorf("ProfileImage = %q, want previous image kept", d.ProfileImage)
	}
}
