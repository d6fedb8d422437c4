package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/internal/model"
	"github.com/shushrut/shushrut_backend/internal/service/patient"
	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"
)

// failingPatientService returns the configured error from every operation.
type failingPatientService struct {
	err error
}

func (f *failingPatientService) Create(context.Context, string, patient.CreatePatientRequest) (*model.Patient, error) {
	return nil, f.err
}

func (f *failingPatientService) GetByID(context.Context, string, string) (*model.Patient, error) {
	return nil, f.err
}

func (f *failingPatientService) List(context.Context, string) ([]*model.Patient, error) {
	return nil, f.err
}

func (f *failingPatientService) Delete(context.Context, string, string) error { return f.err }

func (f *failingPatientService) AddSkinImage(context.Context, string, string, *multipart.FileHeader) (string, error) {
	return "", f.err
}

func (f *failingPatientService) RemoveSkinImage(context.Context, string, string, string) error {
	return f.err
}

func (f *failingPatientService) ListReports(context.Context, string, string) ([]*model.Report, error) {
	return nil, f.err
}

func newPatientTestApp(svc patient.Service) *fiber.App {
	app := fiber.New()
	h := NewPatientHandler(svc)
	app.Get("/patients", func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{UserID: "doc-1"})
		return c.Next()
	}, h.List)
	return app
}

func TestListPassesStoreErrorMessageThrough(t *testing.T) {
	app := newPatientTestApp(&failingPatientService{err: errors.New("mongo: connection reset")})

	resp, err := app.Test(httptest.NewRequest("GET", "/patients", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "mongo: connection reset" {
		t.Errorf("error = %q, want the store message passed through", body["error"])
	}
}

func TestListMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", patient.ErrPatientNotFound, fiber.StatusNotFound},
		{"access denied", patient.ErrAccessDenied, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newPatientTestApp(&failingPatientService{err: tt.err})
			resp, err := app.Test(httptest.NewRequest("GET", "/patients", nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}
