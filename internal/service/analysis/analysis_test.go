package analysis

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"testing"

	"github.com/shushrut/shushrut_backend/internal/events"
	"github.com/shushrut/shushrut_backend/internal/model"
	patientsvc "github.com/shushrut/shushrut_backend/internal/service/patient"
	"github.com/shushrut/shushrut_backend/pkg/predict"
)

type fakeOwnership struct {
	owned map[string]string // patientID -> doctorID
}

func (f *fakeOwnership) GetByID(_ context.Context, doctorID, patientID string) (*model.Patient, error) {
	owner, ok := f.owned[patientID]
	if !ok {
		return nil, patientsvc.ErrPatientNotFound
	}
	if owner != doctorID {
		return nil, patientsvc.ErrAccessDenied
	}
	return &model.Patient{CreatedBy: owner}, nil
}

func (f *fakeOwnership) Create(context.Context, string, patientsvc.CreatePatientRequest) (*model.Patient, error) {
	panic("not used")
}
func (f *fakeOwnership) List(context.Context, string) ([]*model.Patient, error) { panic("not used") }
func (f *fakeOwnership) Delete(context.Context, string, string) error           { panic("not used") }
func (f *fakeOwnership) AddSkinImage(context.Context, string, string, *multipart.FileHeader) (string, error) {
	panic("not used")
}
func (f *fakeOwnership) RemoveSkinImage(context.Context, string, string, string) error {
	panic("not used")
}
func (f *fakeOwnership) ListReports(context.Context, string, string) ([]*model.Report, error) {
	panic("not used")
}

type fakePredictor struct {
	resp *predict.Response
	err  error
	got  predict.Request
}

func (f *fakePredictor) Analyze(_ context.Context, req predict.Request) (*predict.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestService(pred *fakePredictor) Service {
	patients := &fakeOwnership{owned: map[string]string{"pat-1": "doc-1"}}
	return New(patients, pred, events.NewNoop(), slog.Default())
}

func TestAnalyzeSuccess(t *testing.T) {
	pred := &fakePredictor{resp: &predict.Response{
		ImageURL:   "https://cdn.example.com/x.jpg",
		Verify:     "yes",
		Prediction: "Melanoma,82.5%,urgent referral recommended",
		Report:     "long report",
	}}
	svc := newTestService(pred)

	res, err := svc.Analyze(context.Background(), "doc-1", AnalyzeRequest{PatientID: "pat-1"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if pred.got.ObjID != "pat-1" {
		t.Errorf("obj_id = %q", pred.got.ObjID)
	}
	if res.Diagnosis != "Melanoma" {
		t.Errorf("Diagnosis = %q", res.Diagnosis)
	}
	if res.Confidence != 0.83 {
		t.Errorf("Confidence = %v, want 0.83", res.Confidence)
	}
	if res.Remarks != "urgent referral recommended" {
		t.Errorf("Remarks = %q", res.Remarks)
	}
	if res.Report != "long report" || res.Verify != "yes" {
		t.Errorf("passthrough fields = %q / %q", res.Report, res.Verify)
	}
	if res.CreatedAt == "" {
		t.Error("CreatedAt not set")
	}
}

func TestAnalyzeValidation(t *testing.T) {
	svc := newTestService(&fakePredictor{})

	if _, err := svc.Analyze(context.Background(), "doc-1", AnalyzeRequest{}); !errors.Is(err, ErrPatientIDRequired) {
		t.Errorf("empty patientId err = %v", err)
	}
	if _, err := svc.Analyze(context.Background(), "doc-1", AnalyzeRequest{PatientID: "missing"}); !errors.Is(err, patientsvc.ErrPatientNotFound) {
		t.Errorf("unknown patient err = %v", err)
	}
	if _, err := svc.Analyze(context.Background(), "doc-2", AnalyzeRequest{PatientID: "pat-1"}); !errors.Is(err, patientsvc.ErrAccessDenied) {
		t.Errorf("foreign patient err = %v", err)
	}
}

func TestAnalyzePropagatesUpstreamError(t *testing.T) {
	pred := &fakePredictor{err: &predict.UpstreamError{StatusCode: 422, Body: `{"detail":"bad image"}`}}
	svc := newTestService(pred)

	_, err := svc.Analyze(context.Background(), "doc-1", AnalyzeRequest{PatientID: "pat-1"})

	var ue *predict.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if ue.StatusCode != 422 || ue.Body != `{"detail":"bad image"}` {
		t.Errorf("upstream err = %+v", ue)
	}
}

func TestAnalyzeTransportError(t *testing.T) {
	pred := &fakePredictor{err: errors.New("connection refused")}
	svc := newTestService(pred)

	_, err := svc.Analyze(context.Background(), "doc-1", AnalyzeRequest{PatientID: "pat-1"})
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("err = %v, want ErrAnalysisFailed", err)
	}
}
