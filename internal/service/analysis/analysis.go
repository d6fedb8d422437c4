// Package analysis dispatches skin image analysis to the external
// prediction service and normalizes its result.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shushrut/shushrut_backend/internal/events"
	"github.com/shushrut/shushrut_backend/internal/model"
	patientsvc "github.com/shushrut/shushrut_backend/internal/service/patient"
	"github.com/shushrut/shushrut_backend/pkg/predict"
	"github.com/shushrut/shushrut_backend/pkg/reqctx"
)

// Result is the normalized analysis payload returned to the client.
// Reports themselves are written by the prediction pipeline; nothing
// is persisted here.
type Result struct {
	Diagnosis  string  `json:"diagnosis"`
	Confidence float64 `json:"confidence"`
	Remarks    string  `json:"remarks"`
	Report     string  `json:"report"`
	ImageURL   string  `json:"imageUrl"`
	Verify     string  `json:"verify"`
	Prediction string  `json:"prediction"`
	CreatedAt  string  `json:"createdAt"`
}

type AnalyzeRequest struct {
	PatientID string `json:"patientId"`
	ImageURL  string `json:"imageUrl"`
}

// Predictor is the slice of pkg/predict the dispatcher needs.
type Predictor interface {
	Analyze(ctx context.Context, req predict.Request) (*predict.Response, error)
}

type Service interface {
	Analyze(ctx context.Context, doctorID string, req AnalyzeRequest) (*Result, error)
}

type analysisService struct {
	patients  patientsvc.Service
	predictor Predictor
	pub       events.Publisher
	log       *slog.Logger
}

// logger attaches the request id carried in ctx, when there is one.
func (s *analysisService) logger(ctx context.Context) *slog.Logger {
	if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
		return s.log.With("request_id", rid)
	}
	return s.log
}

func New(patients patientsvc.Service, predictor Predictor, pub events.Publisher, log *slog.Logger) Service {
	return &analysisService{
		patients:  patients,
		predictor: predictor,
		pub:       pub,
		log:       log,
	}
}

func (s *analysisService) Analyze(ctx context.Context, doctorID string, req AnalyzeRequest) (*Result, error) {
	if req.PatientID == "" {
		return nil, ErrPatientIDRequired
	}

	// Analysis runs only against a record the caller owns.
	if _, err := s.patients.GetByID(ctx, doctorID, req.PatientID); err != nil {
		return nil, err
	}

	resp, err := s.predictor.Analyze(ctx, predict.Request{
		ObjID:    req.PatientID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		var ue *predict.UpstreamError
		if errors.As(err, &ue) {
			// The upstream status and body travel up to the handler.
			return nil, ue
		}
		s.logger(ctx).Error("prediction request failed", "error", err, "patient_id", req.PatientID)
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	parsed := ParsePrediction(resp.Prediction)

	result := &Result{
		Diagnosis:  parsed.Diagnosis,
		Confidence: parsed.Confidence,
		Remarks:    parsed.Remarks,
		Report:     resp.Report,
		ImageURL:   resp.ImageURL,
		Verify:     resp.Verify,
		Prediction: resp.Prediction,
		CreatedAt:  model.Now(),
	}

	if err := s.pub.Publish(events.SubjectAnalysisCompleted, events.AnalysisEvent{
		PatientID:  req.PatientID,
		DoctorID:   doctorID,
		Diagnosis:  result.Diagnosis,
		Confidence: result.Confidence,
		ImageURL:   result.ImageURL,
	}); err != nil {
		s.logger(ctx).Warn("publish analysis.completed failed", "error", err)
	}

	return result, nil
}
