// Package events publishes domain events over NATS. Publishing is
// best-effort: failures are logged by callers, never returned to the
// request path.
package events

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
)

// Subjects for downstream consumers.
const (
	SubjectPatientCreated    = "shushrut.patient.created"
	SubjectPatientDeleted    = "shushrut.patient.deleted"
	SubjectImageAdded        = "shushrut.patient.image_added"
	SubjectAnalysisCompleted = "shushrut.analysis.completed"
)

// Publisher emits domain events.
type Publisher interface {
	Publish(subject string, payload any) error
}

type natsPublisher struct {
	nc *nats.Conn
}

// NewNats wraps a NATS connection as a Publisher.
func NewNats(nc *nats.Conn) Publisher {
	return &natsPublisher{nc: nc}
}

func (p *natsPublisher) Publish(subject string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, b)
}

type noopPublisher struct{}

// NewNoop returns a Publisher that drops everything. Used when NATS
// is disabled in config.
func NewNoop() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(string, any) error { return nil }

// PatientEvent is the payload for patient lifecycle subjects.
type PatientEvent struct {
	PatientID string `json:"patientId"`
	CaseID    string `json:"caseId,omitempty"`
	DoctorID  string `json:"doctorId"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// AnalysisEvent is the payload for completed analyses.
type AnalysisEvent struct {
	PatientID  string  `json:"patientId"`
	DoctorID   string  `json:"doctorId"`
	Diagnosis  string  `json:"diagnosis"`
	Confidence float64 `json:"confidence"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}
