package analysis

import "errors"

var (
	ErrPatientIDRequired = errors.New("patientId is required")
	ErrAnalysisFailed    = errors.New("analysis failed")
)
