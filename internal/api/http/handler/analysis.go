package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/internal/service/analysis"
	"github.com/shushrut/shushrut_backend/internal/service/patient"
	"github.com/shushrut/shushrut_backend/pkg/predict"
)

type AnalysisHandler struct {
	svc analysis.Service
}

func NewAnalysisHandler(svc analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	var req analysis.AnalyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Analyze(c.Context(), doctorID, req)
	if err != nil {
		var ue *predict.UpstreamError
		switch {
		case errors.Is(err, analysis.ErrPatientIDRequired):
			return badRequest(c, err.Error())
		case errors.Is(err, patient.ErrPatientNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, patient.ErrAccessDenied):
			return forbidden(c, err.Error())
		case errors.As(err, &ue):
			// Relay the prediction service's own status and body.
			return errorStatus(c, ue.StatusCode, ue.Body)
		default:
			return internalError(c, "analysis failed")
		}
	}
	return ok(c, res)
}
