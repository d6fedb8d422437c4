package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/internal/service/patient"
	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func doctorIDFromLocals(c fiber.Ctx) (string, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c, err.Error())
	case errors.Is(err, patient.ErrImageRequired),
		errors.Is(err, patient.ErrImageURLMissing):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrUploadFailed):
		return internalError(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

func (h *PatientHandler) List(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	patients, err := h.svc.List(c.Context(), doctorID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

func (h *PatientHandler) Create(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	req := patient.CreatePatientRequest{
		Name:       c.FormValue("name"),
		Gender:     c.FormValue("gender"),
		BloodGroup: c.FormValue("bloodGroup"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		History:    c.FormValue("history"),
	}
	if dob := c.FormValue("dob"); dob != "" {
		req.DOB = &dob
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	}

	p, err := h.svc.Create(c.Context(), doctorID, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

func (h *PatientHandler) Get(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	p, err := h.svc.GetByID(c.Context(), doctorID, c.Params("id"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

func (h *PatientHandler) Delete(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	if err := h.svc.Delete(c.Context(), doctorID, c.Params("id")); err != nil {
		return mapPatientError(c, err)
	}
	return message(c, "patient deleted successfully")
}

func (h *PatientHandler) AddImage(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}

	url, err := h.svc.AddSkinImage(c.Context(), doctorID, c.Params("id"), fh)
	if err != nil {
		return mapPatientError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "image added successfully",
		"imageUrl": url,
	})
}

func (h *PatientHandler) RemoveImage(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	// The URL may arrive in the JSON body or as a query parameter.
	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	_ = c.Bind().JSON(&body)
	imageURL := body.ImageURL
	if imageURL == "" {
		imageURL = c.Query("imageUrl")
	}

	if err := h.svc.RemoveSkinImage(c.Context(), doctorID, c.Params("id"), imageURL); err != nil {
		return mapPatientError(c, err)
	}
	return message(c, "image removed successfully")
}

func (h *PatientHandler) ListReports(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	reports, err := h.svc.ListReports(c.Context(), doctorID, c.Params("id"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, reports)
}
