package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/internal/service/doctor"
	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func (h *DoctorHandler) GetProfile(c fiber.Ctx) error {
	claims, authed := pasetotoken.ClaimsFromFiber(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	d, err := h.svc.GetProfile(c.Context(), claims)
	if err != nil {
		return internalError(c, err.Error())
	}
	return ok(c, d)
}

func (h *DoctorHandler) UpdateProfile(c fiber.Ctx) error {
	doctorID, authed := doctorIDFromLocals(c)
	if !authed {
		return forbidden(c, "forbidden")
	}

	req := doctor.UpdateProfileRequest{}

	// Only fields present in the form are written.
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "multipart form is required")
	}
	field := func(name string) *string {
		vals, present := form.Value[name]
		if !present || len(vals) == 0 {
			return nil
		}
		return &vals[0]
	}
	req.Name = field("name")
	req.Specialization = field("specialization")
	req.ClinicName = field("clinicName")
	req.Phone = field("phone")
	req.Email = field("email")
	req.ExistingImage = field("existingImage")

	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	}

	d, err := h.svc.UpdateProfile(c.Context(), doctorID, req)
	if err != nil {
		return internalError(c, err.Error())
	}
	return ok(c, d)
}
