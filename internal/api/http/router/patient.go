package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, h *handler.PatientHandler, analysisH *handler.AnalysisHandler, authRequired fiber.Handler) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", h.List)
	patients.Post("/", h.Create)

	// Static segment before the :id routes so it is never shadowed.
	patients.Post("/analyze", analysisH.Analyze)

	patients.Get("/:id", h.Get)
	patients.Delete("/:id", h.Delete)

	patients.Post("/:id/images", h.AddImage)
	patients.Delete("/:id/images", h.RemoveImage)

	patients.Get("/:id/reports", h.ListReports)
}
