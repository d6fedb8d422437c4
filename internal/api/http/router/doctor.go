package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, h *handler.DoctorHandler, authRequired fiber.Handler) {
	doctors := api.Group("/doctors", authRequired)

	doctors.Get("/profile", h.GetProfile)
	doctors.Put("/profile", h.UpdateProfile)
}
