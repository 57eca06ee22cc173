package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachVaccineRoutes(router chi.Router, vaccineController *controllers.VaccineController) {
	router.Post("/api/vaccine-form", vaccineController.CreateVaccine)
	router.Get("/api/vaccine-form-data", vaccineController.FindAll)
}
