package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, hospitalController *controllers.HospitalController) {
	router.Post("/register-hospital", hospitalController.RegisterHospital)
	router.Get("/hospitals", hospitalController.FindAll)
	router.Get("/hospital/{"+constvars.URLParamHospitalID+"}", hospitalController.FindByID)
}
