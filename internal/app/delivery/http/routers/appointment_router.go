package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Post("/api/appointments/add", appointmentController.CreateAppointment)
	router.Get("/api/appointments/all", appointmentController.FindAll)
}
