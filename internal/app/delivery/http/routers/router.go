package routers

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// SetupRoutes mounts only the services listed in APP_SERVICES, so the same
// binary can run one service per process or all of them together. Controllers
// of disabled services may be nil.
func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	healthCampaignController *controllers.HealthCampaignController,
	hospitalController *controllers.HospitalController,
	vaccineController *controllers.VaccineController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildJSONResponse(w, constvars.StatusOK, map[string]interface{}{
			"status":   constvars.ResponseSuccess,
			"services": internalConfig.App.Services,
		})
	})

	if internalConfig.Storage.Driver == constvars.StorageDriverDisk {
		fileServer := http.StripPrefix(constvars.UploadURLPrefix, http.FileServer(http.Dir(internalConfig.Storage.UploadRoot)))
		router.Handle(constvars.UploadURLPrefix+"/*", fileServer)
	}

	if internalConfig.ServiceEnabled(constvars.ServiceAppointments) && appointmentController != nil {
		attachAppointmentRoutes(router, appointmentController)
	}
	if internalConfig.ServiceEnabled(constvars.ServiceCampaigns) && healthCampaignController != nil {
		attachHealthCampaignRoutes(router, healthCampaignController)
	}
	if internalConfig.ServiceEnabled(constvars.ServiceHospitals) && hospitalController != nil {
		attachHospitalRoutes(router, hospitalController)
	}
	if internalConfig.ServiceEnabled(constvars.ServiceVaccines) && vaccineController != nil {
		attachVaccineRoutes(router, vaccineController)
	}
}
