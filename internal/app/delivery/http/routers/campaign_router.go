package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHealthCampaignRoutes(router chi.Router, healthCampaignController *controllers.HealthCampaignController) {
	router.Post("/add-campaign", healthCampaignController.CreateCampaign)
	router.Get("/get-campaigns", healthCampaignController.FindAll)
}
