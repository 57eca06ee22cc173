package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type HealthCampaignUsecase interface {
	CreateCampaign(ctx context.Context, request *requests.CreateHealthCampaign) (*models.HealthCampaign, error)
	FindAll(ctx context.Context) ([]models.HealthCampaign, error)
}

type HealthCampaignRepository interface {
	InsertOne(ctx context.Context, campaign *models.HealthCampaign) (string, error)
	FindAll(ctx context.Context) ([]models.HealthCampaign, error)
}
