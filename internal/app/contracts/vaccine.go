package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type VaccineUsecase interface {
	CreateVaccine(ctx context.Context, request *requests.CreateVaccine) (*models.Vaccine, error)
	FindAll(ctx context.Context) ([]models.Vaccine, error)
}

type VaccineRepository interface {
	InsertOne(ctx context.Context, vaccine *models.Vaccine) (string, error)
	FindAll(ctx context.Context) ([]models.Vaccine, error)
}
