package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type HospitalUsecase interface {
	RegisterHospital(ctx context.Context, request *requests.RegisterHospital) (*models.Hospital, error)
	FindAll(ctx context.Context) ([]models.Hospital, error)
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
}

type HospitalRepository interface {
	InsertOne(ctx context.Context, hospital *models.Hospital) (string, error)
	FindAll(ctx context.Context) ([]models.Hospital, error)
	// FindByID returns nil without error when no hospital has the given id.
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
}
