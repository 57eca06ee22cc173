package vaccines

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type vaccineUsecase struct {
	VaccineRepository contracts.VaccineRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewVaccineUsecase(
	vaccineRepository contracts.VaccineRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VaccineUsecase {
	return &vaccineUsecase{
		VaccineRepository: vaccineRepository,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// CreateVaccine requires every field and the image. Any missing value is
// reported with the single "All fields are required" message.
func (uc *vaccineUsecase) CreateVaccine(ctx context.Context, request *requests.CreateVaccine) (*models.Vaccine, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccineUsecase.CreateVaccine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("vaccineUsecase.CreateVaccine validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMissingRequiredFields(err)
	}

	err = utils.ValidateUpload(request.Image.Header, uc.InternalConfig.Storage.UploadMaxSizeInMegabyte, constvars.AllowedImageExtensions)
	if err != nil {
		uc.Log.Error("vaccineUsecase.CreateVaccine invalid image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrUploadValidation(err, constvars.FormFileImage)
	}

	imagePath, err := uc.Storage.UploadFile(ctx, request.Image.File, request.Image.Header, constvars.UploadFolderVaccines)
	if err != nil {
		uc.Log.Error("vaccineUsecase.CreateVaccine error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	vaccine := &models.Vaccine{
		HospitalName:    request.HospitalName,
		HospitalAddress: request.HospitalAddress,
		VaccinationDate: request.VaccinationDate,
		VaccineName:     request.VaccineName,
		Disease:         request.Disease,
		Dosage:          request.Dosage,
		Symptoms:        request.Symptoms,
		SideEffects:     request.SideEffects,
		AgeGroup:        request.AgeGroup,
		ImageURL:        imagePath,
	}

	insertedID, err := uc.VaccineRepository.InsertOne(ctx, vaccine)
	if err != nil {
		uc.Log.Error("vaccineUsecase.CreateVaccine error inserting vaccine",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if objectID, parseErr := primitive.ObjectIDFromHex(insertedID); parseErr == nil {
		vaccine.ID = objectID
	}

	uc.Log.Info("vaccineUsecase.CreateVaccine succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUploadPathKey, imagePath),
	)
	return vaccine, nil
}

func (uc *vaccineUsecase) FindAll(ctx context.Context) ([]models.Vaccine, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("vaccineUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	vaccines, err := uc.VaccineRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("vaccineUsecase.FindAll error fetching vaccines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if vaccines == nil {
		vaccines = []models.Vaccine{}
	}

	uc.Log.Info("vaccineUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(vaccines)),
	)
	return vaccines, nil
}
