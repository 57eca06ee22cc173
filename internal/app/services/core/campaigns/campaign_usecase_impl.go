package campaigns

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

type healthCampaignUsecase struct {
	HealthCampaignRepository contracts.HealthCampaignRepository
	Storage                  contracts.Storage
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

func NewHealthCampaignUsecase(
	healthCampaignRepository contracts.HealthCampaignRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.HealthCampaignUsecase {
	return &healthCampaignUsecase{
		HealthCampaignRepository: healthCampaignRepository,
		Storage:                  storage,
		InternalConfig:           internalConfig,
		Log:                      logger,
	}
}

func (uc *healthCampaignUsecase) CreateCampaign(ctx context.Context, request *requests.CreateHealthCampaign) (*models.HealthCampaign, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("healthCampaignUsecase.CreateCampaign called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("healthCampaignUsecase.CreateCampaign validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	campaign := &models.HealthCampaign{
		Title:            request.Title,
		Description:      request.Description,
		Date:             request.Date,
		StartTime:        request.StartTime,
		EndTime:          request.EndTime,
		Organizer:        request.Organizer,
		OrganizerContact: request.OrganizerContact,
		Attendees:        request.Attendees,
		Address:          request.Address,
	}

	if request.Image != nil {
		err = utils.ValidateUpload(request.Image.Header, uc.InternalConfig.Storage.UploadMaxSizeInMegabyte, constvars.AllowedImageExtensions)
		if err != nil {
			uc.Log.Error("healthCampaignUsecase.CreateCampaign invalid image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrUploadValidation(err, constvars.FormFileImage)
		}

		imagePath, err := uc.Storage.UploadFile(ctx, request.Image.File, request.Image.Header, constvars.UploadFolderHealthCampaigns)
		if err != nil {
			uc.Log.Error("healthCampaignUsecase.CreateCampaign error uploading image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		campaign.Image = &imagePath
	}

	insertedID, err := uc.HealthCampaignRepository.InsertOne(ctx, campaign)
	if err != nil {
		uc.Log.Error("healthCampaignUsecase.CreateCampaign error inserting campaign",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if objectID, parseErr := primitive.ObjectIDFromHex(insertedID); parseErr == nil {
		campaign.ID = objectID
	}

	uc.Log.Info("healthCampaignUsecase.CreateCampaign succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return campaign, nil
}

func (uc *healthCampaignUsecase) FindAll(ctx context.Context) ([]models.HealthCampaign, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("healthCampaignUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	campaigns, err := uc.HealthCampaignRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("healthCampaignUsecase.FindAll error fetching campaigns",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []models.HealthCampaign{}
	}

	uc.Log.Info("healthCampaignUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(campaigns)),
	)
	return campaigns, nil
}
