package hospitals

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type hospitalUsecase struct {
	HospitalRepository contracts.HospitalRepository
	RedisRepository    contracts.RedisRepository
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

// NewHospitalUsecase wires hospital registration and lookup. redisRepository
// may be nil, which turns the FindByID cache off.
func NewHospitalUsecase(
	hospitalRepository contracts.HospitalRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.HospitalUsecase {
	return &hospitalUsecase{
		HospitalRepository: hospitalRepository,
		RedisRepository:    redisRepository,
		Storage:            storage,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *hospitalUsecase) RegisterHospital(ctx context.Context, request *requests.RegisterHospital) (*models.Hospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.RegisterHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("hospitalUsecase.RegisterHospital validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	doctors := make([]bson.M, 0, len(request.Doctors))
	for _, doctor := range request.Doctors {
		doctors = append(doctors, bson.M(doctor))
	}

	hospital := &models.Hospital{
		Name:        request.Name,
		Location:    request.Location,
		Phone:       request.Phone,
		Email:       request.Email,
		RegNo:       request.RegNo,
		GovtID:      request.GovtID,
		Website:     request.Website,
		Owner:       request.Owner,
		OpeningTime: request.OpeningTime,
		ClosingTime: request.ClosingTime,
		Doctors:     doctors,
	}

	hospital.Image, err = uc.uploadOptional(ctx, requestID, request.Image, constvars.FormFileImage, constvars.AllowedImageExtensions, constvars.UploadFolderHospitalImages)
	if err != nil {
		return nil, err
	}
	hospital.License, err = uc.uploadOptional(ctx, requestID, request.License, constvars.FormFileLicense, constvars.AllowedLicenseExtensions, constvars.UploadFolderHospitalLicense)
	if err != nil {
		return nil, err
	}

	insertedID, err := uc.HospitalRepository.InsertOne(ctx, hospital)
	if err != nil {
		uc.Log.Error("hospitalUsecase.RegisterHospital error inserting hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if objectID, parseErr := primitive.ObjectIDFromHex(insertedID); parseErr == nil {
		hospital.ID = objectID
	}

	uc.Log.Info("hospitalUsecase.RegisterHospital succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, insertedID),
	)
	return hospital, nil
}

func (uc *hospitalUsecase) FindAll(ctx context.Context) ([]models.Hospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hospitals, err := uc.HospitalRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("hospitalUsecase.FindAll error fetching hospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}

	uc.Log.Info("hospitalUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(hospitals)),
	)
	return hospitals, nil
}

// FindByID reads through the redis cache when one is configured. Cache errors
// are logged and the lookup falls back to MongoDB.
func (uc *hospitalUsecase) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	cacheKey := constvars.RedisKeyHospitalPrefix + hospitalID
	if cached := uc.getCached(ctx, requestID, cacheKey); cached != nil {
		uc.Log.Info("hospitalUsecase.FindByID served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
		)
		return cached, nil
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		uc.Log.Error("hospitalUsecase.FindByID error fetching hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if hospital == nil {
		uc.Log.Info("hospitalUsecase.FindByID hospital not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHospitalIDKey, hospitalID),
		)
		return nil, exceptions.ErrNotFound(nil, constvars.ErrClientHospitalNotFound)
	}

	uc.setCached(ctx, requestID, cacheKey, hospital)

	uc.Log.Info("hospitalUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return hospital, nil
}

func (uc *hospitalUsecase) uploadOptional(ctx context.Context, requestID string, upload *requests.Upload, field string, allowedExtensions []string, folder string) (*string, error) {
	if upload == nil {
		return nil, nil
	}

	err := utils.ValidateUpload(upload.Header, uc.InternalConfig.Storage.UploadMaxSizeInMegabyte, allowedExtensions)
	if err != nil {
		uc.Log.Error("hospitalUsecase.RegisterHospital invalid upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDataKey, field),
			zap.Error(err),
		)
		return nil, exceptions.ErrUploadValidation(err, field)
	}

	uploadPath, err := uc.Storage.UploadFile(ctx, upload.File, upload.Header, folder)
	if err != nil {
		uc.Log.Error("hospitalUsecase.RegisterHospital error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDataKey, field),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Debug("hospitalUsecase.RegisterHospital file uploaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUploadPathKey, uploadPath),
	)
	return &uploadPath, nil
}

func (uc *hospitalUsecase) getCached(ctx context.Context, requestID, cacheKey string) *models.Hospital {
	if uc.RedisRepository == nil {
		return nil
	}

	data, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("hospitalUsecase.FindByID error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
		return nil
	}
	if data == "" {
		return nil
	}

	var hospital models.Hospital
	err = json.Unmarshal([]byte(data), &hospital)
	if err != nil {
		uc.Log.Warn("hospitalUsecase.FindByID cached value is not a hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
		return nil
	}
	return &hospital
}

func (uc *hospitalUsecase) setCached(ctx context.Context, requestID, cacheKey string, hospital *models.Hospital) {
	if uc.RedisRepository == nil {
		return
	}

	ttl := time.Duration(uc.InternalConfig.Cache.HospitalTTLInMinutes) * time.Minute
	err := uc.RedisRepository.Set(ctx, cacheKey, hospital, ttl)
	if err != nil {
		uc.Log.Warn("hospitalUsecase.FindByID error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}
}
