package controllers

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthCampaignController struct {
	Log                   *zap.Logger
	HealthCampaignUsecase contracts.HealthCampaignUsecase
	InternalConfig        *config.InternalConfig
}

func NewHealthCampaignController(logger *zap.Logger, healthCampaignUsecase contracts.HealthCampaignUsecase, internalConfig *config.InternalConfig) *HealthCampaignController {
	return &HealthCampaignController{
		Log:                   logger,
		HealthCampaignUsecase: healthCampaignUsecase,
		InternalConfig:        internalConfig,
	}
}

func (ctrl *HealthCampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HealthCampaignController.CreateCampaign called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := parseMultipartForm(r, ctrl.InternalConfig)
	if err != nil {
		ctrl.Log.Error("HealthCampaignController.CreateCampaign error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, requestBodyError(err, exceptions.ErrCannotParseMultipartForm))
		return
	}

	attendees, err := utils.FormInt(r, "attendees")
	if err != nil {
		ctrl.Log.Error("HealthCampaignController.CreateCampaign invalid attendees",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, "attendees"))
		return
	}

	image, err := utils.FormUpload(r, constvars.FormFileImage)
	if err != nil {
		ctrl.Log.Error("HealthCampaignController.CreateCampaign error reading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer utils.CloseUploads(image)

	request := &requests.CreateHealthCampaign{
		Title:            utils.FormString(r, "title"),
		Description:      utils.FormString(r, "description"),
		Date:             utils.FormString(r, "date"),
		StartTime:        utils.FormString(r, "startTime"),
		EndTime:          utils.FormString(r, "endTime"),
		Organizer:        utils.FormString(r, "organizer"),
		OrganizerContact: utils.FormString(r, "organizerContact"),
		Attendees:        attendees,
		Address:          utils.FormString(r, "address"),
		Image:            image,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	_, err = ctrl.HealthCampaignUsecase.CreateCampaign(ctx, request)
	if err != nil {
		ctrl.Log.Error("HealthCampaignController.CreateCampaign error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HealthCampaignController.CreateCampaign succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCampaignSuccessMessage, nil)
}

func (ctrl *HealthCampaignController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HealthCampaignController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	campaigns, err := ctrl.HealthCampaignUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("HealthCampaignController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HealthCampaignController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(campaigns)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, campaigns)
}
