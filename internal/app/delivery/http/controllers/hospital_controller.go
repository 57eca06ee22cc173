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

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HospitalController struct {
	Log             *zap.Logger
	HospitalUsecase contracts.HospitalUsecase
	InternalConfig  *config.InternalConfig
}

func NewHospitalController(logger *zap.Logger, hospitalUsecase contracts.HospitalUsecase, internalConfig *config.InternalConfig) *HospitalController {
	return &HospitalController{
		Log:             logger,
		HospitalUsecase: hospitalUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *HospitalController) RegisterHospital(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HospitalController.RegisterHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := parseMultipartForm(r, ctrl.InternalConfig)
	if err != nil {
		ctrl.Log.Error("HospitalController.RegisterHospital error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, requestBodyError(err, exceptions.ErrCannotParseMultipartForm))
		return
	}

	var doctors []map[string]interface{}
	err = utils.FormJSON(r, "doctors", &doctors)
	if err != nil {
		ctrl.Log.Error("HospitalController.RegisterHospital invalid doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, "doctors"))
		return
	}

	image, err := utils.FormUpload(r, constvars.FormFileImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	license, err := utils.FormUpload(r, constvars.FormFileLicense)
	if err != nil {
		utils.CloseUploads(image)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer utils.CloseUploads(image, license)

	request := &requests.RegisterHospital{
		Name:        utils.FormString(r, "name"),
		Location:    utils.FormString(r, "location"),
		Phone:       utils.FormString(r, "phone"),
		Email:       utils.FormString(r, "email"),
		RegNo:       utils.FormString(r, "regNo"),
		GovtID:      utils.FormString(r, "govtID"),
		Website:     utils.FormString(r, "website"),
		Owner:       utils.FormString(r, "owner"),
		OpeningTime: utils.FormString(r, "opening"),
		ClosingTime: utils.FormString(r, "closing"),
		Doctors:     doctors,
		Image:       image,
		License:     license,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	hospital, err := ctrl.HospitalUsecase.RegisterHospital(ctx, request)
	if err != nil {
		ctrl.Log.Error("HospitalController.RegisterHospital error from usecase",
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

	ctrl.Log.Info("HospitalController.RegisterHospital succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospital.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterHospitalSuccessMessage, hospital)
}

func (ctrl *HospitalController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HospitalController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	hospitals, err := ctrl.HospitalUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("HospitalController.FindAll error from usecase",
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

	ctrl.Log.Info("HospitalController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(hospitals)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, hospitals)
}

func (ctrl *HospitalController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	ctrl.Log.Info("HospitalController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	if hospitalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamHospitalID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	hospital, err := ctrl.HospitalUsecase.FindByID(ctx, hospitalID)
	if err != nil {
		ctrl.Log.Error("HospitalController.FindByID error from usecase",
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

	ctrl.Log.Info("HospitalController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, hospital)
}
