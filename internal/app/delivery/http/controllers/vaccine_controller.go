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

type VaccineController struct {
	Log            *zap.Logger
	VaccineUsecase contracts.VaccineUsecase
	InternalConfig *config.InternalConfig
}

func NewVaccineController(logger *zap.Logger, vaccineUsecase contracts.VaccineUsecase, internalConfig *config.InternalConfig) *VaccineController {
	return &VaccineController{
		Log:            logger,
		VaccineUsecase: vaccineUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *VaccineController) CreateVaccine(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccineController.CreateVaccine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := parseMultipartForm(r, ctrl.InternalConfig)
	if err != nil {
		ctrl.Log.Error("VaccineController.CreateVaccine error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, requestBodyError(err, exceptions.ErrCannotParseMultipartForm))
		return
	}

	vaccinationDate, err := utils.ParseDate(utils.FormString(r, "vaccinationDate"))
	if err != nil {
		ctrl.Log.Error("VaccineController.CreateVaccine invalid vaccinationDate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseTime(err))
		return
	}

	image, err := utils.FormUpload(r, constvars.FormFileImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer utils.CloseUploads(image)

	request := &requests.CreateVaccine{
		HospitalName:    utils.FormString(r, "hospitalName"),
		HospitalAddress: utils.FormString(r, "hospitalAddress"),
		VaccinationDate: vaccinationDate,
		VaccineName:     utils.FormString(r, "vaccineName"),
		Disease:         utils.FormString(r, "disease"),
		Dosage:          utils.FormString(r, "dosage"),
		Symptoms:        utils.FormString(r, "symptoms"),
		SideEffects:     utils.FormString(r, "sideEffects"),
		AgeGroup:        utils.FormString(r, "ageGroup"),
		Image:           image,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	_, err = ctrl.VaccineUsecase.CreateVaccine(ctx, request)
	if err != nil {
		ctrl.Log.Error("VaccineController.CreateVaccine error from usecase",
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

	ctrl.Log.Info("VaccineController.CreateVaccine succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVaccineSuccessMessage, nil)
}

func (ctrl *VaccineController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("VaccineController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	vaccines, err := ctrl.VaccineUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("VaccineController.FindAll error from usecase",
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

	ctrl.Log.Info("VaccineController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(vaccines)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, vaccines)
}
