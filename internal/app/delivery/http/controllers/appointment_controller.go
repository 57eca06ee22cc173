package controllers

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, requestBodyError(err, exceptions.ErrCannotParseJSON))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error from usecase",
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

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentStatusKey, appointment.Status),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.CreateAppointment{
		Success: true,
		Message: constvars.CreateAppointmentSuccessMessage,
		Status:  appointment.Status,
		Data:    appointment,
	})
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll error from usecase",
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

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, appointments)
}

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// parseMultipartForm keeps at most maxMemory in memory and spills the rest of
// the uploaded files to temporary files.
func parseMultipartForm(r *http.Request, internalConfig *config.InternalConfig) error {
	maxMemory := int64(32 << 20)
	if internalConfig != nil && internalConfig.Storage.UploadMaxSizeInMegabyte > 0 {
		maxMemory = internalConfig.Storage.UploadMaxSizeInMegabyte << 20
	}
	return r.ParseMultipartForm(maxMemory)
}

// requestBodyError maps a body read that ran past the BodyLimit middleware's
// cap to 413 and anything else to fallback.
func requestBodyError(err error, fallback func(error) *exceptions.CustomError) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrRequestBodyTooLarge(err, maxBytesErr.Limit)
	}
	return fallback(err)
}
