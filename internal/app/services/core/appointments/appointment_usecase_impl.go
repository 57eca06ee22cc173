package appointments

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	AdmissionPolicy       contracts.AdmissionPolicy
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

// NewAppointmentUsecase wires the booking flow. eventPublisher may be nil, in
// which case no appointment.created event is emitted.
func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	admissionPolicy contracts.AdmissionPolicy,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		AdmissionPolicy:       admissionPolicy,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreateAppointmentRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment := uc.AdmissionPolicy.Decide(request)

	insertedID, err := uc.AppointmentRepository.InsertOne(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentStatusKey, appointment.Status),
			zap.Error(err),
		)
		return nil, err
	}
	if objectID, parseErr := primitive.ObjectIDFromHex(insertedID); parseErr == nil {
		appointment.ID = objectID
	}

	uc.publishCreated(ctx, requestID, appointment)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentStatusKey, appointment.Status),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	return appointments, nil
}

// publishCreated runs after the insert, so a broker failure is only logged:
// the appointment is already durable and the caller must still see success.
func (uc *appointmentUsecase) publishCreated(ctx context.Context, requestID string, appointment *models.Appointment) {
	if uc.EventPublisher == nil {
		return
	}
	err := uc.EventPublisher.Publish(ctx, constvars.EventAppointmentCreated, appointment)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.CreateAppointment error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
