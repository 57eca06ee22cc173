package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

// AdmissionPolicy decides whether a new appointment is confirmed at the
// requested time or put on the waiting list. Implementations must be safe for
// concurrent use and must not perform I/O.
type AdmissionPolicy interface {
	Decide(request *requests.CreateAppointment) *models.Appointment
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
}

type AppointmentRepository interface {
	InsertOne(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
}
