package appointments

import (
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"math/rand/v2"
)

// stochasticAdmissionPolicy stands in for real slot capacity tracking: each
// request is confirmed with probability 1 - threshold.
type stochasticAdmissionPolicy struct {
	threshold float64
	draw      func() float64
}

// NewStochasticAdmissionPolicy returns the production policy. draw must return
// values in [0, 1) and be safe for concurrent use; nil selects math/rand/v2.
func NewStochasticAdmissionPolicy(draw func() float64) contracts.AdmissionPolicy {
	if draw == nil {
		draw = rand.Float64
	}
	return &stochasticAdmissionPolicy{
		threshold: constvars.AppointmentConfirmationThreshold,
		draw:      draw,
	}
}

func (p *stochasticAdmissionPolicy) Decide(request *requests.CreateAppointment) *models.Appointment {
	appointment := &models.Appointment{
		HospitalName:       request.HospitalName,
		DoctorName:         request.DoctorName,
		PatientName:        request.PatientName,
		Gender:             request.Gender,
		PatientContact:     request.PatientContact,
		PatientEmail:       request.PatientEmail,
		PatientSymptoms:    request.PatientSymptoms,
		RequestedTime:      request.RequestedTime,
		AdditionalComments: request.AdditionalComments,
	}
	if request.PatientAge != nil {
		appointment.PatientAge = *request.PatientAge
	}

	if p.draw() > p.threshold {
		finalTime := request.RequestedTime
		appointment.FinalTime = &finalTime
		appointment.Status = constvars.AppointmentStatusConfirmed
	} else {
		appointment.FinalTime = nil
		appointment.Status = constvars.AppointmentStatusWaitingList
	}
	return appointment
}
