package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.HospitalName = strings.TrimSpace(input.HospitalName)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Gender = strings.TrimSpace(input.Gender)
	input.PatientContact = strings.TrimSpace(input.PatientContact)
	input.PatientEmail = strings.TrimSpace(input.PatientEmail)
	input.PatientSymptoms = strings.TrimSpace(input.PatientSymptoms)
	input.AdditionalComments = strings.TrimSpace(input.AdditionalComments)
}
