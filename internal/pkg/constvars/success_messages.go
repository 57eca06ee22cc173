package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	CreateAppointmentSuccessMessage = "Appointment successfully created"
	CreateCampaignSuccessMessage    = "Campaign added successfully"
	RegisterHospitalSuccessMessage  = "Hospital registered successfully"
	CreateVaccineSuccessMessage     = "Vaccine details stored successfully"
)
