package requests

// PatientAge is a pointer so a missing age fails `required` while an explicit 0
// still passes. RequestedTime is kept verbatim, so it is checked with notblank
// instead of being trimmed.
type CreateAppointment struct {
	HospitalName       string `json:"hospitalName" validate:"required"`
	DoctorName         string `json:"doctorName" validate:"required"`
	PatientName        string `json:"patientName" validate:"required"`
	Gender             string `json:"gender" validate:"required"`
	PatientAge         *int   `json:"patientAge" validate:"required,gte=0"`
	PatientContact     string `json:"patientContact" validate:"required"`
	PatientEmail       string `json:"patientEmail" validate:"required,email"`
	PatientSymptoms    string `json:"patientSymptoms" validate:"required"`
	RequestedTime      string `json:"requestedTime" validate:"required,notblank"`
	AdditionalComments string `json:"additionalComments"`
}
