package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment is the persisted booking together with its admission outcome.
// FinalTime is nil while the appointment sits on the waiting list and equals
// RequestedTime once confirmed.
type Appointment struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	HospitalName       string             `bson:"hospitalName" json:"hospitalName"`
	DoctorName         string             `bson:"doctorName" json:"doctorName"`
	PatientName        string             `bson:"patientName" json:"patientName"`
	Gender             string             `bson:"gender" json:"gender"`
	PatientAge         int                `bson:"patientAge" json:"patientAge"`
	PatientContact     string             `bson:"patientContact" json:"patientContact"`
	PatientEmail       string             `bson:"patientEmail" json:"patientEmail"`
	PatientSymptoms    string             `bson:"patientSymptoms" json:"patientSymptoms"`
	RequestedTime      string             `bson:"requestedTime" json:"requestedTime"`
	FinalTime          *string            `bson:"finalTime" json:"finalTime"`
	Status             string             `bson:"status" json:"status"`
	AdditionalComments string             `bson:"additionalComments,omitempty" json:"additionalComments,omitempty"`
}
