package requests

import "time"

type CreateVaccine struct {
	HospitalName    string    `json:"hospitalName" validate:"required"`
	HospitalAddress string    `json:"hospitalAddress" validate:"required"`
	VaccinationDate time.Time `json:"vaccinationDate" validate:"required"`
	VaccineName     string    `json:"vaccineName" validate:"required"`
	Disease         string    `json:"disease" validate:"required"`
	Dosage          string    `json:"dosage" validate:"required"`
	Symptoms        string    `json:"symptoms" validate:"required"`
	SideEffects     string    `json:"sideEffects" validate:"required"`
	AgeGroup        string    `json:"ageGroup" validate:"required"`
	Image           *Upload   `json:"-" validate:"required"`
}
