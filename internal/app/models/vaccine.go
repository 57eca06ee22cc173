package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vaccine struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	HospitalName    string             `bson:"hospitalName" json:"hospitalName"`
	HospitalAddress string             `bson:"hospitalAddress" json:"hospitalAddress"`
	VaccinationDate time.Time          `bson:"vaccinationDate" json:"vaccinationDate"`
	VaccineName     string             `bson:"vaccineName" json:"vaccineName"`
	Disease         string             `bson:"disease" json:"disease"`
	Dosage          string             `bson:"dosage" json:"dosage"`
	Symptoms        string             `bson:"symptoms" json:"symptoms"`
	SideEffects     string             `bson:"sideEffects" json:"sideEffects"`
	AgeGroup        string             `bson:"ageGroup" json:"ageGroup"`
	ImageURL        string             `bson:"imageUrl" json:"imageUrl"`
}
