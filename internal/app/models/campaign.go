package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type HealthCampaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Date             string             `bson:"date" json:"date"`
	StartTime        string             `bson:"startTime" json:"startTime"`
	EndTime          string             `bson:"endTime" json:"endTime"`
	Organizer        string             `bson:"organizer" json:"organizer"`
	OrganizerContact string             `bson:"organizerContact" json:"organizerContact"`
	Attendees        int                `bson:"attendees" json:"attendees"`
	Address          string             `bson:"address" json:"address"`
	Image            *string            `bson:"image" json:"image"`
}
