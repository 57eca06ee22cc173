package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Hospital struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	Phone       string             `bson:"phone" json:"phone"`
	Email       string             `bson:"email" json:"email"`
	RegNo       string             `bson:"regNo" json:"regNo"`
	GovtID      string             `bson:"govtID" json:"govtID"`
	Website     string             `bson:"website" json:"website"`
	Owner       string             `bson:"owner" json:"owner"`
	OpeningTime string             `bson:"openingTime" json:"openingTime"`
	ClosingTime string             `bson:"closingTime" json:"closingTime"`
	Image       *string            `bson:"image" json:"image"`
	License     *string            `bson:"license" json:"license"`
	Doctors     []bson.M           `bson:"doctors" json:"doctors"`
}
