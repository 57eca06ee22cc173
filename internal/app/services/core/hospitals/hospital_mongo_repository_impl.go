package hospitals

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) contracts.HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
	}
}

func (repo *HospitalMongoRepository) InsertOne(ctx context.Context, hospital *models.Hospital) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, hospital)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *HospitalMongoRepository) FindAll(ctx context.Context) ([]models.Hospital, error) {
	hospitals := []models.Hospital{}
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &hospitals)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitals, nil
}

func (repo *HospitalMongoRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var hospital models.Hospital
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}
