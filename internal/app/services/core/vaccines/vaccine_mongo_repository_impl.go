package vaccines

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

type VaccineMongoRepository struct {
	Collection *mongo.Collection
}

func NewVaccineMongoRepository(db *mongo.Client, dbName string) contracts.VaccineRepository {
	return &VaccineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVaccines),
	}
}

func (repo *VaccineMongoRepository) InsertOne(ctx context.Context, vaccine *models.Vaccine) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, vaccine)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *VaccineMongoRepository) FindAll(ctx context.Context) ([]models.Vaccine, error) {
	vaccines := []models.Vaccine{}
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &vaccines)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return vaccines, nil
}
