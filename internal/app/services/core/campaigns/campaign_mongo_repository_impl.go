package campaigns

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

type HealthCampaignMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthCampaignMongoRepository(db *mongo.Client, dbName string) contracts.HealthCampaignRepository {
	return &HealthCampaignMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthCampaign),
	}
}

func (repo *HealthCampaignMongoRepository) InsertOne(ctx context.Context, campaign *models.HealthCampaign) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, campaign)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (repo *HealthCampaignMongoRepository) FindAll(ctx context.Context) ([]models.HealthCampaign, error) {
	campaigns := []models.HealthCampaign{}
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &campaigns)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return campaigns, nil
}
