package database

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database",
		zap.String("database", driverConfig.MongoDB.DbName),
	)
	return client
}

func mongoConnectionString(cfg config.MongoDB) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)
}
