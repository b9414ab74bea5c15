package main

import (
	"context"
	"time"

	"praxismatch-service/internal/app/config"
	"praxismatch-service/internal/app/drivers/database"
	"praxismatch-service/internal/app/drivers/logger"
	"praxismatch-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensures the indexes the matching run depends on. Safe to run repeatedly:
// CreateMany is a no-op for indexes that already exist.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexesByCollection := map[string][]mongo.IndexModel{
		constvars.MongoCollectionMatches: {
			{Keys: bson.D{{Key: "secure_uuid", Value: 1}}},
			{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		constvars.MongoCollectionTherapists: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		constvars.MongoCollectionSlots: {
			{Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "active", Value: 1}}},
		},
		constvars.MongoCollectionSupplyGaps: {
			{Keys: bson.D{{Key: "city", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for collection, indexes := range indexesByCollection {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes, options.CreateIndexes())
		if err != nil {
			log.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		log.Infof("Ensured indexes on %s: %v", collection, names)
	}

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting from mongo database: %v", err)
	}
	log.Info("Migration completed")
}
