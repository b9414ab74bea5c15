package slots

import (
	"context"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (repo *SlotMongoRepository) FindActive(ctx context.Context) ([]models.TherapistSlot, error) {
	var slots []models.TherapistSlot
	cursor, err := repo.Collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}
