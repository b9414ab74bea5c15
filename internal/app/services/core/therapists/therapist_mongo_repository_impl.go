package therapists

import (
	"context"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TherapistMongoRepository struct {
	Collection *mongo.Collection
}

func NewTherapistMongoRepository(db *mongo.Client, dbName string) contracts.TherapistRepository {
	return &TherapistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTherapists),
	}
}

func (repo *TherapistMongoRepository) FindVerified(ctx context.Context) ([]models.Therapist, error) {
	var therapists []models.Therapist
	cursor, err := repo.Collection.Find(ctx, bson.M{"status": constvars.TherapistStatusVerified})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &therapists)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return therapists, nil
}
