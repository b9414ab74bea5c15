package matches

import (
	"context"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MatchMongoRepository struct {
	Collection *mongo.Collection
}

func NewMatchMongoRepository(db *mongo.Client, dbName string) contracts.MatchRepository {
	return &MatchMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMatches),
	}
}

func (repo *MatchMongoRepository) Insert(ctx context.Context, match *models.MatchRecord) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, match)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		return objectID.Hex(), nil
	}
	return match.ID, nil
}

func (repo *MatchMongoRepository) FindBySecureUUID(ctx context.Context, secureUUID string) ([]models.MatchRecord, error) {
	var records []models.MatchRecord
	cursor, err := repo.Collection.Find(ctx, bson.M{"secure_uuid": secureUUID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
