package supplygaps

import (
	"context"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type SupplyGapMongoRepository struct {
	Collection *mongo.Collection
}

func NewSupplyGapMongoRepository(db *mongo.Client, dbName string) contracts.SupplyGapRepository {
	return &SupplyGapMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSupplyGaps),
	}
}

func (repo *SupplyGapMongoRepository) Insert(ctx context.Context, gap *models.SupplyGap) error {
	_, err := repo.Collection.InsertOne(ctx, gap)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
