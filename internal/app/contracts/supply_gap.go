package contracts

import (
	"context"
	"praxismatch-service/internal/app/models"
)

type SupplyGapRepository interface {
	Insert(ctx context.Context, gap *models.SupplyGap) error
}
