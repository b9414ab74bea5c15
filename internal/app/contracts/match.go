package contracts

import (
	"context"
	"praxismatch-service/internal/app/models"
)

type MatchRepository interface {
	Insert(ctx context.Context, match *models.MatchRecord) (string, error)
	FindBySecureUUID(ctx context.Context, secureUUID string) ([]models.MatchRecord, error)
}
