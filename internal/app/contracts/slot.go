package contracts

import (
	"context"
	"praxismatch-service/internal/app/models"
)

type SlotRepository interface {
	FindActive(ctx context.Context) ([]models.TherapistSlot, error)
}
