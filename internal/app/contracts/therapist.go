package contracts

import (
	"context"
	"praxismatch-service/internal/app/models"
)

type TherapistRepository interface {
	FindVerified(ctx context.Context) ([]models.Therapist, error)
}
