package contracts

import (
	"context"
	"praxismatch-service/internal/app/models"
)

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
