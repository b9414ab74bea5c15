package contracts

import (
	"context"
	"praxismatch-service/internal/pkg/dto/requests"
	"praxismatch-service/internal/pkg/dto/responses"
)

type MatchingUsecase interface {
	// RunMatching executes one full matching run for a patient. A nil result
	// with nil error means matching is disabled for this patient's cohort.
	RunMatching(ctx context.Context, request *requests.RunMatching) (*responses.MatchRun, error)
	FindProposalsBySecureUUID(ctx context.Context, secureUUID string) ([]responses.ProposedMatch, error)
}
