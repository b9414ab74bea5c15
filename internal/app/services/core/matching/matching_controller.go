package matching

import (
	"context"
	"net/http"
	"time"

	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/pkg/constvars"
	"praxismatch-service/internal/pkg/dto/requests"
	"praxismatch-service/internal/pkg/exceptions"
	"praxismatch-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MatchingController struct {
	Log             *zap.Logger
	MatchingUsecase contracts.MatchingUsecase
}

func NewMatchingController(logger *zap.Logger, matchingUsecase contracts.MatchingUsecase) *MatchingController {
	return &MatchingController{
		Log:             logger,
		MatchingUsecase: matchingUsecase,
	}
}

func (ctrl *MatchingController) RunMatching(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	request := &requests.RunMatching{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.MatchingUsecase.RunMatching(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MatchingDisabledMessage, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RunMatchingSuccessMessage, result)
}

func (ctrl *MatchingController) FindProposals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	secureUUID := chi.URLParam(r, "secure_uuid")
	if secureUUID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMatchNotFound(nil))
		return
	}

	result, err := ctrl.MatchingUsecase.FindProposalsBySecureUUID(ctx, secureUUID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMatchesSuccessMessage, result)
}
