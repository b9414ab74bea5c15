package routers

import (
	"praxismatch-service/internal/app/delivery/http/middlewares"
	"praxismatch-service/internal/app/services/core/matching"

	"github.com/go-chi/chi/v5"
)

func attachMatchingRoutes(router chi.Router, middlewares *middlewares.Middlewares, matchingController *matching.MatchingController) {
	router.Post("/run", matchingController.RunMatching)
	router.Get("/{secure_uuid}", matchingController.FindProposals)
}
