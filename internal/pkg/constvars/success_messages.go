package constvars

const (
	RunMatchingSuccessMessage = "Successfully matched therapists for patient"
	GetMatchesSuccessMessage  = "Successfully fetched proposed matches"
	MatchingDisabledMessage   = "Matching is disabled for this cohort"
	HealthCheckSuccessMessage = "Service is healthy"
)
