package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingTherapistIDKey    = "therapist_id"
	LoggingMatchIDKey        = "match_id"
	LoggingMatchQualityKey   = "match_quality"
	LoggingCandidateCountKey = "candidate_count"
	LoggingEligibleCountKey  = "eligible_count"
	LoggingFallbackCountKey  = "fallback_count"
	LoggingSelectedCountKey  = "selected_count"
	LoggingSupplyGapCountKey = "supply_gap_count"
	LoggingSlotCountKey      = "slot_count"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
)
