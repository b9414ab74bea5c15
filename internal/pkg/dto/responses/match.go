package responses

type MatchRun struct {
	MatchesURL   string `json:"matches_url"`
	MatchQuality string `json:"match_quality"`
}

type ProposedMatch struct {
	TherapistID          string   `json:"therapist_id,omitempty"`
	Status               string   `json:"status"`
	MatchQuality         string   `json:"match_quality"`
	TherapistMatchReason []string `json:"therapist_match_reasons,omitempty"`
}
