package contracts

import "context"

// AnalyticsEvent is the payload published for business/recruiting triage.
// Publishing is always best-effort; a failed publish never reaches the caller.
type AnalyticsEvent struct {
	Type  string                 `json:"type"`
	Props map[string]interface{} `json:"props"`
}

type AnalyticsPublisher interface {
	Publish(ctx context.Context, event AnalyticsEvent) error
}
