package models

import "time"

// MatchRecord is one proposed (patient, therapist) pairing. A record with an
// empty TherapistID is the "empty marker" written when a run produced zero
// candidates, so the UI always has an anchor to redirect to.
type MatchRecord struct {
	ID          string        `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID   string        `json:"patient_id" bson:"patient_id"`
	TherapistID string        `json:"therapist_id,omitempty" bson:"therapist_id,omitempty"`
	SecureUUID  string        `json:"secure_uuid" bson:"secure_uuid"`
	Status      string        `json:"status" bson:"status"`
	Metadata    MatchMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}

type MatchMetadata struct {
	MatchQuality          string   `json:"match_quality,omitempty" bson:"match_quality,omitempty"`
	TherapistMatchQuality float64  `json:"therapist_match_quality,omitempty" bson:"therapist_match_quality,omitempty"`
	TherapistMatchReasons []string `json:"therapist_match_reasons,omitempty" bson:"therapist_match_reasons,omitempty"`
	IsTest                bool     `json:"is_test,omitempty" bson:"is_test,omitempty"`
}
