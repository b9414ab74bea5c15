package models

import "time"

// SupplyGap is one unmet structural demand row, appended per missing
// (city x gender x modality) or (city x gender x focus-area) combination.
type SupplyGap struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID   string    `json:"patient_id" bson:"patient_id"`
	City        string    `json:"city,omitempty" bson:"city,omitempty"`
	Gender      string    `json:"gender,omitempty" bson:"gender,omitempty"`
	Modality    string    `json:"modality,omitempty" bson:"modality,omitempty"`
	Schwerpunkt string    `json:"schwerpunkt,omitempty" bson:"schwerpunkt,omitempty"`
	SessionType string    `json:"session_type" bson:"session_type"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
