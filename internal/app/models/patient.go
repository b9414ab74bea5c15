package models

// Patient is the stored intake record. All preference fields live in the
// metadata sub-document exactly as the intake form wrote them; anything the
// engine cannot interpret is treated as "no constraint" downstream.
type Patient struct {
	ID       string          `json:"id,omitempty" bson:"_id,omitempty"`
	Email    string          `json:"email,omitempty" bson:"email,omitempty"`
	Status   string          `json:"status,omitempty" bson:"status,omitempty"`
	Metadata PatientMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

type PatientMetadata struct {
	City               string   `json:"city,omitempty" bson:"city,omitempty"`
	SessionPreference  string   `json:"session_preference,omitempty" bson:"session_preference,omitempty"`
	SessionPreferences []string `json:"session_preferences,omitempty" bson:"session_preferences,omitempty"`
	Specializations    []string `json:"specializations,omitempty" bson:"specializations,omitempty"`
	Schwerpunkte       []string `json:"schwerpunkte,omitempty" bson:"schwerpunkte,omitempty"`
	GenderPreference   string   `json:"gender_preference,omitempty" bson:"gender_preference,omitempty"`
	TimeSlots          []string `json:"time_slots,omitempty" bson:"time_slots,omitempty"`
}
