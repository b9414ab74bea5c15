package models

// TherapistSlot is one recurring weekly intake opening. DayOfWeek follows
// time.Weekday numbering (0 = Sunday). TimeLocal is "HH:MM".
type TherapistSlot struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty"`
	TherapistID string `json:"therapist_id" bson:"therapist_id"`
	DayOfWeek   int    `json:"day_of_week" bson:"day_of_week"`
	TimeLocal   string `json:"time_local" bson:"time_local"`
	Format      string `json:"format,omitempty" bson:"format,omitempty"`
	Active      bool   `json:"active" bson:"active"`
}
