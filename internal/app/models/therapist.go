package models

// Therapist is the directory profile snapshot the engine scores against.
type Therapist struct {
	ID                 string            `json:"id,omitempty" bson:"_id,omitempty"`
	Status             string            `json:"status,omitempty" bson:"status,omitempty"`
	Gender             string            `json:"gender,omitempty" bson:"gender,omitempty"`
	City               string            `json:"city,omitempty" bson:"city,omitempty"`
	SessionPreferences []string          `json:"session_preferences,omitempty" bson:"session_preferences,omitempty"`
	Modalities         []string          `json:"modalities,omitempty" bson:"modalities,omitempty"`
	Schwerpunkte       []string          `json:"schwerpunkte,omitempty" bson:"schwerpunkte,omitempty"`
	AcceptingNew       *bool             `json:"accepting_new,omitempty" bson:"accepting_new,omitempty"`
	PhotoURL           string            `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	ApproachText       string            `json:"approach_text,omitempty" bson:"approach_text,omitempty"`
	WhoComesToMe       string            `json:"who_comes_to_me,omitempty" bson:"who_comes_to_me,omitempty"`
	CalBookingsLive    bool              `json:"cal_bookings_live,omitempty" bson:"cal_bookings_live,omitempty"`
	Metadata           TherapistMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

type TherapistMetadata struct {
	HideFromDirectory bool     `json:"hide_from_directory,omitempty" bson:"hide_from_directory,omitempty"`
	CalUsername       string   `json:"cal_username,omitempty" bson:"cal_username,omitempty"`
	CalEventTypes     []string `json:"cal_event_types,omitempty" bson:"cal_event_types,omitempty"`
}

// IsAcceptingNewClients defaults to true when the flag was never set.
func (t *Therapist) IsAcceptingNewClients() bool {
	return t.AcceptingNew == nil || *t.AcceptingNew
}

func (t *Therapist) IsHiddenFromDirectory() bool {
	return t.Metadata.HideFromDirectory
}

func (t *Therapist) OffersFormat(format string) bool {
	for _, f := range t.SessionPreferences {
		if f == format {
			return true
		}
	}
	return false
}

func (t *Therapist) HasCompleteProfile() bool {
	return t.PhotoURL != "" && t.ApproachText != "" && t.WhoComesToMe != ""
}
