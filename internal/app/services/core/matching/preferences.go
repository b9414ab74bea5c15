package matching

import (
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// PatientPreferences is the engine-local view of one patient's stated
// constraints. Every field defaults to "unconstrained": an empty string or
// empty slice never produces a mismatch, and any stored value the parser
// cannot interpret degrades to unconstrained rather than failing the run.
type PatientPreferences struct {
	City                string
	SessionPreferences  []string
	Specializations     []string
	FocusAreas          []string
	GenderPreference    string
	TimeSlotPreferences []string
}

// DerivePreferences builds the preference view from a stored patient record.
// Total over any input, including nil.
func DerivePreferences(patient *models.Patient) *PatientPreferences {
	prefs := &PatientPreferences{}
	if patient == nil {
		return prefs
	}

	meta := patient.Metadata
	prefs.City = meta.City
	prefs.Specializations = meta.Specializations
	prefs.FocusAreas = meta.Schwerpunkte
	prefs.TimeSlotPreferences = meta.TimeSlots

	// Newer intake forms write session_preferences as a list; older ones a
	// single session_preference string. The list wins when both exist.
	rawFormats := meta.SessionPreferences
	if len(rawFormats) == 0 && meta.SessionPreference != "" {
		rawFormats = []string{meta.SessionPreference}
	}
	for _, format := range rawFormats {
		switch format {
		case constvars.SessionFormatOnline, constvars.SessionFormatInPerson:
			if !containsString(prefs.SessionPreferences, format) {
				prefs.SessionPreferences = append(prefs.SessionPreferences, format)
			}
		}
	}

	switch meta.GenderPreference {
	case constvars.GenderPreferenceMale, constvars.GenderPreferenceFemale:
		prefs.GenderPreference = meta.GenderPreference
	}

	return prefs
}

// WantsInPerson reports whether in-person delivery is among the accepted formats.
func (p *PatientPreferences) WantsInPerson() bool {
	return containsString(p.SessionPreferences, constvars.SessionFormatInPerson)
}

func (p *PatientPreferences) WantsOnline() bool {
	return containsString(p.SessionPreferences, constvars.SessionFormatOnline)
}

// InPersonOnly reports whether in-person is the sole accepted format. Only
// then does geography constrain delivery.
func (p *PatientPreferences) InPersonOnly() bool {
	return len(p.SessionPreferences) == 1 && p.SessionPreferences[0] == constvars.SessionFormatInPerson
}

// ExclusiveFormat returns the single required format, or "" when the patient
// accepts more than one (or stated none).
func (p *PatientPreferences) ExclusiveFormat() string {
	if len(p.SessionPreferences) == 1 {
		return p.SessionPreferences[0]
	}
	return ""
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
