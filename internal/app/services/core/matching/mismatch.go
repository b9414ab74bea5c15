package matching

import (
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// MismatchResult is the structured comparison of one patient preference set
// against one therapist profile. Hard eligibility and soft scoring both read
// from it; the Reasons list additionally feeds the supply-gap analytics.
type MismatchResult struct {
	Gender     bool
	Location   bool
	City       bool
	Modality   bool
	FocusAreas bool

	// Reasons is ordered by severity: city first, then gender, location,
	// modality, focus areas. Consumers display Reasons[0] as the top reason,
	// so the ordering is part of the contract.
	Reasons []string

	IsPerfect        bool
	FocusAreaOverlap int
}

// ComputeMismatches evaluates every mismatch rule independently. Pure and
// total: nil preferences mean "no constraints" and can never mismatch.
func ComputeMismatches(prefs *PatientPreferences, therapist *models.Therapist) MismatchResult {
	result := MismatchResult{}
	if prefs == nil {
		prefs = &PatientPreferences{}
	}
	if therapist == nil {
		therapist = &models.Therapist{}
	}

	// Gender: only when the patient stated an exclusive preference and the
	// therapist's gender is recorded and differs. Unknown therapist gender is
	// never a mismatch.
	if prefs.GenderPreference != "" && therapist.Gender != "" && therapist.Gender != prefs.GenderPreference {
		result.Gender = true
	}

	therapistInPerson := containsString(therapist.SessionPreferences, constvars.SessionFormatInPerson)
	therapistOnline := containsString(therapist.SessionPreferences, constvars.SessionFormatOnline)

	// Location: patient wants in-person but the therapist works online only.
	if prefs.WantsInPerson() && therapistOnline && !therapistInPerson {
		result.Location = true
	}

	// City: only binding when the patient is in-person-only. A patient who
	// also accepts online sessions is not constrained by geography.
	if prefs.InPersonOnly() && therapistInPerson {
		patientCity := Normalize(prefs.City)
		therapistCity := Normalize(therapist.City)
		if patientCity != "" && therapistCity != "" && patientCity != therapistCity {
			result.City = true
		}
	}

	// Modality: at least one requested modality must appear in the
	// therapist's set. An empty request never mismatches.
	patientModalities := NormalizeSet(prefs.Specializations)
	if len(patientModalities) > 0 {
		therapistModalities := NormalizeSet(therapist.Modalities)
		if overlapCount(patientModalities, therapistModalities) == 0 {
			result.Modality = true
		}
	}

	// Focus areas: mismatch on empty intersection; the overlap count stays a
	// pure ranking signal and never eliminates a therapist.
	patientFocus := NormalizeSet(prefs.FocusAreas)
	if len(patientFocus) > 0 {
		therapistFocus := NormalizeSet(therapist.Schwerpunkte)
		result.FocusAreaOverlap = overlapCount(patientFocus, therapistFocus)
		if result.FocusAreaOverlap == 0 {
			result.FocusAreas = true
		}
	}

	if result.City {
		result.Reasons = append(result.Reasons, constvars.MismatchReasonCity)
	}
	if result.Gender {
		result.Reasons = append(result.Reasons, constvars.MismatchReasonGender)
	}
	if result.Location {
		result.Reasons = append(result.Reasons, constvars.MismatchReasonLocation)
	}
	if result.Modality {
		result.Reasons = append(result.Reasons, constvars.MismatchReasonModality)
	}
	if result.FocusAreas {
		result.Reasons = append(result.Reasons, constvars.MismatchReasonFocusAreas)
	}

	result.IsPerfect = len(result.Reasons) == 0
	return result
}
