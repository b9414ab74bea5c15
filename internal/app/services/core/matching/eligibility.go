package matching

import (
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// EligibilityClass partitions the candidate pool for one run.
type EligibilityClass int

const (
	// ClassExcluded therapists failed an always-on check and are never shown.
	ClassExcluded EligibilityClass = iota
	// ClassFallback therapists pass the always-on checks but violate a
	// patient-specific exclusive constraint; they back the never-empty
	// guarantee and are ranked by platform score only.
	ClassFallback
	// ClassEligible therapists pass every hard gate and compete on total score.
	ClassEligible
)

// Classify applies the hard eligibility gate. The always-on checks hold with
// or without a patient context; the conditional checks only apply when
// preferences are supplied.
func Classify(therapist *models.Therapist, prefs *PatientPreferences) EligibilityClass {
	if therapist == nil {
		return ClassExcluded
	}
	if !therapist.IsAcceptingNewClients() {
		return ClassExcluded
	}
	if therapist.IsHiddenFromDirectory() {
		return ClassExcluded
	}
	// The pool query already filters on verified status; re-checked here so a
	// caller handing in an unfiltered slice cannot surface an unverified profile.
	if therapist.Status != "" && therapist.Status != constvars.TherapistStatusVerified {
		return ClassExcluded
	}

	if prefs == nil {
		return ClassEligible
	}

	if prefs.GenderPreference != "" && therapist.Gender != "" && therapist.Gender != prefs.GenderPreference {
		return ClassFallback
	}

	if format := prefs.ExclusiveFormat(); format != "" && !therapist.OffersFormat(format) {
		return ClassFallback
	}

	// An in-person-only patient in a different city cannot be served at all;
	// the city rule is promoted from soft mismatch to hard gate for them.
	if prefs.InPersonOnly() {
		patientCity := Normalize(prefs.City)
		therapistCity := Normalize(therapist.City)
		if patientCity != "" && therapistCity != "" && patientCity != therapistCity {
			return ClassFallback
		}
	}

	return ClassEligible
}

// IsEligible is the boolean view of Classify used by callers that do not
// care about the fallback pool.
func IsEligible(therapist *models.Therapist, prefs *PatientPreferences) bool {
	return Classify(therapist, prefs) == ClassEligible
}
