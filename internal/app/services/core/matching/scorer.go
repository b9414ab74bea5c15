package matching

import (
	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// Platform score components. Therapist-intrinsic, identical for every
// patient. The attainable maximum is 70; headroom up to 100 is reserved for
// future signals, no normalization is applied.
const (
	ScoreBookingSystemLive = 30

	ScoreIntakeThreePlusIn7Days = 25
	ScoreIntakeOneIn7Days       = 15
	ScoreIntakeOneIn14Days      = 10

	ScoreProfileComplete     = 15
	ScoreProfilePhotoAndCity = 5

	PlatformScoreMax = ScoreBookingSystemLive + ScoreIntakeThreePlusIn7Days + ScoreProfileComplete
)

// Match score components. Patient-relative, maximum 100.
const (
	ScoreFocusOverlapThreePlus = 40
	ScoreFocusOverlapTwo       = 30
	ScoreFocusOverlapOne       = 15

	ScoreInPersonCityBonus = 20
	ScoreModalityOverlap   = 15
	ScoreTimeSlotMatch     = 15
	ScoreGenderMatch       = 10

	MatchScoreMax = ScoreFocusOverlapThreePlus + ScoreInPersonCityBonus + ScoreModalityOverlap + ScoreTimeSlotMatch + ScoreGenderMatch
)

// MatchScoreWeight makes patient relevance dominate therapist investment in
// the combined ranking while platform score still breaks near-ties.
const MatchScoreWeight = 1.5

// DefaultExactQualityTotalScore is the total score above which a selection
// without fallbacks counts as an "exact" match. Tunable via configuration.
const DefaultExactQualityTotalScore = 120.0

// CalculatePlatformScore scores the therapist's own investment and
// availability. Slot counts come from the caller's slot index so the scorer
// stays pure.
func CalculatePlatformScore(therapist *models.Therapist, intakeSlots7d, intakeSlots14d int) int {
	if therapist == nil {
		return 0
	}

	score := 0
	if therapist.CalBookingsLive {
		score += ScoreBookingSystemLive
	}

	// Near-term availability tiers, highest applicable only.
	switch {
	case intakeSlots7d >= 3:
		score += ScoreIntakeThreePlusIn7Days
	case intakeSlots7d >= 1:
		score += ScoreIntakeOneIn7Days
	case intakeSlots14d >= 1:
		score += ScoreIntakeOneIn14Days
	}

	// Profile completeness tiers, mutually exclusive.
	switch {
	case therapist.HasCompleteProfile():
		score += ScoreProfileComplete
	case therapist.PhotoURL != "" && therapist.City != "":
		score += ScoreProfilePhotoAndCity
	}

	return score
}

// CalculateMatchScore scores fit against one patient's stated preferences.
// hasMatchingTimeSlots is computed by the caller from the slot calendar.
func CalculateMatchScore(therapist *models.Therapist, prefs *PatientPreferences, hasMatchingTimeSlots bool) int {
	if therapist == nil {
		return 0
	}
	if prefs == nil {
		prefs = &PatientPreferences{}
	}

	score := 0

	patientFocus := NormalizeSet(prefs.FocusAreas)
	if len(patientFocus) > 0 {
		overlap := overlapCount(patientFocus, NormalizeSet(therapist.Schwerpunkte))
		switch {
		case overlap >= 3:
			score += ScoreFocusOverlapThreePlus
		case overlap == 2:
			score += ScoreFocusOverlapTwo
		case overlap == 1:
			score += ScoreFocusOverlapOne
		}
	}

	// City bonus only when the patient accepts both formats: for an
	// in-person-only patient the city already acts as a hard filter and must
	// not be counted twice.
	if prefs.WantsInPerson() && prefs.WantsOnline() {
		patientCity := Normalize(prefs.City)
		if patientCity != "" && therapist.OffersFormat(constvars.SessionFormatInPerson) && Normalize(therapist.City) == patientCity {
			score += ScoreInPersonCityBonus
		}
	}

	patientModalities := NormalizeSet(prefs.Specializations)
	if len(patientModalities) > 0 && overlapCount(patientModalities, NormalizeSet(therapist.Modalities)) > 0 {
		score += ScoreModalityOverlap
	}

	if hasMatchingTimeSlots {
		score += ScoreTimeSlotMatch
	}

	// Gender bonus requires recorded therapist gender; absent data never
	// grants it.
	if prefs.GenderPreference != "" && therapist.Gender == prefs.GenderPreference {
		score += ScoreGenderMatch
	}

	return score
}

// CalculateTotalScore combines the two scores for final ranking.
func CalculateTotalScore(matchScore, platformScore int) float64 {
	return float64(matchScore)*MatchScoreWeight + float64(platformScore)
}
