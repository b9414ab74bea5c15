package matching

import (
	"testing"

	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePlatformScore(t *testing.T) {
	t.Run("Nil Therapist Scores Zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculatePlatformScore(nil, 5, 5))
	})

	t.Run("Maximum Score", func(t *testing.T) {
		therapist := &models.Therapist{
			CalBookingsLive: true,
			PhotoURL:        "https://example.org/p.jpg",
			ApproachText:    "Mein Ansatz",
			WhoComesToMe:    "Menschen mit Trauma",
		}
		assert.Equal(t, PlatformScoreMax, CalculatePlatformScore(therapist, 3, 5))
		assert.Equal(t, 70, PlatformScoreMax)
	})

	t.Run("Intake Availability Tiers Are Mutually Exclusive", func(t *testing.T) {
		therapist := &models.Therapist{}
		assert.Equal(t, ScoreIntakeThreePlusIn7Days, CalculatePlatformScore(therapist, 3, 3))
		assert.Equal(t, ScoreIntakeOneIn7Days, CalculatePlatformScore(therapist, 1, 4))
		assert.Equal(t, ScoreIntakeOneIn14Days, CalculatePlatformScore(therapist, 0, 1))
		assert.Equal(t, 0, CalculatePlatformScore(therapist, 0, 0))
	})

	t.Run("Profile Tiers Are Mutually Exclusive", func(t *testing.T) {
		complete := &models.Therapist{
			PhotoURL:     "https://example.org/p.jpg",
			ApproachText: "Mein Ansatz",
			WhoComesToMe: "Menschen mit Trauma",
		}
		assert.Equal(t, ScoreProfileComplete, CalculatePlatformScore(complete, 0, 0))

		partial := &models.Therapist{
			PhotoURL: "https://example.org/p.jpg",
			City:     "Berlin",
		}
		assert.Equal(t, ScoreProfilePhotoAndCity, CalculatePlatformScore(partial, 0, 0))
	})
}

func TestCalculateMatchScore(t *testing.T) {
	t.Run("Nil Inputs Score Only Time Slot Signal", func(t *testing.T) {
		assert.Equal(t, 0, CalculateMatchScore(nil, nil, true))
		assert.Equal(t, ScoreTimeSlotMatch, CalculateMatchScore(&models.Therapist{}, nil, true))
	})

	t.Run("Focus Area Overlap Tiers", func(t *testing.T) {
		prefs := &PatientPreferences{FocusAreas: []string{"Trauma", "Angst", "Depression", "Burnout"}}

		one := &models.Therapist{Schwerpunkte: []string{"Trauma"}}
		two := &models.Therapist{Schwerpunkte: []string{"Trauma", "Angst"}}
		three := &models.Therapist{Schwerpunkte: []string{"Trauma", "Angst", "Depression"}}
		none := &models.Therapist{Schwerpunkte: []string{"Sucht"}}

		assert.Equal(t, ScoreFocusOverlapOne, CalculateMatchScore(one, prefs, false))
		assert.Equal(t, ScoreFocusOverlapTwo, CalculateMatchScore(two, prefs, false))
		assert.Equal(t, ScoreFocusOverlapThreePlus, CalculateMatchScore(three, prefs, false))
		assert.Equal(t, 0, CalculateMatchScore(none, prefs, false))
	})

	t.Run("City Bonus Only For Dual Format Patients", func(t *testing.T) {
		therapist := &models.Therapist{
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatInPerson},
		}

		dualFormat := &PatientPreferences{
			City: "Berlin",
			SessionPreferences: []string{
				constvars.SessionFormatInPerson,
				constvars.SessionFormatOnline,
			},
		}
		assert.Equal(t, ScoreInPersonCityBonus, CalculateMatchScore(therapist, dualFormat, false))

		inPersonOnly := &PatientPreferences{
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatInPerson},
		}
		assert.Equal(t, 0, CalculateMatchScore(therapist, inPersonOnly, false))

		onlineOnly := &PatientPreferences{
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatOnline},
		}
		assert.Equal(t, 0, CalculateMatchScore(therapist, onlineOnly, false))
	})

	t.Run("Gender Bonus Requires Recorded Gender", func(t *testing.T) {
		prefs := &PatientPreferences{GenderPreference: constvars.GenderPreferenceFemale}

		match := &models.Therapist{Gender: constvars.GenderPreferenceFemale}
		assert.Equal(t, ScoreGenderMatch, CalculateMatchScore(match, prefs, false))

		unknown := &models.Therapist{}
		assert.Equal(t, 0, CalculateMatchScore(unknown, prefs, false))
	})

	t.Run("Maximum Score Is Attainable", func(t *testing.T) {
		prefs := &PatientPreferences{
			City: "Berlin",
			SessionPreferences: []string{
				constvars.SessionFormatInPerson,
				constvars.SessionFormatOnline,
			},
			Specializations:  []string{"EMDR"},
			FocusAreas:       []string{"Trauma", "Angst", "Depression"},
			GenderPreference: constvars.GenderPreferenceFemale,
		}
		therapist := &models.Therapist{
			Gender:             constvars.GenderPreferenceFemale,
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatInPerson},
			Modalities:         []string{"EMDR"},
			Schwerpunkte:       []string{"Trauma", "Angst", "Depression"},
		}
		assert.Equal(t, MatchScoreMax, CalculateMatchScore(therapist, prefs, true))
		assert.Equal(t, 100, MatchScoreMax)
	})
}

func TestCalculateTotalScore(t *testing.T) {
	t.Run("Match Score Dominates Platform Score", func(t *testing.T) {
		assert.Equal(t, 220.0, CalculateTotalScore(MatchScoreMax, PlatformScoreMax))
		assert.Greater(t,
			CalculateTotalScore(60, 0),
			CalculateTotalScore(40, 25),
		)
	})
}
