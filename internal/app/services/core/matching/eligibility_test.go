package matching

import (
	"testing"

	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestClassify(t *testing.T) {
	verified := func() *models.Therapist {
		return &models.Therapist{
			ID:     "t-1",
			Status: constvars.TherapistStatusVerified,
			SessionPreferences: []string{
				constvars.SessionFormatOnline,
				constvars.SessionFormatInPerson,
			},
		}
	}

	t.Run("Not Accepting New Clients Is Excluded", func(t *testing.T) {
		therapist := verified()
		therapist.AcceptingNew = boolPtr(false)
		assert.Equal(t, ClassExcluded, Classify(therapist, nil))
	})

	t.Run("Unset Accepting Flag Defaults To Accepting", func(t *testing.T) {
		assert.Equal(t, ClassEligible, Classify(verified(), nil))
	})

	t.Run("Hidden From Directory Is Excluded", func(t *testing.T) {
		therapist := verified()
		therapist.Metadata.HideFromDirectory = true
		assert.Equal(t, ClassExcluded, Classify(therapist, nil))
	})

	t.Run("Unverified Status Is Excluded", func(t *testing.T) {
		therapist := verified()
		therapist.Status = "pending"
		assert.Equal(t, ClassExcluded, Classify(therapist, &PatientPreferences{}))
	})

	t.Run("Gender Violation Demotes To Fallback", func(t *testing.T) {
		therapist := verified()
		therapist.Gender = constvars.GenderPreferenceMale
		prefs := &PatientPreferences{GenderPreference: constvars.GenderPreferenceFemale}
		assert.Equal(t, ClassFallback, Classify(therapist, prefs))
	})

	t.Run("Unknown Therapist Gender Stays Eligible", func(t *testing.T) {
		prefs := &PatientPreferences{GenderPreference: constvars.GenderPreferenceFemale}
		assert.Equal(t, ClassEligible, Classify(verified(), prefs))
	})

	t.Run("Exclusive Format Violation Demotes To Fallback", func(t *testing.T) {
		therapist := verified()
		therapist.SessionPreferences = []string{constvars.SessionFormatOnline}
		prefs := &PatientPreferences{SessionPreferences: []string{constvars.SessionFormatInPerson}}
		assert.Equal(t, ClassFallback, Classify(therapist, prefs))
	})

	t.Run("Dual Format Patient Is Not Demoted By Single Format Therapist", func(t *testing.T) {
		therapist := verified()
		therapist.SessionPreferences = []string{constvars.SessionFormatOnline}
		prefs := &PatientPreferences{SessionPreferences: []string{
			constvars.SessionFormatInPerson,
			constvars.SessionFormatOnline,
		}}
		assert.Equal(t, ClassEligible, Classify(therapist, prefs))
	})

	t.Run("In Person Only Patient In Other City Demotes To Fallback", func(t *testing.T) {
		therapist := verified()
		therapist.City = "München"
		prefs := &PatientPreferences{
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatInPerson},
		}
		assert.Equal(t, ClassFallback, Classify(therapist, prefs))

		therapist.City = "Berlin"
		assert.Equal(t, ClassEligible, Classify(therapist, prefs))
	})

	t.Run("Missing City Data Never Demotes", func(t *testing.T) {
		therapist := verified()
		prefs := &PatientPreferences{
			City:               "Berlin",
			SessionPreferences: []string{constvars.SessionFormatInPerson},
		}
		assert.Equal(t, ClassEligible, Classify(therapist, prefs))
	})

	t.Run("IsEligible Mirrors Classify", func(t *testing.T) {
		assert.True(t, IsEligible(verified(), nil))
		assert.False(t, IsEligible(nil, nil))
	})
}
