package matching

import (
	"fmt"
	"time"

	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// SupplyGapReport is the post-hoc comparison of the final selection against
// the patient's original ask. Side effect only: nothing in here ever feeds
// back into ranking.
type SupplyGapReport struct {
	Gaps          []models.SupplyGap
	Insights      []string
	DemandSignals []string
}

// HasFindings reports whether anything is worth persisting or publishing.
func (r *SupplyGapReport) HasFindings() bool {
	return len(r.Gaps) > 0 || len(r.Insights) > 0
}

// BuildSupplyGapReport inspects what the patient asked for versus what the
// selection actually covers and emits one gap row per missing
// (city x gender x modality) and (city x gender x focus-area) combination,
// plus human-readable demand signals for recruiting triage.
func BuildSupplyGapReport(patientID string, prefs *PatientPreferences, selected []ScoredCandidate, slotIndex *SlotIndex, now time.Time) SupplyGapReport {
	report := SupplyGapReport{}
	if prefs == nil {
		prefs = &PatientPreferences{}
	}

	sessionType := constvars.SessionFormatOnline
	if prefs.WantsInPerson() {
		sessionType = constvars.SessionFormatInPerson
	}

	// In-person-only patients who ended up without a single in-person
	// bookable therapist are the strongest recruiting signal.
	if prefs.InPersonOnly() {
		inPersonCovered := false
		for _, candidate := range selected {
			if candidate.Therapist.OffersFormat(constvars.SessionFormatInPerson) &&
				slotIndex != nil && slotIndex.HasInPersonSlots(candidate.Therapist.ID) {
				inPersonCovered = true
				break
			}
		}
		if !inPersonCovered {
			report.Insights = append(report.Insights,
				fmt.Sprintf("no in-person intake slots available in %s", displayOrUnknown(prefs.City)))
		}
	}

	genderCovered := prefs.GenderPreference == ""
	for _, candidate := range selected {
		if candidate.Therapist.Gender == prefs.GenderPreference {
			genderCovered = true
			break
		}
	}
	if !genderCovered {
		report.Insights = append(report.Insights,
			fmt.Sprintf("requested gender %q not represented in selection", prefs.GenderPreference))
	}

	selectedModalities := make(map[string]struct{})
	selectedFocus := make(map[string]struct{})
	for _, candidate := range selected {
		for slug := range NormalizeSet(candidate.Therapist.Modalities) {
			selectedModalities[slug] = struct{}{}
		}
		for slug := range NormalizeSet(candidate.Therapist.Schwerpunkte) {
			selectedFocus[slug] = struct{}{}
		}
	}

	for _, modality := range missingTags(prefs.Specializations, selectedModalities) {
		report.Gaps = append(report.Gaps, models.SupplyGap{
			PatientID:   patientID,
			City:        prefs.City,
			Gender:      prefs.GenderPreference,
			Modality:    modality,
			SessionType: sessionType,
			CreatedAt:   now,
		})
		report.DemandSignals = append(report.DemandSignals,
			demandSignal(prefs.GenderPreference, modality, sessionType, prefs.City))
		report.Insights = append(report.Insights,
			fmt.Sprintf("requested modality %q not represented in selection", modality))
	}

	for _, focusArea := range missingTags(prefs.FocusAreas, selectedFocus) {
		report.Gaps = append(report.Gaps, models.SupplyGap{
			PatientID:   patientID,
			City:        prefs.City,
			Gender:      prefs.GenderPreference,
			Schwerpunkt: focusArea,
			SessionType: sessionType,
			CreatedAt:   now,
		})
		report.DemandSignals = append(report.DemandSignals,
			demandSignal(prefs.GenderPreference, focusArea, sessionType, prefs.City))
	}

	return report
}

// missingTags returns the requested tags (in request order, original
// spelling) whose normalized form is absent from the covered set.
func missingTags(requested []string, covered map[string]struct{}) []string {
	var missing []string
	seen := make(map[string]struct{})
	for _, tag := range requested {
		slug := Normalize(tag)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		if _, ok := covered[slug]; !ok {
			missing = append(missing, tag)
		}
	}
	return missing
}

// demandSignal renders the recruiting-facing string, e.g.
// "weibliche NARM-Therapeut:in (vor Ort) in Berlin".
func demandSignal(gender, tag, sessionType, city string) string {
	genderWord := ""
	switch gender {
	case constvars.GenderPreferenceFemale:
		genderWord = "weibliche "
	case constvars.GenderPreferenceMale:
		genderWord = "männliche "
	}

	format := "online"
	if sessionType == constvars.SessionFormatInPerson {
		format = "vor Ort"
	}

	signal := fmt.Sprintf("%s%s-Therapeut:in (%s)", genderWord, tag, format)
	if city != "" {
		signal += " in " + city
	}
	return signal
}

func displayOrUnknown(city string) string {
	if city == "" {
		return "unknown city"
	}
	return city
}
