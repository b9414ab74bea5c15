package matching

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// SlotIndex is an immutable per-run lookup from therapist ID to that
// therapist's active recurring slots. It is built once at the top of a
// matching run and shared read-only by the scorer and the gap reporter.
type SlotIndex struct {
	byTherapist map[string][]models.TherapistSlot
}

// BuildSlotIndex groups active slots by therapist, ordered by weekday then
// start time. Inactive rows are skipped defensively even though the
// repository already filters them.
func BuildSlotIndex(slots []models.TherapistSlot) *SlotIndex {
	byTherapist := make(map[string][]models.TherapistSlot)
	for _, slot := range slots {
		if !slot.Active || slot.TherapistID == "" {
			continue
		}
		byTherapist[slot.TherapistID] = append(byTherapist[slot.TherapistID], slot)
	}
	for id := range byTherapist {
		list := byTherapist[id]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].DayOfWeek != list[j].DayOfWeek {
				return list[i].DayOfWeek < list[j].DayOfWeek
			}
			return list[i].TimeLocal < list[j].TimeLocal
		})
		byTherapist[id] = list
	}
	return &SlotIndex{byTherapist: byTherapist}
}

// Slots returns the ordered slot list for one therapist.
func (idx *SlotIndex) Slots(therapistID string) []models.TherapistSlot {
	return idx.byTherapist[therapistID]
}

// IntakeSlotCounts projects the recurring weekly slots onto a 14-day horizon
// from now and counts the openings falling into the next 7 and 14 days. Each
// active slot contributes one opening per matching weekday in the window.
func (idx *SlotIndex) IntakeSlotCounts(therapistID string, now time.Time) (next7 int, next14 int) {
	slots := idx.byTherapist[therapistID]
	if len(slots) == 0 {
		return 0, 0
	}

	perWeekday := make(map[int]int)
	for _, slot := range slots {
		if slot.DayOfWeek >= 0 && slot.DayOfWeek <= 6 {
			perWeekday[slot.DayOfWeek]++
		}
	}

	for offset := 0; offset < 14; offset++ {
		weekday := int(now.AddDate(0, 0, offset).Weekday())
		count := perWeekday[weekday]
		if count == 0 {
			continue
		}
		next14 += count
		if offset < 7 {
			next7 += count
		}
	}
	return next7, next14
}

// HasMatchingTimeSlots reports whether any of the therapist's slots falls
// into one of the patient's preferred day parts. An empty preference set and
// the "flexible" label always match.
func (idx *SlotIndex) HasMatchingTimeSlots(therapistID string, dayParts []string) bool {
	if len(dayParts) == 0 {
		return true
	}
	for _, part := range dayParts {
		if strings.EqualFold(part, constvars.TimeSlotFlexible) {
			return true
		}
	}

	for _, slot := range idx.byTherapist[therapistID] {
		for _, part := range dayParts {
			if slotMatchesDayPart(slot, part) {
				return true
			}
		}
	}
	return false
}

// HasInPersonSlots reports whether the therapist has any active slot bookable
// in person. Used by the gap reporter only.
func (idx *SlotIndex) HasInPersonSlots(therapistID string) bool {
	for _, slot := range idx.byTherapist[therapistID] {
		if slot.Format == "" || slot.Format == constvars.SessionFormatInPerson {
			return true
		}
	}
	return false
}

func slotMatchesDayPart(slot models.TherapistSlot, part string) bool {
	switch strings.ToLower(strings.TrimSpace(part)) {
	case constvars.TimeSlotWeekend:
		return slot.DayOfWeek == 0 || slot.DayOfWeek == 6
	case constvars.TimeSlotMorning:
		hour, ok := slotHour(slot)
		return ok && hour < 12
	case constvars.TimeSlotAfternoon:
		hour, ok := slotHour(slot)
		return ok && hour >= 12 && hour < 18
	case constvars.TimeSlotEvening:
		hour, ok := slotHour(slot)
		return ok && hour >= 18
	default:
		// Unknown labels degrade to "no constraint" rather than excluding.
		return true
	}
}

func slotHour(slot models.TherapistSlot) (int, bool) {
	parts := strings.SplitN(slot.TimeLocal, ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
