package matching

import (
	"sort"

	"praxismatch-service/internal/app/models"
	"praxismatch-service/internal/pkg/constvars"
)

// ScoredCandidate is one therapist's standing within a single matching run.
type ScoredCandidate struct {
	Therapist     models.Therapist
	PlatformScore int
	MatchScore    int
	TotalScore    float64
	Class         EligibilityClass
	Mismatches    MismatchResult
}

// RankResult is the ordered, length-bounded selection for one run.
type RankResult struct {
	Selected     []ScoredCandidate
	UsedFallback bool
	MatchQuality string
}

// Rank orders the eligible pool by total score, takes the top limit, and
// backfills from the fallback pool when the eligible pool runs short. The
// fallback pool is ordered by platform score alone: a match score against a
// patient whose exclusive constraint the candidate violates carries no signal.
//
// Both sorts are stable, so candidates with equal scores keep their pool
// order within a run.
func Rank(eligible, fallback []ScoredCandidate, limit int, exactThreshold float64) RankResult {
	if limit <= 0 {
		limit = 3
	}
	if exactThreshold <= 0 {
		exactThreshold = DefaultExactQualityTotalScore
	}

	ordered := make([]ScoredCandidate, len(eligible))
	copy(ordered, eligible)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalScore > ordered[j].TotalScore
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	result := RankResult{Selected: ordered}

	if len(result.Selected) < limit && len(fallback) > 0 {
		backfill := make([]ScoredCandidate, len(fallback))
		copy(backfill, fallback)
		sort.SliceStable(backfill, func(i, j int) bool {
			return backfill[i].PlatformScore > backfill[j].PlatformScore
		})

		missing := limit - len(result.Selected)
		if missing > len(backfill) {
			missing = len(backfill)
		}
		result.Selected = append(result.Selected, backfill[:missing]...)
		result.UsedFallback = true
	}

	result.MatchQuality = matchQuality(result.Selected, result.UsedFallback, exactThreshold)
	return result
}

func matchQuality(selected []ScoredCandidate, usedFallback bool, exactThreshold float64) string {
	if len(selected) == 0 {
		return constvars.MatchQualityNone
	}
	if usedFallback {
		return constvars.MatchQualityPartial
	}
	for _, candidate := range selected {
		if candidate.TotalScore >= exactThreshold || candidate.Mismatches.IsPerfect {
			return constvars.MatchQualityExact
		}
	}
	return constvars.MatchQualityPartial
}
