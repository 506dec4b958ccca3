// Package scoring turns match results into bonus points and the final bounded fit score.
package scoring

import "github.com/jonathan/fit-scorer/internal/types"

// Requirement bonus constants
const (
	essentialBonusSmall     = 2.0
	essentialBonusLarge     = 3.0
	essentialBonusThreshold = 4
	essentialPenaltyMax     = -5.0
	preferredBonusPoints    = 1.0
	preferredPenaltyPoints  = -1.0
	preferredBonusThreshold = 1
)

// CalculateBonus converts requirement match counts into signed bonus points.
// A tier with no requirements neither earns nor loses points. The result is not capped;
// the ceiling is applied once, by Aggregate.
func CalculateBonus(counts types.MatchCounts) types.RequirementBonus {
	counts = sanitizeCounts(counts)
	bonus := types.RequirementBonus{MatchCounts: counts}

	if counts.TotalRequired > 0 {
		bonus.EssentialBonus = essentialBonusSmall
		if counts.MatchedRequired > essentialBonusThreshold {
			bonus.EssentialBonus = essentialBonusLarge
		}
		unmatched := counts.TotalRequired - counts.MatchedRequired
		bonus.EssentialPenalty = essentialPenaltyMax * float64(unmatched) / float64(counts.TotalRequired)
	}

	if counts.TotalPreferred > 0 {
		switch {
		case counts.MatchedPreferred > preferredBonusThreshold:
			bonus.PreferredBonus = preferredBonusPoints
		case counts.MatchedPreferred == 0:
			bonus.PreferredBonus = preferredPenaltyPoints
			bonus.PreferredPenalty = preferredPenaltyPoints
		}
	}

	bonus.TotalBonus = bonus.EssentialBonus + bonus.EssentialPenalty + bonus.PreferredBonus
	return bonus
}

// sanitizeCounts keeps counts non-negative and matched counts within their totals
func sanitizeCounts(c types.MatchCounts) types.MatchCounts {
	c.TotalRequired = max(c.TotalRequired, 0)
	c.TotalPreferred = max(c.TotalPreferred, 0)
	c.MatchedRequired = min(max(c.MatchedRequired, 0), c.TotalRequired)
	c.MatchedPreferred = min(max(c.MatchedPreferred, 0), c.TotalPreferred)
	return c
}
