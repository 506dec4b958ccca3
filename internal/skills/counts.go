package skills

import (
	"github.com/jonathan/fit-scorer/internal/parsing"
	"github.com/jonathan/fit-scorer/internal/types"
)

// CountRequirementMatches maps every prioritised requirement back to the evidence for it.
// Skill requirements count as matched when their analysis holds any match for them;
// years requirements when the candidate has at least as many years; education requirements
// when the candidate holds an equal or higher degree.
// The required tier is required; the preferred tier is preferred plus nice-to-have.
func (m *Matcher) CountRequirementMatches(
	extraction *types.RequirementsExtraction,
	analyses types.SkillAnalyses,
	profile *types.CandidateProfile,
) types.MatchCounts {
	var counts types.MatchCounts
	if extraction == nil {
		return counts
	}

	matched := make(map[types.SkillKind]map[string]bool, len(types.SkillKinds))
	for _, kind := range types.SkillKinds {
		set := make(map[string]bool)
		for _, match := range analyses.Get(kind).Matched {
			set[parsing.NormalizeSkillName(match.RequirementSkill)] = true
		}
		matched[kind] = set
	}

	degree := 0
	years := 0
	if profile != nil {
		for _, level := range profile.EducationLevels {
			degree = max(degree, m.cat.DegreeRank(level))
		}
		years = profile.YearsExperience
	}

	satisfied := func(r types.Requirement) bool {
		switch r.Kind {
		case types.KindExperienceYears:
			return r.YearsRequired != nil && years >= *r.YearsRequired
		case types.KindEducation:
			rank := m.cat.DegreeRank(r.Text)
			return rank > 0 && degree >= rank
		}
		kind := r.Kind.SkillKind()
		return kind != "" && matched[kind][parsing.NormalizeSkillName(r.Text)]
	}

	for _, r := range extraction.Required {
		counts.TotalRequired++
		if satisfied(r) {
			counts.MatchedRequired++
		}
	}
	for _, tier := range [][]types.Requirement{extraction.Preferred, extraction.NiceToHave} {
		for _, r := range tier {
			counts.TotalPreferred++
			if satisfied(r) {
				counts.MatchedPreferred++
			}
		}
	}
	return counts
}
