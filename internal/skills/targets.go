// Package skills matches candidate skills against job requirements.
package skills

import (
	"sort"

	"github.com/jonathan/fit-scorer/internal/parsing"
	"github.com/jonathan/fit-scorer/internal/types"
)

// Target is one requirement skill weighted by the strongest priority it was asked at
type Target struct {
	Name     string          `json:"name"`
	Kind     types.SkillKind `json:"kind"`
	Priority types.Priority  `json:"priority"`
	Weight   float64         `json:"weight"`
}

// BuildTargets builds the weighted skill targets of an extraction.
// Names are normalized and deduplicated, keeping the maximum weight, and sorted by weight descending.
// Requirements that are not skill matched (education, years) are skipped.
func BuildTargets(extraction *types.RequirementsExtraction) []Target {
	if extraction == nil {
		return nil
	}
	weights := extraction.PriorityWeights
	if len(weights) == 0 {
		weights = types.DefaultPriorityWeights()
	}

	var targets []Target
	index := make(map[string]int)
	for _, req := range extraction.All() {
		kind := req.Kind.SkillKind()
		name := parsing.NormalizeSkillName(req.Text)
		if kind == "" || name == "" {
			continue
		}
		weight := weights[req.Priority]
		if i, ok := index[name]; ok {
			if weight > targets[i].Weight {
				targets[i].Weight = weight
				targets[i].Priority = req.Priority
			}
			continue
		}
		index[name] = len(targets)
		targets = append(targets, Target{Name: name, Kind: kind, Priority: req.Priority, Weight: weight})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Weight > targets[j].Weight
	})
	return targets
}

// RequirementLists groups the normalized requirement skills of an extraction by skill kind,
// in first-seen order
func RequirementLists(extraction *types.RequirementsExtraction) types.SkillSets {
	lists := extraction.RequirementLists()
	return types.SkillSets{
		Technical: parsing.NormalizeSkills(lists.Technical),
		Soft:      parsing.NormalizeSkills(lists.Soft),
		Domain:    parsing.NormalizeSkills(lists.Domain),
	}
}
