package skills

import (
	"strings"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/parsing"
	"github.com/jonathan/fit-scorer/internal/types"
)

// Match confidences
const (
	ConfidenceExact       = 1.0
	ConfidenceSemantic    = 0.9
	ConfidenceSameCluster = 0.75
)

// Matcher pairs candidate skills with requirements using the catalog's equivalence,
// cluster and transferability tables
type Matcher struct {
	cat *catalog.Catalog
}

// NewMatcher creates a matcher
func NewMatcher(cat *catalog.Catalog) *Matcher {
	return &Matcher{cat: cat}
}

// Analyze matches each skill kind independently
func (m *Matcher) Analyze(candidate, requirements types.SkillSets) types.SkillAnalyses {
	return types.SkillAnalyses{
		Technical: m.analyzeKind(types.SkillTechnical, candidate.Technical, requirements.Technical),
		Soft:      m.analyzeKind(types.SkillSoft, candidate.Soft, requirements.Soft),
		Domain:    m.analyzeKind(types.SkillDomain, candidate.Domain, requirements.Domain),
	}
}

// skill keeps the reported text next to its keys. key decides exact matches;
// canon resolves aliases and is used for every catalog lookup.
type skill struct {
	text  string
	key   string
	canon string
}

func toSkills(values []string) []skill {
	out := make([]skill, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		key := parsing.ComparisonKey(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill{text: strings.TrimSpace(v), key: key, canon: parsing.NormalizeSkillName(v)})
	}
	return out
}

func (m *Matcher) analyzeKind(kind types.SkillKind, candidateSkills, requirementSkills []string) types.SkillAnalysis {
	analysis := types.NewEmptyAnalysis()
	candidates := toSkills(candidateSkills)
	requirements := toSkills(requirementSkills)
	analysis.TotalRequirements = len(requirements)
	if len(requirements) == 0 {
		return analysis
	}

	best := make([]*types.SkillMatch, len(requirements))
	record := func(i int, match types.SkillMatch) {
		analysis.Matched = append(analysis.Matched, match)
		if best[i] == nil || match.Beats(*best[i]) {
			b := match
			best[i] = &b
		}
	}

	for _, c := range candidates {
		for i, r := range requirements {
			if match, ok := m.direct(kind, c, r); ok {
				record(i, match)
			}
		}
	}

	// transferable only fills requirements nothing else matched
	for i, r := range requirements {
		if best[i] != nil {
			continue
		}
		if match, ok := m.transferable(kind, candidates, r); ok {
			record(i, match)
			analysis.Transferable = append(analysis.Transferable, match)
		}
	}

	matched := 0
	confidence := 0.0
	for i, r := range requirements {
		if best[i] == nil {
			analysis.Missing = append(analysis.Missing, r.text)
			continue
		}
		matched++
		confidence += best[i].Confidence
	}
	total := float64(len(requirements))
	analysis.MatchRate = float64(matched) / total
	analysis.ConfidenceWeightedRate = confidence / total
	return analysis
}

// direct tries exact, then semantic or same-cluster matching for one pair
func (m *Matcher) direct(kind types.SkillKind, c, r skill) (types.SkillMatch, bool) {
	match := types.SkillMatch{CandidateSkill: c.text, RequirementSkill: r.text, SkillKind: kind}
	if c.key == r.key {
		match.MatchType = types.MatchExact
		match.Confidence = ConfidenceExact
		return match, true
	}
	// aliases of one skill ("js", "javascript") are semantic, never exact
	if c.canon == r.canon {
		match.MatchType = types.MatchSemantic
		match.Confidence = ConfidenceSemantic
		return match, true
	}
	if kind == types.SkillDomain {
		if sharesCluster(m.cat.ClustersOf(c.canon), m.cat.ClustersOf(r.canon)) {
			match.MatchType = types.MatchSemantic
			match.Confidence = ConfidenceSameCluster
			return match, true
		}
		return match, false
	}
	if m.cat.Equivalent(c.canon, r.canon) {
		match.MatchType = types.MatchSemantic
		match.Confidence = ConfidenceSemantic
		return match, true
	}
	return match, false
}

// transferable returns a match when the candidate holds a source skill of r
func (m *Matcher) transferable(kind types.SkillKind, candidates []skill, r skill) (types.SkillMatch, bool) {
	t, ok := m.cat.TransferSources(r.canon)
	if !ok {
		return types.SkillMatch{}, false
	}
	for _, src := range t.Sources {
		srcKey := parsing.NormalizeSkillName(src)
		for _, c := range candidates {
			if c.canon == srcKey {
				return types.SkillMatch{
					CandidateSkill:   c.text,
					RequirementSkill: r.text,
					MatchType:        types.MatchTransferable,
					Confidence:       t.Learnability,
					SkillKind:        kind,
				}, true
			}
		}
	}
	return types.SkillMatch{}, false
}

func sharesCluster(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
