// Package types provides type definitions for structured data used throughout the fit scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillKind is the matcher bucket a skill belongs to
type SkillKind string

// Skill kinds
const (
	SkillTechnical SkillKind = "technical"
	SkillSoft      SkillKind = "soft"
	SkillDomain    SkillKind = "domain"
)

// SkillKinds lists every skill kind in scoring order
var SkillKinds = []SkillKind{SkillTechnical, SkillSoft, SkillDomain}

// MatchType describes how a candidate skill satisfied a requirement
type MatchType string

// Match types, strongest first
const (
	MatchExact        MatchType = "exact"
	MatchSemantic     MatchType = "semantic"
	MatchTransferable MatchType = "transferable"
)

// Rank orders match types; higher is stronger
func (m MatchType) Rank() int {
	switch m {
	case MatchExact:
		return 3
	case MatchSemantic:
		return 2
	case MatchTransferable:
		return 1
	default:
		return 0
	}
}

// SkillMatch pairs a candidate skill with the requirement it satisfies
type SkillMatch struct {
	CandidateSkill   string    `json:"candidate_skill"`
	RequirementSkill string    `json:"requirement_skill"`
	MatchType        MatchType `json:"match_type"`
	Confidence       float64   `json:"confidence"`
	SkillKind        SkillKind `json:"skill_kind"`
}

// Beats reports whether m should replace other as the best match for a requirement
func (m SkillMatch) Beats(other SkillMatch) bool {
	if m.MatchType.Rank() != other.MatchType.Rank() {
		return m.MatchType.Rank() > other.MatchType.Rank()
	}
	return m.Confidence > other.Confidence
}

// SkillAnalysis is the matcher output for one skill kind
type SkillAnalysis struct {
	Matched                []SkillMatch `json:"matched"`
	Missing                []string     `json:"missing"`
	Transferable           []SkillMatch `json:"transferable"`
	MatchRate              float64      `json:"match_rate"`
	ConfidenceWeightedRate float64      `json:"confidence_weighted_rate"`
	TotalRequirements      int          `json:"total_requirements"`
}

// NewEmptyAnalysis returns an analysis with no requirements and zero rates
func NewEmptyAnalysis() SkillAnalysis {
	return SkillAnalysis{
		Matched:      []SkillMatch{},
		Missing:      []string{},
		Transferable: []SkillMatch{},
	}
}

// SkillAnalyses holds one analysis per skill kind
type SkillAnalyses struct {
	Technical SkillAnalysis `json:"technical"`
	Soft      SkillAnalysis `json:"soft"`
	Domain    SkillAnalysis `json:"domain"`
}

// NewEmptyAnalyses returns the neutral matcher output
func NewEmptyAnalyses() SkillAnalyses {
	return SkillAnalyses{
		Technical: NewEmptyAnalysis(),
		Soft:      NewEmptyAnalysis(),
		Domain:    NewEmptyAnalysis(),
	}
}

// Get returns the analysis for a skill kind
func (s SkillAnalyses) Get(kind SkillKind) SkillAnalysis {
	switch kind {
	case SkillTechnical:
		return s.Technical
	case SkillSoft:
		return s.Soft
	case SkillDomain:
		return s.Domain
	default:
		return NewEmptyAnalysis()
	}
}

// MatchCounts summarises how many prioritised requirements were satisfied
type MatchCounts struct {
	TotalRequired    int `json:"total_required"`
	TotalPreferred   int `json:"total_preferred"`
	MatchedRequired  int `json:"matched_required"`
	MatchedPreferred int `json:"matched_preferred"`
}
