// Package types provides type definitions for structured data used throughout the fit scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TransitionCategory labels how feasible an industry move is
type TransitionCategory string

// Transition categories
const (
	TransitionNatural   TransitionCategory = "Natural"
	TransitionModerate  TransitionCategory = "Moderate"
	TransitionDifficult TransitionCategory = "Difficult"
	TransitionHighRisk  TransitionCategory = "High-risk"
)

// CategorizeTransition maps a transition difficulty onto its category
func CategorizeTransition(difficulty float64) TransitionCategory {
	switch {
	case difficulty >= 0.8:
		return TransitionNatural
	case difficulty >= 0.6:
		return TransitionModerate
	case difficulty >= 0.4:
		return TransitionDifficult
	default:
		return TransitionHighRisk
	}
}

// IndustryInput carries everything the industry scorer reads
type IndustryInput struct {
	Experience      []string
	Skills          []string
	JobDescription  string
	CompanyInfo     string
	YearsExperience int
	CurrentIndustry string
}

// IndustryAlignment estimates how well a candidate transfers into the target industry
type IndustryAlignment struct {
	SourceIndustry            string             `json:"source_industry"`
	TargetIndustry            string             `json:"target_industry"`
	TransitionDifficulty      float64            `json:"transition_difficulty"`
	DomainOverlapScore        float64            `json:"domain_overlap_score"`
	SkillTransferabilityScore float64            `json:"skill_transferability_score"`
	ExperienceRelevanceScore  float64            `json:"experience_relevance_score"`
	OverallFitScore           float64            `json:"overall_fit_score"`
	TransitionCategory        TransitionCategory `json:"transition_category"`
	KeyGaps                   []string           `json:"key_gaps"`
	TransferableAdvantages    []string           `json:"transferable_advantages"`
}
