// Package types provides type definitions for structured data used throughout the fit scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequirementBonus holds the signed adjustments derived from requirement match counts
type RequirementBonus struct {
	MatchCounts      MatchCounts `json:"match_counts"`
	EssentialBonus   float64     `json:"essential_bonus"`
	EssentialPenalty float64     `json:"essential_penalty"`
	PreferredBonus   float64     `json:"preferred_bonus"`
	PreferredPenalty float64     `json:"preferred_penalty"`
	TotalBonus       float64     `json:"total_bonus"`
}

// CategoryOne holds the direct match rate points (at most 40)
type CategoryOne struct {
	TechnicalPoints float64 `json:"technical_points"`
	DomainPoints    float64 `json:"domain_points"`
	SoftPoints      float64 `json:"soft_points"`
	Total           float64 `json:"total"`
}

// CategoryTwo holds the component analysis points (at most 60)
type CategoryTwo struct {
	CoreCompetency      float64 `json:"core_competency"`
	ExperienceSeniority float64 `json:"experience_seniority"`
	PotentialAbility    float64 `json:"potential_ability"`
	CompanyFit          float64 `json:"company_fit"`
	Total               float64 `json:"total"`
}

// IndustrySummary is the slice of the industry alignment surfaced with the score
type IndustrySummary struct {
	SourceIndustry     string             `json:"source_industry"`
	TargetIndustry     string             `json:"target_industry"`
	TransitionCategory TransitionCategory `json:"transition_category"`
	OverallFitScore    float64            `json:"overall_fit_score"`
}

// ATSScoreBreakdown is the final aggregated result of one scoring run
type ATSScoreBreakdown struct {
	RunID           string                `json:"run_id,omitempty"`
	CategoryOne     CategoryOne           `json:"category_one"`
	CategoryTwo     CategoryTwo           `json:"category_two"`
	PreBonusScore   float64               `json:"pre_bonus_score"`
	BonusPoints     float64               `json:"bonus_points"`
	FinalScore      float64               `json:"final_score"`
	CategoryStatus  string                `json:"category_status"`
	Recommendation  string                `json:"recommendation"`
	MatchRates      map[SkillKind]float64 `json:"match_rates"`
	MissingCounts   map[SkillKind]int     `json:"missing_counts"`
	ComponentScores map[string]float64    `json:"component_scores"`
	Bonus           RequirementBonus      `json:"bonus"`
	Industry        IndustrySummary       `json:"industry"`
	Degraded        []string              `json:"degraded,omitempty"`
}
