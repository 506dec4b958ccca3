// Package types provides type definitions for structured data used throughout the fit scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile is the structured view of a CV consumed by the scoring stages
type CandidateProfile struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	DomainSkills    []string `json:"domain_skills"`
	ExperienceLines []string `json:"experience_lines"`
	YearsExperience int      `json:"years_experience"`
	EducationLevels []string `json:"education_levels,omitempty"`
}

// Skills returns the candidate skills grouped by skill kind
func (c *CandidateProfile) Skills() SkillSets {
	if c == nil {
		return SkillSets{}
	}
	return SkillSets{
		Technical: c.TechnicalSkills,
		Soft:      c.SoftSkills,
		Domain:    c.DomainSkills,
	}
}

// AllSkills returns every candidate skill in technical, soft, domain order
func (c *CandidateProfile) AllSkills() []string {
	if c == nil {
		return nil
	}
	all := make([]string, 0, len(c.TechnicalSkills)+len(c.SoftSkills)+len(c.DomainSkills))
	all = append(all, c.TechnicalSkills...)
	all = append(all, c.SoftSkills...)
	all = append(all, c.DomainSkills...)
	return all
}
