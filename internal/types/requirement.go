// Package types provides type definitions for structured data used throughout the fit scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Kind classifies what a requirement asks for
type Kind string

// Requirement kinds
const (
	KindTechnicalSkill  Kind = "technical_skill"
	KindSoftSkill       Kind = "soft_skill"
	KindDomainKnowledge Kind = "domain_knowledge"
	KindTool            Kind = "tool"
	KindCertification   Kind = "certification"
	KindEducation       Kind = "education"
	KindExperienceYears Kind = "experience_years"
)

// Valid reports whether k is one of the known requirement kinds
func (k Kind) Valid() bool {
	switch k {
	case KindTechnicalSkill, KindSoftSkill, KindDomainKnowledge, KindTool,
		KindCertification, KindEducation, KindExperienceYears:
		return true
	}
	return false
}

// SkillKind returns the matcher bucket a requirement kind is scored in.
// Education and experience requirements are not skill matched and return "".
func (k Kind) SkillKind() SkillKind {
	switch k {
	case KindTechnicalSkill, KindTool, KindCertification:
		return SkillTechnical
	case KindSoftSkill:
		return SkillSoft
	case KindDomainKnowledge:
		return SkillDomain
	default:
		return ""
	}
}

// Priority is how strongly a job description asks for a requirement
type Priority string

// Requirement priorities
const (
	PriorityRequired   Priority = "required"
	PriorityPreferred  Priority = "preferred"
	PriorityNiceToHave Priority = "nice_to_have"
)

// Rank orders priorities; higher is stronger
func (p Priority) Rank() int {
	switch p {
	case PriorityRequired:
		return 3
	case PriorityPreferred:
		return 2
	case PriorityNiceToHave:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// DefaultPriorityWeights returns the multiplier applied to each priority tier
func DefaultPriorityWeights() map[Priority]float64 {
	return map[Priority]float64{
		PriorityRequired:   1.0,
		PriorityPreferred:  0.7,
		PriorityNiceToHave: 0.3,
	}
}

// Requirement represents one obligation or preference parsed from a job description
type Requirement struct {
	Text          string   `json:"text"`
	Kind          Kind     `json:"kind"`
	Priority      Priority `json:"priority"`
	Category      string   `json:"category"`
	YearsRequired *int     `json:"years_required,omitempty"`
}

// RequirementsExtraction is the complete output of requirement parsing for one job description
type RequirementsExtraction struct {
	Required   []Requirement `json:"required"`
	Preferred  []Requirement `json:"preferred"`
	NiceToHave []Requirement `json:"nice_to_have"`

	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	DomainKeywords    []string `json:"domain_keywords"`
	ToolsAndPlatforms []string `json:"tools_and_platforms"`
	Certifications    []string `json:"certifications"`
	Education         []string `json:"education"`

	YearsExperienceRequired int                  `json:"years_experience_required"`
	TotalRequirements       int                  `json:"total_requirements"`
	PriorityWeights         map[Priority]float64 `json:"priority_weights"`
}

// NewEmptyExtraction returns the degenerate but valid extraction used when nothing could be parsed
func NewEmptyExtraction() *RequirementsExtraction {
	return &RequirementsExtraction{
		Required:          []Requirement{},
		Preferred:         []Requirement{},
		NiceToHave:        []Requirement{},
		TechnicalSkills:   []string{},
		SoftSkills:        []string{},
		DomainKeywords:    []string{},
		ToolsAndPlatforms: []string{},
		Certifications:    []string{},
		Education:         []string{},
		PriorityWeights:   DefaultPriorityWeights(),
	}
}

// IsEmpty reports whether no requirement was extracted
func (e *RequirementsExtraction) IsEmpty() bool {
	return e == nil || e.TotalRequirements == 0
}

// ByPriority returns the requirements in the given tier
func (e *RequirementsExtraction) ByPriority(p Priority) []Requirement {
	if e == nil {
		return nil
	}
	switch p {
	case PriorityRequired:
		return e.Required
	case PriorityPreferred:
		return e.Preferred
	case PriorityNiceToHave:
		return e.NiceToHave
	default:
		return nil
	}
}

// All returns every requirement, strongest tier first
func (e *RequirementsExtraction) All() []Requirement {
	if e == nil {
		return nil
	}
	all := make([]Requirement, 0, len(e.Required)+len(e.Preferred)+len(e.NiceToHave))
	all = append(all, e.Required...)
	all = append(all, e.Preferred...)
	all = append(all, e.NiceToHave...)
	return all
}

// RequirementLists groups the extracted strings by the skill kind they are matched under.
// Technical covers technical skills, tools and certifications.
func (e *RequirementsExtraction) RequirementLists() SkillSets {
	if e == nil {
		return SkillSets{}
	}
	technical := make([]string, 0, len(e.TechnicalSkills)+len(e.ToolsAndPlatforms)+len(e.Certifications))
	technical = append(technical, e.TechnicalSkills...)
	technical = append(technical, e.ToolsAndPlatforms...)
	technical = append(technical, e.Certifications...)
	return SkillSets{
		Technical: DedupeStrings(technical),
		Soft:      DedupeStrings(e.SoftSkills),
		Domain:    DedupeStrings(e.DomainKeywords),
	}
}

// SkillSets holds skill strings grouped by skill kind
type SkillSets struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Domain    []string `json:"domain"`
}

// Get returns the list for a skill kind
func (s SkillSets) Get(kind SkillKind) []string {
	switch kind {
	case SkillTechnical:
		return s.Technical
	case SkillSoft:
		return s.Soft
	case SkillDomain:
		return s.Domain
	default:
		return nil
	}
}

// DedupeStrings removes case-insensitive duplicates and blanks, preserving first-seen order
func DedupeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		key := strings.ToLower(trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
