package catalog

import "github.com/jonathan/fit-scorer/internal/types"

// Term is one canonical keyword with the literal patterns that detect it
type Term struct {
	Name     string   `json:"name" validate:"required"`
	Patterns []string `json:"patterns,omitempty" validate:"dive,required"`
	Rank     int      `json:"rank,omitempty" validate:"gte=0"`
}

// KeywordCategory groups terms sharing a requirement kind
type KeywordCategory struct {
	Category string     `json:"category" validate:"required"`
	Kind     types.Kind `json:"kind" validate:"required"`
	Terms    []Term     `json:"terms" validate:"required,min=1,dive"`
}

type keywordsFile struct {
	Categories []KeywordCategory `json:"categories" validate:"required,min=1,dive"`
}

// Section describes a recognised document section
type Section struct {
	Name     string         `json:"name" validate:"required"`
	Priority types.Priority `json:"priority,omitempty"`
	Extract  bool           `json:"extract"`
	Headers  []string       `json:"headers" validate:"required,min=1,dive,required"`
}

type sectionsFile struct {
	JobSections []Section `json:"job_sections" validate:"required,min=1,dive"`
	CVSections  []Section `json:"cv_sections" validate:"required,min=1,dive"`
}

// Indicators holds the phrases that signal a fragment's priority
type Indicators struct {
	Required   []string `json:"required" validate:"required,min=1,dive,required"`
	Preferred  []string `json:"preferred" validate:"required,min=1,dive,required"`
	NiceToHave []string `json:"nice_to_have" validate:"required,min=1,dive,required"`
	Negations  []string `json:"negations" validate:"dive,required"`
}

type equivalencesFile struct {
	Groups [][]string `json:"groups" validate:"required,min=1,dive,min=2,dive,required"`
}

type domainClustersFile struct {
	Clusters map[string][]string `json:"clusters" validate:"required,min=1,dive,keys,required,endkeys,min=1,dive,required"`
}

// Transfer records which skills make a target skill learnable and how quickly
type Transfer struct {
	Target       string   `json:"target" validate:"required"`
	Sources      []string `json:"sources" validate:"required,min=1,dive,required"`
	Learnability float64  `json:"learnability" validate:"gt=0,lt=1"`
}

type transferableFile struct {
	Skills []Transfer `json:"skills" validate:"required,min=1,dive"`
}

// IndustryCluster defines the vocabulary used to recognise an industry
type IndustryCluster struct {
	Label          string   `json:"label" validate:"required"`
	Aliases        []string `json:"aliases" validate:"dive,required"`
	DomainKeywords []string `json:"domain_keywords" validate:"required,min=1,dive,required"`
	CoreSkills     []string `json:"core_skills" validate:"required,min=1,dive,required"`
	Culture        []string `json:"culture" validate:"required,min=1,dive,required"`
}

// Tiers lists skills by how well they carry across industries
type Tiers struct {
	High   []string `json:"high" validate:"required,min=1,dive,required"`
	Medium []string `json:"medium" validate:"required,min=1,dive,required"`
	Low    []string `json:"low" validate:"required,min=1,dive,required"`
}

type industriesFile struct {
	Clusters        []IndustryCluster             `json:"clusters" validate:"required,min=1,dive"`
	Transitions     map[string]map[string]float64 `json:"transitions" validate:"required"`
	Transferability Tiers                         `json:"transferability"`
}
