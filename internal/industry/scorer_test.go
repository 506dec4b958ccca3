package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/types"
)

var testCatalog = catalog.MustLoad()

func TestClassify(t *testing.T) {
	s := NewScorer(testCatalog)

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"nonprofit", "We manage donor relationships and fundraising campaigns for a charity with a large volunteer community.", "nonprofit"},
		{"healthcare", "Patient care in a hospital clinical setting", "healthcare"},
		{"empty defaults to technology", "", DefaultIndustry},
		{"no hits defaults to technology", "Lorem ipsum dolor sit amet", DefaultIndustry},
		{"tie defaults to technology", "bank school", DefaultIndustry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Classify(tt.text))
		})
	}
}

func TestVotes(t *testing.T) {
	s := NewScorer(testCatalog)

	votes := s.Votes("Patient care in a hospital clinical setting")

	assert.Len(t, votes, len(testCatalog.IndustryLabels()))
	assert.Equal(t, 9.0, votes["healthcare"])
	assert.Equal(t, 0.0, votes["finance"])
}

func TestAssess_TechnologyToNonprofit(t *testing.T) {
	s := NewScorer(testCatalog)

	got := s.Assess(types.IndustryInput{
		Experience:      []string{"Led fundraising analytics for a community nonprofit", "Built dashboards for donor reporting"},
		Skills:          []string{"communication", "python", "fundraising", "clinical knowledge"},
		JobDescription:  "Nonprofit seeking a fundraising manager to grow donor and volunteer programs",
		YearsExperience: 10,
		CurrentIndustry: "Software",
	})

	assert.Equal(t, "technology", got.SourceIndustry)
	assert.Equal(t, "nonprofit", got.TargetIndustry)
	assert.Equal(t, 0.7, got.TransitionDifficulty)
	assert.Equal(t, types.TransitionModerate, got.TransitionCategory)
	assert.Equal(t, 74.7, got.DomainOverlapScore)
	assert.Equal(t, 57.5, got.SkillTransferabilityScore)
	assert.Equal(t, 44.0, got.ExperienceRelevanceScore)
	assert.InDelta(t, 64.8, got.OverallFitScore, 0.1)
	assert.Equal(t, []string{"mission-driven", "collaborative", "resourceful"}, got.KeyGaps)
	assert.Empty(t, got.TransferableAdvantages)
}

func TestAssess_SharedVocabulary(t *testing.T) {
	s := NewScorer(testCatalog)

	got := s.Assess(types.IndustryInput{
		JobDescription:  "Investment bank trading desk, portfolio and credit analysis",
		CurrentIndustry: "consulting",
	})

	assert.Equal(t, "finance", got.TargetIndustry)
	assert.Equal(t, 0.75, got.TransitionDifficulty)
	assert.Equal(t, []string{"regulated", "risk-aware", "precise"}, got.KeyGaps)
	assert.Equal(t, []string{"results-oriented", "excel"}, got.TransferableAdvantages)
}

func TestAssess_TransitionIsAsymmetric(t *testing.T) {
	s := NewScorer(testCatalog)

	toNonprofit := s.Assess(types.IndustryInput{JobDescription: "charity fundraising donor", CurrentIndustry: "technology"})
	toTechnology := s.Assess(types.IndustryInput{JobDescription: "saas platform cloud api", CurrentIndustry: "nonprofit"})

	assert.Equal(t, "nonprofit", toNonprofit.TargetIndustry)
	assert.Equal(t, "technology", toTechnology.TargetIndustry)
	assert.NotEqual(t, toNonprofit.TransitionDifficulty, toTechnology.TransitionDifficulty)
	assert.Equal(t, 0.7, toNonprofit.TransitionDifficulty)
	assert.Equal(t, 0.4, toTechnology.TransitionDifficulty)
	assert.Equal(t, types.TransitionDifficult, toTechnology.TransitionCategory)
}

func TestAssess_UnknownCurrentIndustryIsClassified(t *testing.T) {
	s := NewScorer(testCatalog)

	got := s.Assess(types.IndustryInput{
		Experience:      []string{"Taught curriculum to university students in the classroom"},
		JobDescription:  "school teacher",
		CurrentIndustry: "Aerospace",
	})

	assert.Equal(t, "education", got.SourceIndustry)
	assert.Equal(t, "education", got.TargetIndustry)
	assert.Equal(t, 1.0, got.TransitionDifficulty)
}

func TestAssess_EmptyInput(t *testing.T) {
	s := NewScorer(testCatalog)

	got := s.Assess(types.IndustryInput{})

	assert.Equal(t, DefaultIndustry, got.SourceIndustry)
	assert.Equal(t, DefaultIndustry, got.TargetIndustry)
	assert.Equal(t, 1.0, got.TransitionDifficulty)
	assert.Equal(t, 0.0, got.DomainOverlapScore)
	assert.Equal(t, 50.0, got.SkillTransferabilityScore)
	assert.Equal(t, 0.0, got.ExperienceRelevanceScore)
	assert.Equal(t, 50.0, got.OverallFitScore)
	assert.Empty(t, got.KeyGaps)
	assert.Len(t, got.TransferableAdvantages, 3)
}

func TestAssess_ScoresBounded(t *testing.T) {
	s := NewScorer(testCatalog)
	experience := []string{"software platform saas cloud api engineering startup product devops data programming system design agile testing automation"}

	got := s.Assess(types.IndustryInput{
		Experience:      experience,
		Skills:          []string{"leadership"},
		JobDescription:  "software platform",
		YearsExperience: 45,
	})

	assert.Equal(t, 100.0, got.DomainOverlapScore)
	assert.Equal(t, 100.0, got.ExperienceRelevanceScore)
	assert.Equal(t, 100.0, got.SkillTransferabilityScore)
	assert.Equal(t, 100.0, got.OverallFitScore)
}

func TestNeutralAlignment(t *testing.T) {
	n := NeutralAlignment()

	assert.Equal(t, DefaultIndustry, n.SourceIndustry)
	assert.Equal(t, DefaultIndustry, n.TargetIndustry)
	assert.Equal(t, 1.0, n.TransitionDifficulty)
	assert.Equal(t, 70.0, n.OverallFitScore)
	assert.Equal(t, types.TransitionNatural, n.TransitionCategory)
	assert.NotNil(t, n.KeyGaps)
}

func TestOverallFit(t *testing.T) {
	assert.Equal(t, 40.0, OverallFit(1.0, 0, 0, 0))
	assert.Equal(t, 60.0, OverallFit(0, 100, 100, 100))
	assert.Equal(t, 0.0, OverallFit(0, 0, 0, 0))
}
