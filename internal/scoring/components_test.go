package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/types"
)

func TestResolveComponents(t *testing.T) {
	t.Run("defaults fill every metric", func(t *testing.T) {
		got := ResolveComponents(nil, nil)
		assert.Equal(t, DefaultComponentScores(), got)
	})

	t.Run("supplied values are clamped and unknown names dropped", func(t *testing.T) {
		got := ResolveComponents(map[string]float64{
			MetricTechnicalDepth:    140,
			MetricSkillRelevance:    -3,
			MetricProblemComplexity: 25,
			"charisma":              90,
		}, nil)
		assert.Equal(t, 100.0, got[MetricTechnicalDepth])
		assert.Equal(t, 0.0, got[MetricSkillRelevance])
		assert.Equal(t, 10.0, got[MetricProblemComplexity])
		assert.NotContains(t, got, "charisma")
	})

	t.Run("industry alignment overrides company fit", func(t *testing.T) {
		got := ResolveComponents(map[string]float64{MetricIndustryFit: 5}, &types.IndustryAlignment{
			DomainOverlapScore: 10, SkillTransferabilityScore: 20,
			ExperienceRelevanceScore: 30, OverallFitScore: 40,
		})
		assert.Equal(t, 10.0, got[MetricDomainOverlap])
		assert.Equal(t, 20.0, got[MetricSkillTransfer])
		assert.Equal(t, 30.0, got[MetricExperienceRelevance])
		assert.Equal(t, 40.0, got[MetricIndustryFit])
	})
}

func TestHeuristicProvider_Components(t *testing.T) {
	provider := NewHeuristicProvider(catalog.MustLoad())

	analyses := types.NewEmptyAnalyses()
	analyses.Technical = types.SkillAnalysis{
		Matched: []types.SkillMatch{
			{CandidateSkill: "python", RequirementSkill: "python", MatchType: types.MatchExact, Confidence: 1},
			{CandidateSkill: "excel", RequirementSkill: "sql", MatchType: types.MatchTransferable, Confidence: 0.6},
		},
		Transferable: []types.SkillMatch{
			{CandidateSkill: "excel", RequirementSkill: "sql", MatchType: types.MatchTransferable, Confidence: 0.6},
		},
		Missing:                []string{},
		MatchRate:              1,
		ConfidenceWeightedRate: 0.8,
		TotalRequirements:      2,
	}
	extraction := &types.RequirementsExtraction{
		Required: []types.Requirement{
			{Text: "Python", Kind: types.KindTechnicalSkill, Priority: types.PriorityRequired},
		},
		Preferred: []types.Requirement{
			{Text: "SQL", Kind: types.KindTechnicalSkill, Priority: types.PriorityPreferred},
		},
		YearsExperienceRequired: 4,
		PriorityWeights:         types.DefaultPriorityWeights(),
	}
	profile := &types.CandidateProfile{
		TechnicalSkills: []string{"python", "excel"},
		SoftSkills:      []string{"mentoring"},
		YearsExperience: 2,
		ExperienceLines: []string{
			"Senior Analyst, Acme (2019 - present)",
			"Led a team of 4 analysts",
			"Cut reporting time by 30%",
			"Maintained dashboards",
		},
	}

	got, err := provider.Components(t.Context(), ComponentInput{
		Profile:    profile,
		Extraction: extraction,
		Analyses:   analyses,
	})
	require.NoError(t, err)

	assert.InDelta(t, 52.0, got[MetricTechnicalDepth], 1e-9)
	// python weight 1.0 at confidence 1, sql weight 0.7 at confidence 0.6
	assert.InDelta(t, (1.0+0.7*0.6)/1.7*100, got[MetricSkillRelevance], 1e-9)
	assert.InDelta(t, 80.0, got[MetricToolProficiency], 1e-9)
	assert.NotContains(t, got, MetricDomainExpertise)
	assert.InDelta(t, 50.0, got[MetricExperienceAlignment], 1e-9)
	assert.InDelta(t, 50.0, got[MetricSeniorityMatch], 1e-9)
	assert.InDelta(t, 70.0, got[MetricLeadershipReadiness], 1e-9)
	assert.InDelta(t, 65.0, got[MetricRoleProgression], 1e-9)
	assert.InDelta(t, 70.0, got[MetricAchievementImpact], 1e-9)
	assert.InDelta(t, 80.0, got[MetricLearningAgility], 1e-9)
	assert.NotContains(t, got, MetricAdaptability)
}

func TestHeuristicProvider_EmptyInput(t *testing.T) {
	provider := NewHeuristicProvider(catalog.MustLoad())

	got, err := provider.Components(t.Context(), ComponentInput{})
	require.NoError(t, err)
	assert.Empty(t, got)

	resolved := ResolveComponents(got, nil)
	assert.Equal(t, DefaultComponentScores(), resolved)
}
