package scoring

import (
	"math"

	"github.com/jonathan/fit-scorer/internal/industry"
	"github.com/jonathan/fit-scorer/internal/types"
)

// Category one weights, in points per unit of match rate
const (
	technicalPointsWeight = 20.0
	domainPointsWeight    = 5.0
	softPointsWeight      = 15.0
)

// Category two group weights, as fractions of each group's 0-100 average
const (
	coreCompetencyWeight      = 0.25
	experienceSeniorityWeight = 0.20
	potentialAbilityWeight    = 0.10
	companyFitWeight          = 0.05
)

// Status labels
const (
	StatusExcellent = "Excellent fit"
	StatusGood      = "Good fit"
	StatusModerate  = "Moderate fit"
	StatusPoor      = "Poor fit"
)

var recommendations = map[string]string{
	StatusExcellent: "Strong match. Apply with confidence and lead with your most relevant achievements.",
	StatusGood:      "Good match. Apply and address the few missing requirements in your cover letter.",
	StatusModerate:  "Partial match. Tailor your CV to the role's required skills before applying.",
	StatusPoor:      "Weak match. Build the missing core skills or target roles closer to your experience.",
}

// AggregateInput collects the stage outputs the aggregator combines
type AggregateInput struct {
	Skills            types.SkillAnalyses
	Industry          *types.IndustryAlignment
	ComponentScores   map[string]float64
	Bonus             types.RequirementBonus
	TotalRequirements int
}

// Aggregate combines match rates, component metrics and bonus points into the final breakdown.
// It never fails: missing inputs are replaced by neutral defaults.
func Aggregate(in AggregateInput) types.ATSScoreBreakdown {
	alignment := in.Industry
	if alignment == nil {
		neutral := industry.NeutralAlignment()
		alignment = &neutral
	}
	components := ResolveComponents(in.ComponentScores, alignment)

	out := types.ATSScoreBreakdown{
		MatchRates:      make(map[types.SkillKind]float64, len(types.SkillKinds)),
		MissingCounts:   make(map[types.SkillKind]int, len(types.SkillKinds)),
		ComponentScores: components,
		Bonus:           in.Bonus,
		Industry: types.IndustrySummary{
			SourceIndustry:     alignment.SourceIndustry,
			TargetIndustry:     alignment.TargetIndustry,
			TransitionCategory: alignment.TransitionCategory,
			OverallFitScore:    alignment.OverallFitScore,
		},
	}
	for _, kind := range types.SkillKinds {
		a := in.Skills.Get(kind)
		out.MatchRates[kind] = clamp(a.MatchRate, 0, 1)
		out.MissingCounts[kind] = len(a.Missing)
	}

	if in.TotalRequirements > 0 {
		out.CategoryOne = categoryOne(out.MatchRates)
		out.CategoryTwo = categoryTwo(components)
	}

	out.PreBonusScore = out.CategoryOne.Total + out.CategoryTwo.Total
	out.BonusPoints = in.Bonus.TotalBonus
	out.FinalScore = FinalScore(out.PreBonusScore, out.BonusPoints)
	out.CategoryStatus = Status(out.FinalScore)
	out.Recommendation = Recommendation(out.CategoryStatus)
	return out
}

func categoryOne(rates map[types.SkillKind]float64) types.CategoryOne {
	c := types.CategoryOne{
		TechnicalPoints: rates[types.SkillTechnical] * technicalPointsWeight,
		DomainPoints:    rates[types.SkillDomain] * domainPointsWeight,
		SoftPoints:      rates[types.SkillSoft] * softPointsWeight,
	}
	c.Total = c.TechnicalPoints + c.DomainPoints + c.SoftPoints
	return c
}

func categoryTwo(components map[string]float64) types.CategoryTwo {
	potential := make(map[string]float64, len(PotentialAbilityMetrics))
	for _, name := range PotentialAbilityMetrics {
		potential[name] = components[name]
	}
	potential[MetricProblemComplexity] *= 100 / problemComplexityScale

	c := types.CategoryTwo{
		CoreCompetency:      average(components, CoreCompetencyMetrics) * coreCompetencyWeight,
		ExperienceSeniority: average(components, ExperienceSeniorityMetrics) * experienceSeniorityWeight,
		PotentialAbility:    average(potential, PotentialAbilityMetrics) * potentialAbilityWeight,
		CompanyFit:          average(components, CompanyFitMetrics) * companyFitWeight,
	}
	c.Total = c.CoreCompetency + c.ExperienceSeniority + c.PotentialAbility + c.CompanyFit
	return c
}

func average(values map[string]float64, names []string) float64 {
	if len(names) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range names {
		sum += values[n]
	}
	return sum / float64(len(names))
}

// FinalScore applies the bonus to the pre-bonus score, rounds to one decimal and bounds the
// result to [0, 100]
func FinalScore(preBonus, bonus float64) float64 {
	total := math.Round((preBonus+bonus)*10) / 10
	if math.IsNaN(total) {
		return 0
	}
	return clamp(total, 0, 100)
}

// Status maps a final score onto its fit label
func Status(score float64) string {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 75:
		return StatusGood
	case score >= 60:
		return StatusModerate
	default:
		return StatusPoor
	}
}

// Recommendation returns the fixed advice paired with a status label
func Recommendation(status string) string {
	return recommendations[status]
}
