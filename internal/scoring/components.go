package scoring

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/skills"
	"github.com/jonathan/fit-scorer/internal/types"
)

// Component metric names
const (
	MetricTechnicalDepth      = "technical_depth"
	MetricSkillRelevance      = "skill_relevance"
	MetricToolProficiency     = "tool_proficiency"
	MetricDomainExpertise     = "domain_expertise"
	MetricExperienceAlignment = "experience_alignment"
	MetricSeniorityMatch      = "seniority_match"
	MetricLeadershipReadiness = "leadership_readiness"
	MetricRoleProgression     = "role_progression"
	MetricAchievementImpact   = "achievement_impact"
	MetricGrowthTrajectory    = "growth_trajectory"
	MetricLearningAgility     = "learning_agility"
	MetricAdaptability        = "adaptability"
	MetricProblemComplexity   = "problem_complexity"
	MetricDomainOverlap       = "domain_overlap"
	MetricSkillTransfer       = "skill_transferability"
	MetricExperienceRelevance = "experience_relevance"
	MetricIndustryFit         = "industry_fit"
)

// problemComplexityScale is the upper bound of problem_complexity, which is scored 0-10
const problemComplexityScale = 10.0

// Component groups and their share of the 60 component points
var (
	CoreCompetencyMetrics      = []string{MetricTechnicalDepth, MetricSkillRelevance, MetricToolProficiency, MetricDomainExpertise}
	ExperienceSeniorityMetrics = []string{MetricExperienceAlignment, MetricSeniorityMatch, MetricLeadershipReadiness, MetricRoleProgression, MetricAchievementImpact}
	PotentialAbilityMetrics    = []string{MetricGrowthTrajectory, MetricLearningAgility, MetricAdaptability, MetricProblemComplexity}
	CompanyFitMetrics          = []string{MetricDomainOverlap, MetricSkillTransfer, MetricExperienceRelevance, MetricIndustryFit}
)

// DefaultComponentScores are the neutral values used for metrics nobody supplied
func DefaultComponentScores() map[string]float64 {
	return map[string]float64{
		MetricTechnicalDepth:      70,
		MetricSkillRelevance:      70,
		MetricToolProficiency:     65,
		MetricDomainExpertise:     60,
		MetricExperienceAlignment: 70,
		MetricSeniorityMatch:      65,
		MetricLeadershipReadiness: 60,
		MetricRoleProgression:     65,
		MetricAchievementImpact:   60,
		MetricGrowthTrajectory:    70,
		MetricLearningAgility:     75,
		MetricAdaptability:        70,
		MetricProblemComplexity:   6,
		MetricDomainOverlap:       50,
		MetricSkillTransfer:       50,
		MetricExperienceRelevance: 50,
		MetricIndustryFit:         50,
	}
}

// ResolveComponents returns every named metric: supplied values clamped to range, the
// company-fit metrics taken from the industry alignment when present, and defaults elsewhere.
func ResolveComponents(supplied map[string]float64, industry *types.IndustryAlignment) map[string]float64 {
	out := DefaultComponentScores()
	for name, v := range supplied {
		if _, known := out[name]; !known || math.IsNaN(v) {
			continue
		}
		out[name] = v
	}
	if industry != nil {
		out[MetricDomainOverlap] = industry.DomainOverlapScore
		out[MetricSkillTransfer] = industry.SkillTransferabilityScore
		out[MetricExperienceRelevance] = industry.ExperienceRelevanceScore
		out[MetricIndustryFit] = industry.OverallFitScore
	}
	for name, v := range out {
		upper := 100.0
		if name == MetricProblemComplexity {
			upper = problemComplexityScale
		}
		out[name] = clamp(v, 0, upper)
	}
	return out
}

// ComponentInput is everything a component provider may inspect
type ComponentInput struct {
	Profile    *types.CandidateProfile
	Extraction *types.RequirementsExtraction
	Analyses   types.SkillAnalyses
	Industry   *types.IndustryAlignment
}

// ComponentProvider supplies auxiliary component metrics. Providers return only the metrics
// they can judge; the rest fall back to defaults.
type ComponentProvider interface {
	Components(ctx context.Context, in ComponentInput) (map[string]float64, error)
}

// HeuristicProvider derives component metrics from the parsed CV and match results with fixed rules
type HeuristicProvider struct {
	cat *catalog.Catalog
}

// NewHeuristicProvider creates the rule-based component provider
func NewHeuristicProvider(cat *catalog.Catalog) *HeuristicProvider {
	return &HeuristicProvider{cat: cat}
}

var (
	leadershipVerbs = []string{"led", "lead", "managed", "mentored", "supervised", "directed", "headed", "coached", "oversaw"}
	seniorTitles    = []string{"senior", "lead", "principal", "staff", "manager", "head", "director", "vp", "chief"}
	quantified      = regexp.MustCompile(`(?i)\d+\s*%|[$€£]\s*\d|\b\d+(?:\.\d+)?\s*[xkm]\b|\b\d+\+?\s+(?:people|users|clients|customers|engineers|analysts|projects|reports|members|stakeholders)\b`)
)

// Components implements ComponentProvider
func (h *HeuristicProvider) Components(_ context.Context, in ComponentInput) (map[string]float64, error) {
	out := make(map[string]float64)
	profile := in.Profile
	if profile == nil {
		profile = &types.CandidateProfile{}
	}

	// breadth of the technical toolkit, saturating at 10 skills
	if n := len(profile.TechnicalSkills); n > 0 {
		out[MetricTechnicalDepth] = 40 + 60*math.Min(float64(n), 10)/10
	}

	if targets := skills.BuildTargets(in.Extraction); len(targets) > 0 {
		out[MetricSkillRelevance] = weightedTargetCoverage(targets, in.Analyses) * 100
	}
	if in.Analyses.Technical.TotalRequirements > 0 {
		out[MetricToolProficiency] = in.Analyses.Technical.ConfidenceWeightedRate * 100
	}
	if in.Analyses.Domain.TotalRequirements > 0 {
		out[MetricDomainExpertise] = in.Analyses.Domain.ConfidenceWeightedRate * 100
	}

	years := profile.YearsExperience
	if in.Extraction != nil && in.Extraction.YearsExperienceRequired > 0 {
		required := float64(in.Extraction.YearsExperienceRequired)
		ratio := float64(years) / required
		out[MetricExperienceAlignment] = math.Min(ratio, 1) * 100
		switch {
		case ratio > 3:
			// far above the ask usually means a different level of role
			out[MetricSeniorityMatch] = 70
		case ratio >= 1:
			out[MetricSeniorityMatch] = 100
		default:
			out[MetricSeniorityMatch] = ratio * 100
		}
	}

	if lines := profile.ExperienceLines; len(lines) > 0 {
		lead := countLinesWith(lines, leadershipVerbs)
		if containsSkill(profile.SoftSkills, "leadership") || containsSkill(profile.SoftSkills, "mentoring") {
			lead++
		}
		out[MetricLeadershipReadiness] = math.Min(40+15*float64(lead), 100)
		out[MetricRoleProgression] = math.Min(50+15*float64(countLinesWith(lines, seniorTitles)), 100)

		withNumbers := 0
		for _, l := range lines {
			if quantified.MatchString(l) {
				withNumbers++
			}
		}
		out[MetricAchievementImpact] = 40 + 60*float64(withNumbers)/float64(len(lines))
	}

	if transferable := allTransferable(in.Analyses); len(transferable) > 0 {
		total := 0.0
		for _, m := range transferable {
			total += m.Confidence
		}
		out[MetricLearningAgility] = 50 + 50*total/float64(len(transferable))
	}
	// breadth across domain clusters
	clusters := make(map[string]bool)
	for _, d := range profile.DomainSkills {
		for _, c := range h.cat.ClustersOf(d) {
			clusters[c] = true
		}
	}
	if len(clusters) > 0 {
		out[MetricAdaptability] = math.Min(60+10*float64(len(clusters)), 90)
	}
	if containsSkill(profile.SoftSkills, "adaptability") {
		out[MetricAdaptability] = math.Max(out[MetricAdaptability], 85)
	}
	return out, nil
}

// weightedTargetCoverage is the share of target weight the candidate matched, each target
// counted at the confidence of its best match
func weightedTargetCoverage(targets []skills.Target, analyses types.SkillAnalyses) float64 {
	best := make(map[types.SkillKind]map[string]float64)
	for _, kind := range types.SkillKinds {
		m := make(map[string]float64)
		for _, match := range analyses.Get(kind).Matched {
			key := strings.ToLower(match.RequirementSkill)
			m[key] = math.Max(m[key], match.Confidence)
		}
		best[kind] = m
	}

	total, matched := 0.0, 0.0
	for _, t := range targets {
		total += t.Weight
		matched += t.Weight * best[t.Kind][strings.ToLower(t.Name)]
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

func allTransferable(a types.SkillAnalyses) []types.SkillMatch {
	var out []types.SkillMatch
	for _, kind := range types.SkillKinds {
		out = append(out, a.Get(kind).Transferable...)
	}
	return out
}

func countLinesWith(lines []string, words []string) int {
	n := 0
	for _, l := range lines {
		for _, w := range words {
			if catalog.ContainsPhrase(l, w) {
				n++
				break
			}
		}
	}
	return n
}

func containsSkill(list []string, skill string) bool {
	for _, s := range list {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
