// Package industry estimates how well a candidate's background transfers into a job's industry.
package industry

import (
	"math"
	"strings"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/types"
)

// DefaultIndustry is used when classification has no clear winner
const DefaultIndustry = "technology"

// Keyword vote weights
const (
	domainKeywordVote = 2.0
	coreSkillVote     = 1.0
	cultureVote       = 0.5
)

// Sub-score tuning
const (
	unknownTransition   = 0.5
	domainSaturation    = 5
	skillSaturation     = 3
	domainOverlapShare  = 0.6
	maxYearsBonus       = 0.2
	yearsBonusHorizon   = 20
	neutralSubScore     = 50.0
	maxListedTerms      = 3
	transitionScale     = 40.0
	domainOverlapWeight = 0.25
	transferWeight      = 0.20
	relevanceWeight     = 0.15
)

// Scorer assesses industry alignment from the catalog's industry clusters
type Scorer struct {
	cat *catalog.Catalog
}

// NewScorer creates a scorer
func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{cat: cat}
}

// Classify returns the industry whose vocabulary best matches text.
// A tie for the top score, or no hits at all, returns DefaultIndustry.
func (s *Scorer) Classify(text string) string {
	best := DefaultIndustry
	bestScore := 0.0
	tied := false
	for _, label := range s.cat.IndustryLabels() {
		score := s.vote(label, text)
		switch {
		case score > bestScore:
			best, bestScore, tied = label, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if tied || bestScore == 0 {
		return DefaultIndustry
	}
	return best
}

// Votes returns every industry's keyword vote for text
func (s *Scorer) Votes(text string) map[string]float64 {
	out := make(map[string]float64)
	for _, label := range s.cat.IndustryLabels() {
		out[label] = s.vote(label, text)
	}
	return out
}

func (s *Scorer) vote(label, text string) float64 {
	cluster, ok := s.cat.Industry(label)
	if !ok {
		return 0
	}
	return float64(countPhrases(text, cluster.DomainKeywords))*domainKeywordVote +
		float64(countPhrases(text, cluster.CoreSkills))*coreSkillVote +
		float64(countPhrases(text, cluster.Culture))*cultureVote
}

// Assess scores how well the candidate described by in transfers into the job's industry
func (s *Scorer) Assess(in types.IndustryInput) types.IndustryAlignment {
	experience := strings.Join(in.Experience, "\n")
	skills := strings.Join(in.Skills, "\n")

	target := s.Classify(in.JobDescription + "\n" + in.CompanyInfo)
	source, ok := s.cat.ResolveIndustry(in.CurrentIndustry)
	if !ok {
		source = s.Classify(experience + "\n" + skills)
	}

	difficulty, ok := s.cat.TransitionDifficulty(source, target)
	if !ok {
		difficulty = unknownTransition
	}

	targetCluster, _ := s.cat.Industry(target)
	sourceCluster, _ := s.cat.Industry(source)

	overlap := round1(s.domainOverlap(targetCluster, experience, skills))
	transfer := round1(s.skillTransferability(in.Skills))
	relevance := round1(experienceRelevance(targetCluster, experience, in.YearsExperience))

	gaps, advantages := compareVocabulary(targetCluster, sourceCluster)
	return types.IndustryAlignment{
		SourceIndustry:            source,
		TargetIndustry:            target,
		TransitionDifficulty:      difficulty,
		DomainOverlapScore:        overlap,
		SkillTransferabilityScore: transfer,
		ExperienceRelevanceScore:  relevance,
		OverallFitScore:           OverallFit(difficulty, overlap, transfer, relevance),
		TransitionCategory:        types.CategorizeTransition(difficulty),
		KeyGaps:                   gaps,
		TransferableAdvantages:    advantages,
	}
}

// OverallFit combines the alignment sub-scores. The transition difficulty is on a 0-1
// scale and contributes up to 40 points; the other scores are 0-100 and weighted directly.
func OverallFit(difficulty, overlap, transfer, relevance float64) float64 {
	return round1(difficulty*transitionScale +
		overlap*domainOverlapWeight +
		transfer*transferWeight +
		relevance*relevanceWeight)
}

// domainOverlap weights target domain-term hits 60/40 against target skill-term hits.
// Each side saturates, so a handful of hits already scores full marks.
func (s *Scorer) domainOverlap(target catalog.IndustryCluster, experience, skills string) float64 {
	domainHits := countPhrases(experience, target.DomainKeywords)
	skillHits := countPhrases(experience+"\n"+skills, target.CoreSkills)

	domainScore := math.Min(float64(domainHits)/domainSaturation, 1) * 100
	skillScore := math.Min(float64(skillHits)/skillSaturation, 1) * 100
	return domainScore*domainOverlapShare + skillScore*(1-domainOverlapShare)
}

// skillTransferability averages the transferability tier of every skill
func (s *Scorer) skillTransferability(skills []string) float64 {
	total := 0.0
	n := 0
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		total += s.cat.TransferTier(skill)
		n++
	}
	if n == 0 {
		return neutralSubScore
	}
	return total / float64(n)
}

// experienceRelevance is the share of target domain terms in the experience text,
// boosted by up to 20% for 20 or more years
func experienceRelevance(target catalog.IndustryCluster, experience string, years int) float64 {
	if len(target.DomainKeywords) == 0 {
		return 0
	}
	fraction := float64(countPhrases(experience, target.DomainKeywords)) / float64(len(target.DomainKeywords))
	capped := math.Min(math.Max(float64(years), 0), yearsBonusHorizon)
	bonus := 1 + maxYearsBonus*capped/yearsBonusHorizon
	return math.Min(fraction*bonus*100, 100)
}

// compareVocabulary returns target culture and core-skill terms the source lacks, and the ones it shares,
// at most three of each in target order
func compareVocabulary(target, source catalog.IndustryCluster) (gaps, advantages []string) {
	sourceVocab := make(map[string]bool)
	for _, term := range append(append([]string{}, source.Culture...), source.CoreSkills...) {
		sourceVocab[strings.ToLower(term)] = true
	}

	gaps = []string{}
	advantages = []string{}
	seen := make(map[string]bool)
	for _, term := range append(append([]string{}, target.Culture...), target.CoreSkills...) {
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		if sourceVocab[key] {
			if len(advantages) < maxListedTerms {
				advantages = append(advantages, term)
			}
		} else if len(gaps) < maxListedTerms {
			gaps = append(gaps, term)
		}
	}
	return gaps, advantages
}

func countPhrases(text string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if catalog.ContainsPhrase(text, p) {
			n++
		}
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NeutralAlignment is the documented default used when industry assessment cannot run:
// a seamless technology to technology move with mid-range sub-scores.
func NeutralAlignment() types.IndustryAlignment {
	return types.IndustryAlignment{
		SourceIndustry:            DefaultIndustry,
		TargetIndustry:            DefaultIndustry,
		TransitionDifficulty:      1.0,
		DomainOverlapScore:        neutralSubScore,
		SkillTransferabilityScore: neutralSubScore,
		ExperienceRelevanceScore:  neutralSubScore,
		OverallFitScore:           OverallFit(1.0, neutralSubScore, neutralSubScore, neutralSubScore),
		TransitionCategory:        types.TransitionNatural,
		KeyGaps:                   []string{},
		TransferableAdvantages:    []string{},
	}
}
