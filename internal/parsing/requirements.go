// Package parsing turns job description and CV text into structured requirement and candidate data.
package parsing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/policy"
	"github.com/jonathan/fit-scorer/internal/types"
)

// companyCategory tags domain requirements taken from company information
const companyCategory = "company_context"

// Extractor parses job descriptions and CVs with the catalog's keyword tables
type Extractor struct {
	cat        *catalog.Catalog
	classifier policy.Classifier
	rules      *policy.RuleClassifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewExtractor creates an extractor. A nil classifier selects the rule classifier.
func NewExtractor(cat *catalog.Catalog, classifier policy.Classifier, logger *zap.Logger) *Extractor {
	rules := policy.NewRuleClassifier(cat)
	if classifier == nil {
		classifier = rules
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{cat: cat, classifier: classifier, rules: rules, logger: logger, now: time.Now}
}

// fragment is one classified piece of a job description
type fragment struct {
	text string
	hint types.Priority
}

// Extract parses a job description into prioritised requirements.
// It never fails: malformed input or an internal fault yields an empty extraction.
func (e *Extractor) Extract(ctx context.Context, jobDescription, companyInfo string) (result *types.RequirementsExtraction) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("requirement extraction recovered",
				zap.Int("jd_length", len(jobDescription)),
				zap.Error(recovered("extract", r)))
			result = types.NewEmptyExtraction()
		}
	}()

	if strings.TrimSpace(jobDescription) == "" {
		return types.NewEmptyExtraction()
	}

	sections := splitSections(e.cat, jobDescription)
	var fragments []fragment
	for _, s := range sections {
		if !s.Extract {
			continue
		}
		for _, f := range splitFragments(s.Lines) {
			fragments = append(fragments, fragment{text: f, hint: s.Hint})
		}
	}

	priorities := e.classify(ctx, fragments)
	b := newBuilder()
	for i, f := range fragments {
		for _, hit := range e.cat.Scan(f.text) {
			b.add(types.Requirement{
				Text:     hit.Term,
				Kind:     hit.Kind,
				Priority: priorities[i],
				Category: hit.Category,
			})
		}
	}

	if years, priority := e.yearsRequirement(sections); years > 0 {
		y := years
		b.add(types.Requirement{
			Text:          fmt.Sprintf("%d+ years of experience", years),
			Kind:          types.KindExperienceYears,
			Priority:      priority,
			Category:      "experience",
			YearsRequired: &y,
		})
		b.years = years
	}

	// company information only sharpens the domain picture of a posting that asks for something
	if b.len() > 0 && strings.TrimSpace(companyInfo) != "" {
		for _, hit := range e.cat.Scan(companyInfo) {
			if hit.Kind != types.KindDomainKnowledge {
				continue
			}
			b.add(types.Requirement{
				Text:     hit.Term,
				Kind:     hit.Kind,
				Priority: types.PriorityNiceToHave,
				Category: companyCategory,
			})
		}
	}

	return b.build()
}

// classify resolves a priority for every fragment: the classifier's answer, then the
// section hint, then preferred.
func (e *Extractor) classify(ctx context.Context, fragments []fragment) []types.Priority {
	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.text
	}

	labels, err := e.classifier.Classify(ctx, texts)
	if err != nil || len(labels) != len(texts) {
		e.logger.Warn("priority classifier failed, using rules",
			zap.Int("fragments", len(texts)),
			zap.Error(err))
		labels, _ = e.rules.Classify(ctx, texts)
	}

	out := make([]types.Priority, len(fragments))
	for i, f := range fragments {
		out[i] = resolvePriority(labels[i], f.hint, types.PriorityPreferred)
	}
	return out
}

func resolvePriority(signal, hint, fallback types.Priority) types.Priority {
	switch {
	case signal.Valid():
		return signal
	case hint.Valid():
		return hint
	default:
		return fallback
	}
}

// yearsRequirement scans every line, including sections not otherwise extracted, for the
// largest stated years figure. Its priority comes from the line's own wording, then the
// section hint, and defaults to required.
func (e *Extractor) yearsRequirement(sections []section) (int, types.Priority) {
	best := 0
	priority := types.PriorityRequired
	for _, s := range sections {
		for _, line := range s.Lines {
			n := ScanYears(line)
			if n <= best {
				continue
			}
			best = n
			priority = resolvePriority(e.rules.ClassifyOne(line), s.Hint, types.PriorityRequired)
		}
	}
	return best, priority
}

// builder accumulates requirements, deduplicating case-insensitively.
// A repeated requirement keeps its first position and the strongest priority seen.
type builder struct {
	reqs  []types.Requirement
	index map[string]int
	years int
}

func newBuilder() *builder {
	return &builder{index: make(map[string]int)}
}

func (b *builder) add(r types.Requirement) {
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" || !r.Kind.Valid() || !r.Priority.Valid() {
		return
	}
	key := strings.ToLower(r.Text)
	if i, ok := b.index[key]; ok {
		if r.Priority.Rank() > b.reqs[i].Priority.Rank() {
			b.reqs[i].Priority = r.Priority
		}
		return
	}
	b.index[key] = len(b.reqs)
	b.reqs = append(b.reqs, r)
}

func (b *builder) len() int {
	return len(b.reqs)
}

func (b *builder) build() *types.RequirementsExtraction {
	out := types.NewEmptyExtraction()
	for _, r := range b.reqs {
		switch r.Priority {
		case types.PriorityRequired:
			out.Required = append(out.Required, r)
		case types.PriorityPreferred:
			out.Preferred = append(out.Preferred, r)
		case types.PriorityNiceToHave:
			out.NiceToHave = append(out.NiceToHave, r)
		}

		switch r.Kind {
		case types.KindTechnicalSkill:
			out.TechnicalSkills = append(out.TechnicalSkills, r.Text)
		case types.KindSoftSkill:
			out.SoftSkills = append(out.SoftSkills, r.Text)
		case types.KindDomainKnowledge:
			out.DomainKeywords = append(out.DomainKeywords, r.Text)
		case types.KindTool:
			out.ToolsAndPlatforms = append(out.ToolsAndPlatforms, r.Text)
		case types.KindCertification:
			out.Certifications = append(out.Certifications, r.Text)
		case types.KindEducation:
			out.Education = append(out.Education, r.Text)
		}
	}
	out.YearsExperienceRequired = b.years
	out.TotalRequirements = len(b.reqs)
	return out
}
