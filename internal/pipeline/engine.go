// Package pipeline sequences the scoring stages into a single fit score for a CV and job description.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fit-scorer/internal/cache"
	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/industry"
	"github.com/jonathan/fit-scorer/internal/logger"
	"github.com/jonathan/fit-scorer/internal/parsing"
	"github.com/jonathan/fit-scorer/internal/policy"
	"github.com/jonathan/fit-scorer/internal/scoring"
	"github.com/jonathan/fit-scorer/internal/skills"
	"github.com/jonathan/fit-scorer/internal/types"
)

// Stage names, as reported in progress events and ATSScoreBreakdown.Degraded
const (
	StageExtract    = "extract"
	StageCandidate  = "candidate"
	StageMatch      = "match"
	StageIndustry   = "industry"
	StageBonus      = "bonus"
	StageComponents = "components"
	StageAggregate  = "aggregate"
)

// ProgressEvent reports a finished stage
type ProgressEvent struct {
	Stage    string        `json:"stage"`
	RunID    string        `json:"run_id"`
	Degraded bool          `json:"degraded"`
	Elapsed  time.Duration `json:"elapsed"`
}

// ProgressCallback is called after each stage. It may be called from several goroutines.
type ProgressCallback func(event ProgressEvent)

// Engine runs the scoring stages. It holds only read-only state and is safe for concurrent use.
type Engine struct {
	extractor  *parsing.Extractor
	matcher    *skills.Matcher
	industry   *industry.Scorer
	classifier policy.Classifier
	components scoring.ComponentProvider
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
	onProgress ProgressCallback
}

// NewEngine creates an engine over a loaded catalog
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		matcher:  skills.NewMatcher(cat),
		industry: industry.NewScorer(cat),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.classifier == nil {
		e.classifier = policy.NewRuleClassifier(cat)
	}
	if e.components == nil {
		e.components = scoring.NewHeuristicProvider(cat)
	}
	e.extractor = parsing.NewExtractor(cat, e.classifier, e.logger)
	return e
}

// run tracks the state of one Score call
type run struct {
	id      string
	log     *zap.Logger
	mu      sync.Mutex
	degrade []string
}

func (r *run) markDegraded(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.degrade = append(r.degrade, stage)
}

func (r *run) degraded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.degrade...)
}

// Score computes the fit breakdown of a CV against a job description.
// It always returns a breakdown: a failing stage is logged, replaced by its neutral
// default, and named in Degraded.
func (e *Engine) Score(ctx context.Context, cvText, jobDescription string, opts types.ScoreOptions) types.ATSScoreBreakdown {
	r := &run{id: uuid.NewString()}
	r.log = e.logger.With(zap.String(logger.FieldRunID, r.id))
	r.log.Info("scoring started", logger.InputFields(cvText, jobDescription)...)

	if err := opts.Validate(); err != nil {
		r.log.Warn("invalid score options, sanitizing", zap.Error(err))
	}
	opts = opts.Sanitized()

	var key string
	if e.cacheable() {
		key = cache.Key(cvText, jobDescription, opts)
	}
	if key != "" {
		var cached types.ATSScoreBreakdown
		found, err := e.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			r.log.Warn("cache lookup failed", zap.Error(err))
		}
		if found {
			r.log.Info("score served from cache", zap.Float64("final_score", cached.FinalScore))
			cached.RunID = r.id
			return cached
		}
	}

	result := e.score(ctx, r, cvText, jobDescription, opts)

	if key != "" && len(result.Degraded) == 0 {
		if err := e.cache.SetJSON(ctx, key, result, e.cacheTTL); err != nil {
			r.log.Warn("cache store failed", zap.Error(err))
		}
	}
	r.log.Info("scoring finished",
		zap.Float64("final_score", result.FinalScore),
		zap.String("category_status", result.CategoryStatus),
		zap.Strings("degraded", result.Degraded))
	return result
}

// cacheable reports whether identical inputs are guaranteed identical outputs
func (e *Engine) cacheable() bool {
	if e.cache == nil || !e.classifier.Deterministic() {
		return false
	}
	d, ok := e.components.(interface{ Deterministic() bool })
	return !ok || d.Deterministic()
}

func (e *Engine) score(ctx context.Context, r *run, cvText, jobDescription string, opts types.ScoreOptions) types.ATSScoreBreakdown {
	extraction := stage(e, r, StageExtract, types.NewEmptyExtraction, func() (*types.RequirementsExtraction, error) {
		return e.extractor.Extract(ctx, jobDescription, opts.CompanyInfo), nil
	})
	r.log.Debug("requirements extracted",
		zap.Int("total_requirements", extraction.TotalRequirements),
		zap.Int("required", len(extraction.Required)),
		zap.Int("preferred", len(extraction.Preferred)),
		zap.Int("nice_to_have", len(extraction.NiceToHave)),
		zap.Int("years_required", extraction.YearsExperienceRequired))

	profile := stage(e, r, StageCandidate, func() *types.CandidateProfile { return &types.CandidateProfile{} },
		func() (*types.CandidateProfile, error) { return e.extractor.ParseCandidate(cvText), nil })
	if opts.YearsExperience > 0 {
		profile.YearsExperience = opts.YearsExperience
	}

	var (
		analyses  types.SkillAnalyses
		alignment types.IndustryAlignment
	)
	// both branches recover into neutral defaults and never return an error
	var g errgroup.Group
	g.Go(func() error {
		analyses = stage(e, r, StageMatch, types.NewEmptyAnalyses, func() (types.SkillAnalyses, error) {
			return e.matcher.Analyze(profile.Skills(), skills.RequirementLists(extraction)), nil
		})
		return nil
	})
	g.Go(func() error {
		alignment = stage(e, r, StageIndustry, industry.NeutralAlignment, func() (types.IndustryAlignment, error) {
			return e.industry.Assess(types.IndustryInput{
				Experience:      profile.ExperienceLines,
				Skills:          profile.AllSkills(),
				JobDescription:  jobDescription,
				CompanyInfo:     opts.CompanyInfo,
				YearsExperience: profile.YearsExperience,
				CurrentIndustry: opts.CurrentIndustry,
			}), nil
		})
		return nil
	})
	_ = g.Wait()

	bonus := stage(e, r, StageBonus, func() types.RequirementBonus { return types.RequirementBonus{} },
		func() (types.RequirementBonus, error) {
			return scoring.CalculateBonus(e.matcher.CountRequirementMatches(extraction, analyses, profile)), nil
		})

	components := stage(e, r, StageComponents, func() map[string]float64 { return copyScores(opts.ComponentScores) },
		func() (map[string]float64, error) {
			derived, err := e.components.Components(ctx, scoring.ComponentInput{
				Profile:    profile,
				Extraction: extraction,
				Analyses:   analyses,
				Industry:   &alignment,
			})
			if err != nil {
				return nil, fmt.Errorf("component provider: %w", err)
			}
			merged := copyScores(derived)
			for name, v := range opts.ComponentScores {
				merged[name] = v
			}
			return merged, nil
		})

	result := stage(e, r, StageAggregate,
		func() types.ATSScoreBreakdown {
			return scoring.Aggregate(scoring.AggregateInput{Skills: types.NewEmptyAnalyses()})
		},
		func() (types.ATSScoreBreakdown, error) {
			return scoring.Aggregate(scoring.AggregateInput{
				Skills:            analyses,
				Industry:          &alignment,
				ComponentScores:   components,
				Bonus:             bonus,
				TotalRequirements: extraction.TotalRequirements,
			}), nil
		})

	result.RunID = r.id
	result.Degraded = r.degraded()
	return result
}

// stage runs fn inside a recover boundary. When fn panics or returns an error the stage is
// marked degraded and fallback() is returned instead.
func stage[T any](e *Engine, r *run, name string, fallback func() T, fn func() (T, error)) (out T) {
	start := time.Now()
	degraded := false
	fail := func(fields ...zap.Field) {
		degraded = true
		r.markDegraded(name)
		r.log.Error("stage failed, using neutral default", append(fields, zap.String(logger.FieldStage, name))...)
		out = fallback()
	}
	defer func() {
		if rec := recover(); rec != nil {
			fail(zap.Any("panic", rec))
		}
		elapsed := time.Since(start)
		r.log.Debug("stage finished", zap.String(logger.FieldStage, name), zap.Duration("elapsed", elapsed))
		if e.onProgress != nil {
			e.onProgress(ProgressEvent{Stage: name, RunID: r.id, Degraded: degraded, Elapsed: elapsed})
		}
	}()

	out, err := fn()
	if err != nil {
		fail(zap.Error(err))
	}
	return out
}

func copyScores(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
