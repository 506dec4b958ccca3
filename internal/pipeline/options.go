package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/cache"
	"github.com/jonathan/fit-scorer/internal/policy"
	"github.com/jonathan/fit-scorer/internal/scoring"
)

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used at stage boundaries
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClassifier replaces the rule-based priority classifier
func WithClassifier(c policy.Classifier) Option {
	return func(e *Engine) { e.classifier = c }
}

// WithComponentProvider replaces the heuristic component provider
func WithComponentProvider(p scoring.ComponentProvider) Option {
	return func(e *Engine) { e.components = p }
}

// WithCache stores results of deterministic runs. A non-positive ttl uses the cache default.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(e *Engine) {
		e.cache = c
		e.cacheTTL = ttl
	}
}

// WithProgress registers a callback invoked after each stage
func WithProgress(cb ProgressCallback) Option {
	return func(e *Engine) { e.onProgress = cb }
}
