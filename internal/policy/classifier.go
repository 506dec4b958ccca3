// Package policy decides how strongly a job description fragment asks for what it names.
// The decision sits behind Classifier so rule tables, a model or a human reviewer can supply it.
package policy

import (
	"context"
	"fmt"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/types"
)

// Classifier assigns a priority to each fragment.
// The returned slice has one entry per fragment; "" means the fragment carries no priority signal.
type Classifier interface {
	Classify(ctx context.Context, fragments []string) ([]types.Priority, error)
	// Deterministic reports whether identical input always yields identical output
	Deterministic() bool
}

// ClassifierError represents a classifier that could not produce a usable answer
type ClassifierError struct {
	Message string
	Cause   error
}

func (e *ClassifierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier error: %s", e.Message)
}

func (e *ClassifierError) Unwrap() error {
	return e.Cause
}

// RuleClassifier classifies fragments with the catalog's indicator phrases
type RuleClassifier struct {
	indicators catalog.Indicators
}

// NewRuleClassifier creates the default deterministic classifier
func NewRuleClassifier(cat *catalog.Catalog) *RuleClassifier {
	return &RuleClassifier{indicators: cat.Indicators()}
}

// Classify implements Classifier
func (r *RuleClassifier) Classify(_ context.Context, fragments []string) ([]types.Priority, error) {
	out := make([]types.Priority, len(fragments))
	for i, f := range fragments {
		out[i] = r.ClassifyOne(f)
	}
	return out, nil
}

// ClassifyOne returns the priority signalled by a single fragment.
// Negated requirement phrases ("not required") read as preferred, then nice-to-have
// phrases win over preferred ones, which win over required ones.
func (r *RuleClassifier) ClassifyOne(fragment string) types.Priority {
	switch {
	case containsAny(fragment, r.indicators.Negations):
		return types.PriorityPreferred
	case containsAny(fragment, r.indicators.NiceToHave):
		return types.PriorityNiceToHave
	case containsAny(fragment, r.indicators.Preferred):
		return types.PriorityPreferred
	case containsAny(fragment, r.indicators.Required):
		return types.PriorityRequired
	default:
		return ""
	}
}

// Deterministic implements Classifier
func (r *RuleClassifier) Deterministic() bool {
	return true
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if catalog.ContainsPhrase(text, p) {
			return true
		}
	}
	return false
}

// Func adapts a per-fragment function, such as a reviewer's lookup table, into a Classifier.
// It is assumed to be deterministic.
type Func func(fragment string) types.Priority

// Classify implements Classifier
func (f Func) Classify(_ context.Context, fragments []string) ([]types.Priority, error) {
	out := make([]types.Priority, len(fragments))
	for i, frag := range fragments {
		out[i] = f(frag)
	}
	return out, nil
}

// Deterministic implements Classifier
func (f Func) Deterministic() bool {
	return true
}
